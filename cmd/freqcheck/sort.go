package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	radio "github.com/caspianmerlin/aviation-radio"
)

func newSortCmd(a *app) *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "sort [FREQ...]",
		Short: "Print frequencies in ascending order",
		Long:  "Parse every frequency (arguments or stdin lines) and print them sorted by MHz, then channel. The first invalid input aborts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var freqs []radio.Frequency
			err := forEachInput(cmd.Context(), args, cmd.InOrStdin(), func(input string) error {
				f, err := radio.Parse(input)
				if err != nil {
					return fmt.Errorf("%q: %w", input, err)
				}
				freqs = append(freqs, f)
				return nil
			})
			if err != nil {
				return err
			}

			slices.SortFunc(freqs, radio.Compare)
			if unique {
				freqs = slices.Compact(freqs)
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				if freqs == nil {
					freqs = []radio.Frequency{}
				}
				data, err := json.Marshal(freqs)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\n", data)
				return err
			}
			for _, f := range freqs {
				if _, err := fmt.Fprintln(out, f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "drop duplicate frequencies")
	return cmd
}
