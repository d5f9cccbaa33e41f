package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	radio "github.com/caspianmerlin/aviation-radio"
)

var _ pflag.Value = (*radio.Frequency)(nil)

func newFormatCmd(a *app) *cobra.Command {
	var freq radio.Frequency

	cmd := &cobra.Command{
		Use:   "format --frequency FREQ",
		Short: "Show the parts and spacing of one frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.jsonOutput {
				data, err := json.Marshal(freq)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(out, "%s\n", data)
				return err
			}

			left, right := freq.Parts()
			_, err := fmt.Fprintf(out, "frequency: %s\nleft:      %d\nright:     %d\nspacing:   %s\n",
				freq, left, right, freq.Spacing())
			return err
		},
	}

	cmd.Flags().Var(&freq, "frequency", "frequency in LLL.RRR form")
	_ = cmd.MarkFlagRequired("frequency")
	return cmd
}
