package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	radio "github.com/caspianmerlin/aviation-radio"
	"github.com/caspianmerlin/aviation-radio/internal/audit"
	"github.com/caspianmerlin/aviation-radio/internal/logging"
)

var errChecksFailed = errors.New("frequencies rejected")

// checkResult is the --json form of one validate line.
type checkResult struct {
	Input     string           `json:"input"`
	Frequency *radio.Frequency `json:"frequency,omitempty"`
	Spacing   string           `json:"spacing,omitempty"`
	OK        bool             `json:"ok"`
	Code      string           `json:"code"`
	Error     string           `json:"error,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FREQ...]",
		Short: "Check frequencies against the channel plans and the configured policy",
		Long: "Check each frequency given as an argument, or one per line on stdin when none are given. " +
			"Blank lines and lines starting with # are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := audit.WithSource(cmd.Context(), inputSource(args))
			log := logging.WithComponent(a.logger, "validate")
			out := cmd.OutOrStdout()

			var checked, rejected int
			err := forEachInput(ctx, args, cmd.InOrStdin(), func(input string) error {
				result := a.check(ctx, input)
				checked++
				if !result.OK {
					rejected++
					log.Debug().Str("input", input).Str("code", result.Code).Msg("frequency rejected")
				}
				return a.printResult(out, result)
			})
			if err != nil {
				return err
			}

			log.Info().Int("checked", checked).Int("rejected", rejected).Msg("validation finished")
			if rejected > 0 {
				return fmt.Errorf("%d of %d %w", rejected, checked, errChecksFailed)
			}
			return nil
		},
	}
}

// check parses input, applies the policy and records the outcome.
func (a *app) check(ctx context.Context, input string) checkResult {
	f, err := radio.Parse(input)
	if err == nil {
		err = a.cfg.Policy.Check(f)
	}
	a.audit.LogCheck(ctx, input, f, err)

	result := checkResult{
		Input: input,
		OK:    err == nil,
		Code:  audit.CodeFromError(err),
	}
	if !f.IsZero() {
		result.Frequency = &f
		result.Spacing = f.Spacing().String()
	}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

func (a *app) printResult(w io.Writer, result checkResult) error {
	if a.jsonOutput {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	var err error
	switch {
	case result.OK:
		_, err = fmt.Fprintf(w, "OK   %s %s\n", result.Frequency, result.Spacing)
	case result.Frequency != nil:
		_, err = fmt.Fprintf(w, "FAIL %s %s: %s\n", result.Frequency, result.Spacing, result.Error)
	default:
		_, err = fmt.Fprintf(w, "FAIL %s: %s\n", result.Input, result.Error)
	}
	return err
}
