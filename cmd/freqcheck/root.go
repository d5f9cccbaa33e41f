package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caspianmerlin/aviation-radio/internal/audit"
	"github.com/caspianmerlin/aviation-radio/internal/config"
	"github.com/caspianmerlin/aviation-radio/internal/logging"
)

// app carries the state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	jsonOutput bool

	cfg    *config.Config
	logger zerolog.Logger
	audit  *audit.Logger
}

// run builds the command tree and executes it with the given arguments and
// streams. The audit log is closed before returning.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	a := &app{logger: zerolog.Nop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	defer func() {
		err = errors.Join(err, a.teardown())
	}()
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "freqcheck",
		Short:         "Validate, sort and format aviation VHF frequencies",
		Long:          "freqcheck checks aviation VHF frequencies (118.000-137.990) against the 25 kHz and 8.33 kHz channel plans.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to YAML configuration file (default $"+config.EnvConfigPath+")")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.BoolVar(&a.jsonOutput, "json", false, "print results as JSON lines")

	root.AddCommand(newValidateCmd(a), newSortCmd(a), newFormatCmd(a))
	return root
}

func (a *app) setup(logOutput io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if _, err := zerolog.ParseLevel(a.logLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
		}
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg

	a.logger = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: logOutput,
	})

	auditLogger, err := audit.NewLogger(cfg.Audit)
	if err != nil {
		return fmt.Errorf("failed to initialize audit logger: %w", err)
	}
	a.audit = auditLogger

	a.logger.Debug().
		Str("spacing", cfg.Policy.Spacing).
		Int("reserved", len(cfg.Policy.Reserved)).
		Str("audit", auditLogger.FilePath()).
		Msg("configuration loaded")
	return nil
}

func (a *app) teardown() error {
	if a.audit == nil {
		return nil
	}
	if err := a.audit.Close(); err != nil {
		return fmt.Errorf("failed to close audit logger: %w", err)
	}
	return nil
}
