package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/hamed0406/envprobe/internal/config"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/logging"
	"github.com/hamed0406/envprobe/internal/report"
	"github.com/hamed0406/envprobe/internal/sysinfo"
)

var errDegraded = errors.New("report degraded")

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		log.Fatal(err)
	}
	cfg := config.FromEnv()
	var noColor, strict bool

	cmd := &cobra.Command{
		Use:           "envprobe",
		Short:         "Diagnose this node once and print the report",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit 1 when any section is degraded")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		flags.Apply()
		if noColor {
			color.NoColor = true
		}
		return run(cmd.Context(), cfg, strict)
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errDegraded) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, strict bool) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := logging.NewConsole(zapcore.WarnLevel)
	defer logger.Sync()

	reg := endpoints.Default()
	if cfg.EndpointsFile != "" {
		var err error
		if reg, err = endpoints.LoadFile(reg, cfg.EndpointsFile); err != nil {
			return err
		}
	}

	rep := report.NewDefault(logger, reg, sysinfo.NewExec()).Build(ctx, report.FromConfig(cfg))
	if err := rep.WriteText(os.Stdout); err != nil {
		return err
	}
	if strict && rep.Degraded() {
		return errDegraded
	}
	return nil
}
