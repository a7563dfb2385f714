package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/config"
	"github.com/hamed0406/envprobe/internal/endpoints"
	"github.com/hamed0406/envprobe/internal/httpapi"
	"github.com/hamed0406/envprobe/internal/logging"
	"github.com/hamed0406/envprobe/internal/report"
	"github.com/hamed0406/envprobe/internal/sysinfo"
)

func main() {
	if err := config.LoadDotEnv(""); err != nil {
		log.Fatal(err)
	}
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:          "envprobe-api",
		Short:        "Serve the node health report over HTTP",
		SilenceUsage: true,
	}
	flags := config.BindFlags(cmd.Flags(), &cfg)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		flags.Apply()
		return run(cmd.Context(), cfg)
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	level, _ := cfg.Level()
	logger, err := logging.NewLogger(logging.Options{
		Dir:        cfg.LogDir,
		File:       cfg.LogFile,
		Level:      level,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	reg := endpoints.Default()
	if cfg.EndpointsFile != "" {
		if reg, err = endpoints.LoadFile(reg, cfg.EndpointsFile); err != nil {
			return err
		}
	}

	agg := report.NewDefault(logger, reg, sysinfo.NewExec())
	api := httpapi.NewServer(logger, agg, report.FromConfig(cfg))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("api_config",
		zap.Strings("regions", cfg.Regions),
		zap.Int("timeout_s", cfg.TimeoutSeconds),
		zap.Strings("disabled", cfg.Disabled),
	)
	return api.ListenAndServe(ctx, cfg.Addr)
}
