package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jadehome/seller-console/internal/config"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/scheduler"
)

var warmupCmd = &cobra.Command{
	Use:   "warmup",
	Short: "Fetch an access token for every marketplace once",
	Long: "Runs the token warm-up job a single time against the configured token cache. " +
		"Useful to verify refresh tokens and to pre-fill a shared cache before a rollout.",
	RunE: runWarmup,
}

func init() {
	rootCmd.AddCommand(warmupCmd)
}

func runWarmup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg)
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	stack, err := newAmazonStack(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("building amazon client: %w", err)
	}
	defer stack.Close()

	// The schedule is irrelevant for a single run.
	sched, err := scheduler.New("@every 1h", stack.warmupTargets(cfg), log)
	if err != nil {
		return err
	}

	report := sched.RunWarmup(ctx)
	for scope, res := range report {
		for code, o := range res {
			if o.Status == fanout.StatusSuccess {
				log.Info("token ready", "scope", scope, "marketplace", code)
				continue
			}
			log.Error("token unavailable", "scope", scope, "marketplace", code, "error", o.Error)
		}
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d token(s) could not be acquired", failed)
	}
	return nil
}
