package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jadehome/seller-console/api/openapi"
	"github.com/jadehome/seller-console/internal/api/handlers"
	"github.com/jadehome/seller-console/internal/api/middleware"
	"github.com/jadehome/seller-console/internal/config"
	"github.com/jadehome/seller-console/internal/console"
	"github.com/jadehome/seller-console/internal/scheduler"
	"github.com/jadehome/seller-console/internal/store"
	"github.com/jadehome/seller-console/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and token warm-up scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := newLogger(cfg)
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		Insecure:    cfg.Telemetry.Insecure,
		ServiceName: cfg.Telemetry.ServiceName,
		Version:     Version,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	stack, err := newAmazonStack(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("building amazon client: %w", err)
	}
	defer stack.Close()

	svc := console.NewService(stack.registry, stack.client, st,
		console.WithLogger(log),
		console.WithBoardConcurrency(cfg.Fanout.BoardConcurrency),
	)

	e := newEcho(cfg, svc, log)

	var sched *scheduler.Scheduler
	if cfg.Schedule.WarmupEnabled() {
		notifier, err := newNotifier(ctx, cfg, log)
		if err != nil {
			return err
		}
		sched, err = scheduler.New(cfg.Schedule.TokenWarmup, stack.warmupTargets(cfg), log,
			scheduler.WithNotifier(notifier))
		if err != nil {
			return err
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"marketplaces", stack.registry.Codes(),
		"token_cache", cfg.TokenCache.Backend,
		"ads_enabled", cfg.Amazon.AdsEnabled(),
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("token warm-up did not finish before shutdown")
		}
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("flushing traces", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// newEcho builds the HTTP server with middleware, the Huma API and the
// operational endpoints.
func newEcho(cfg *config.Config, svc *console.Service, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	health := handlers.NewHealthHandler(svc)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Seller Console API", Version))
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplacesHandler(svc))
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(svc))
	handlers.RegisterPriceRoutes(api, handlers.NewPricesHandler(svc))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))
	handlers.RegisterCampaignRoutes(api, handlers.NewCampaignsHandler(svc))
	handlers.RegisterSKURoutes(api, handlers.NewSKUsHandler(svc))
	openapi.RegisterRoutes(e, api)

	return e
}
