package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edvin/customerservice/internal/api"
	"github.com/edvin/customerservice/internal/config"
	"github.com/edvin/customerservice/internal/core"
	"github.com/edvin/customerservice/internal/db"
	"github.com/edvin/customerservice/internal/logging"
	"github.com/edvin/customerservice/internal/metrics"
	"github.com/edvin/customerservice/internal/model"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "issue-token" {
		issueToken(os.Args[2:])
		return
	}

	migrateFlag := flag.Bool("migrate", false, "Run database migrations before starting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	if *migrateFlag {
		logger.Info().Msg("running database migrations")
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.ServiceName)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := metrics.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to register pool metrics")
	}

	services := core.NewServices(pool, cfg.JWTSecret, cfg.JWTIssuer)

	if cfg.SeedOnStart {
		if err := seed(ctx, logger, services.Customer, cfg.SeedFile); err != nil {
			logger.Fatal().Err(err).Msg("seeding failed")
		}
	}

	servers := []*http.Server{{
		Addr:         cfg.HTTPListenAddr,
		Handler:      api.NewServer(logger, pool, services, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}}
	if cfg.MetricsListenAddr != "" {
		servers = append(servers, metrics.NewServer(cfg.MetricsListenAddr, prometheus.DefaultGatherer))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info().Str("addr", srv.Addr).Msg("starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Str("addr", srv.Addr).Msg("shutdown failed")
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func seed(ctx context.Context, logger zerolog.Logger, customers *core.CustomerService, seedFile string) error {
	records := core.DefaultSeed()
	if seedFile != "" {
		loaded, err := core.LoadSeedFile(seedFile)
		if err != nil {
			return err
		}
		records = loaded
	}

	all, err := core.NewSeeder(customers, logger, records).Run(ctx)
	if err != nil {
		return err
	}

	logger.Info().Int("inserted", len(records)).Int("total", len(all)).Msg("seeded customers")
	return nil
}

func issueToken(args []string) {
	fs := flag.NewFlagSet("issue-token", flag.ExitOnError)
	sub := fs.String("sub", "", "Token subject (required)")
	authorities := fs.String("authorities", model.AuthorityUser, "Comma-separated authorities")
	ttl := fs.Duration("ttl", time.Hour, "Token lifetime")
	fs.Parse(args)

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "error: --sub is required")
		fmt.Fprintln(os.Stderr, "usage: customer-api issue-token --sub <subject> [--authorities USER,ADMIN] [--ttl 1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}
	if len(cfg.JWTSecret) < 32 {
		fmt.Fprintln(os.Stderr, "error: JWT_SECRET must be set and at least 32 bytes")
		os.Exit(1)
	}

	var granted []string
	for _, a := range strings.Split(*authorities, ",") {
		if a = strings.TrimSpace(a); a != "" {
			granted = append(granted, a)
		}
	}

	token, err := core.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer).IssueToken(*sub, granted, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
