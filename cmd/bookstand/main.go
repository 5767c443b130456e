package main

import (
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/bookstand/pkg/api"
	"github.com/platinummonkey/bookstand/pkg/catalog"
	"github.com/platinummonkey/bookstand/pkg/config"
	"github.com/platinummonkey/bookstand/pkg/identity"
	"github.com/platinummonkey/bookstand/pkg/observability"
	"github.com/platinummonkey/bookstand/pkg/reviews"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)

	// Stores live for the lifetime of the process; every boot starts from
	// the same seeded catalog with no users or reviews.
	books := catalog.NewStore(catalog.SeedBooks())
	users := identity.NewRegistry()
	ledger := reviews.NewLedger(books, cfg.Reviews.Policy, cfg.Reviews.Cap)

	issuer, err := identity.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}

	var metrics *observability.Metrics
	registry := prometheus.NewRegistry()
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics(registry)
		metrics.BooksTotal.Set(float64(books.Count()))
	}

	server, err := api.NewServer(api.ServerConfig{
		Books:   books,
		Users:   users,
		Reviews: ledger,
		Issuer:  issuer,
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	mainAddr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         mainAddr,
		Handler:      server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Probes and metrics are served on a separate port so they stay
	// reachable even if the main listener is saturated.
	healthMux := http.NewServeMux()
	checker := observability.NewHealthChecker(books, users, ledger)
	observability.RegisterHealthRoutes(healthMux, checker)
	if cfg.Observability.MetricsEnabled {
		observability.RegisterMetricsEndpoint(healthMux, registry)
	}
	healthServer := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.HealthPort),
		Handler: healthMux,
	}

	shutdown := observability.NewShutdownManager(logger, httpServer, cfg.Server.ShutdownTimeout)
	shutdown.RegisterShutdownFunc(healthServer.Shutdown)

	go func() {
		log.WithField("addr", healthServer.Addr).Info("Starting health server")
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Health server failed")
		}
	}()

	go func() {
		log.WithFields(logrus.Fields{
			"addr":          mainAddr,
			"books":         books.Count(),
			"review_policy": string(cfg.Reviews.Policy),
		}).Info("Starting Bookstand server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	if err := shutdown.WaitForShutdown(); err != nil {
		log.WithError(err).Error("Shutdown finished with errors")
		os.Exit(1)
	}
}
