package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "hoteldesk-backoffice/internal/api/http"
	"hoteldesk-backoffice/internal/config"
	"hoteldesk-backoffice/internal/jobs"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository/postgres"
	"hoteldesk-backoffice/internal/scheduler"
	"hoteldesk-backoffice/internal/security"
	"hoteldesk-backoffice/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hoteldesk Backoffice...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	hotelSvc := service.NewHotelService(store.HotelRepository)
	ledgerSvc := service.NewLedgerService(store.LedgerRepository, store.TransferRepository)
	operationSvc := service.NewOperationService(store.OperationRepository, store.ArticleRepository, store.LedgerRepository)
	incassoSvc := service.NewIncassoService(store.IncassoRepository, store.ArticleRepository, store.LedgerRepository)
	staySvc := service.NewStayService(store.StayRepository, store.FolioRepository, store.ArticleRepository, store.LedgerRepository, store.OperationRepository)
	folioSvc := service.NewFolioService(store.FolioRepository, store.ArticleRepository, store.LedgerRepository)
	alertSvc := service.NewSendgridAlertService(
		cfg.Alerts.SendgridAPIKey,
		cfg.Alerts.FromEmail,
		cfg.Alerts.FromName,
		cfg.Alerts.Recipients,
	)

	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Hotel:  hotelSvc,
		Ledger: ledgerSvc,
		Alert:  alertSvc,
	}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(httpapi.Services{
		Hotel:     hotelSvc,
		Ledger:    ledgerSvc,
		Operation: operationSvc,
		Incasso:   incassoSvc,
		Stay:      staySvc,
		Folio:     folioSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
