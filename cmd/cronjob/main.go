package main

import (
	"database/sql"
	"flag"
	"log"

	"hoteldesk-backoffice/internal/config"
	"hoteldesk-backoffice/internal/jobs"
	"hoteldesk-backoffice/internal/logger"
	"hoteldesk-backoffice/internal/repository/postgres"
	"hoteldesk-backoffice/internal/service"

	_ "github.com/lib/pq"
)

// Runs one job cycle and exits. Useful for manual reconciliation and for
// environments that schedule with an external cron instead of the in-process
// scheduler.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "reconcile", "Job to run (reconcile)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	hotelSvc := service.NewHotelService(store.HotelRepository)
	ledgerSvc := service.NewLedgerService(store.LedgerRepository, store.TransferRepository)
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

	switch *jobName {
	case "reconcile":
		jobRunner.ReconcileLedgers()
	default:
		log.Fatalf("Unknown job: %s", *jobName)
	}
}
