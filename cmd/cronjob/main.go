package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"carservice-backend/internal/config"
	"carservice-backend/internal/jobs"
	"carservice-backend/internal/logger"
	"carservice-backend/internal/repository/postgres"
	"carservice-backend/internal/scheduler"
	"carservice-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'stale-open-jobs', 'purge-activity', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting maintenance job runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	activitySvc := service.NewActivityService(store.ActivityRepository, cfg.Audit.RecentLimit)
	runner := jobs.NewRunner(store, activitySvc, cfg)

	// Run a single job and exit when requested
	if *runOnce != "" {
		switch *runOnce {
		case "stale-open-jobs":
			runner.ReportStaleOpenJobs()
		case "purge-activity":
			runner.PurgeActivityLog()
		case "all":
			runner.RunAll()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Otherwise run the cron scheduler until interrupted
	sched := scheduler.NewScheduler(runner)
	sched.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
