package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/report"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/workouts"
)

// exports one user's progress report straight from the db, to disk or google drive

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.String("user", "", "id of the user to export")
	format := flag.String("format", "xlsx", "report format [xlsx | pdf]")
	outDir := flag.String("out", ".", "output dir, used when -drive-creds is empty")
	driveCreds := flag.String("drive-creds", "", "google drive service account credentials json")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	if *userID == "" {
		log.Fatalln("user id not specified, use -user")
	}
	reportFormat, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clk, err := clock.LoadSystem(cfg.Timezone)
	if err != nil {
		log.Fatalln(err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("FITTRACK_DB_USER"),
		DBPassword: os.Getenv("FITTRACK_DB_PASS"),
		MaxConns:   4,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	var storage report.Storage
	if *driveCreds != "" {
		driveService, err := report.NewDriveService(ctx, *driveCreds)
		if err != nil {
			log.Fatalln(err)
		}
		storage, err = report.NewDriveStorage(ctx, driveService, cfg.ReportsDriveDir)
		if err != nil {
			log.Fatalf("drive storage: %s", err)
		}
	} else {
		storage, err = report.NewDiskStorage(*outDir)
		if err != nil {
			log.Fatalln(err)
		}
	}

	progressRepo := progress.NewRepo(dbPool)
	fetcher := progress.NewFetcher(
		progressRepo,
		nutrition.NewTrackingRepo(dbPool),
		workouts.NewRepo(dbPool),
		progressRepo,
	)
	// nothing scrapes a one-shot run, the manager only satisfies the service
	metricsManager := metrics.NewManager("cli", "report_export", prometheus.NewRegistry())
	service := report.NewService(profile.NewRepo(dbPool), fetcher, storage, clk, metricsManager)

	export, err := service.Export(ctx, *userID, reportFormat)
	if err != nil {
		log.Fatalf("export failed: %s", err)
	}
	if export.Location == "" {
		log.Fatalf("report %s built but not stored", export.FileName)
	}

	log.Infof("report %s [%d bytes] stored: %s", export.FileName, len(export.Content), export.Location)
}
