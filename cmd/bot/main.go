package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diegoclair/slack-doughnut-bot/internal/config"
	"github.com/diegoclair/slack-doughnut-bot/internal/database"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/contract"
	"github.com/diegoclair/slack-doughnut-bot/internal/domain/service"
	"github.com/diegoclair/slack-doughnut-bot/internal/handlers"
	"github.com/diegoclair/slack-doughnut-bot/internal/history"
	"github.com/diegoclair/slack-doughnut-bot/internal/matching"
	"github.com/diegoclair/slack-doughnut-bot/internal/notify"
	"github.com/diegoclair/slack-doughnut-bot/internal/platform/logger"
	"github.com/diegoclair/slack-doughnut-bot/internal/roster"
	"github.com/diegoclair/slack-doughnut-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.PostMatches {
		logg.Warn("publishing to slack is disabled, set POST_MATCHES to enable")
	}

	store, closeStore, err := newHistoryStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("failed to initialize history store", "backend", cfg.HistoryBackend, "error", err)
	}
	defer closeStore()

	weights, err := matching.StrategyWeights(cfg.MatchStrategy)
	if err != nil {
		logg.Fatal("failed to select match strategy", "error", err)
	}
	engineOpts := []matching.Option{matching.WithWeights(weights), matching.WithLogger(logg)}
	if cfg.MatchSeed != 0 {
		engineOpts = append(engineOpts, matching.WithSeed(cfg.MatchSeed))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services, err := service.NewInstance(service.Dependencies{
		Roster:   roster.NewSlackRoster(slackClient, cfg.RosterWorkers, logg),
		History:  store,
		Notifier: notify.NewSlackNotifier(slackClient, logg, notify.WithWorkers(cfg.NotifyWorkers)),
		Engine:   matching.New(engineOpts...),
	}, service.Settings{
		DaysBetweenRuns: cfg.DaysBetweenRuns,
		PromptDays:      cfg.PromptDays,
		PostMatches:     cfg.PostMatches,
	}, cfg.Channels, cfg.RunTime, logg)
	if err != nil {
		logg.Fatal("failed to create services", "error", err)
	}

	if cfg.RunOnce {
		if err := services.Scheduler.RunAll(ctx); err != nil {
			logg.Error("run finished with errors", "error", err)
			closeStore()
			logg.Sync()
			os.Exit(1)
		}
		logg.Info("thanks for using doughnut, goodbye")
		return
	}

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Doughnut, cfg.Channels, cfg.SlackSigningSecret, logg)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error("failed to shut down server", "error", err)
		}
	}()

	logg.Info("server starting", "port", cfg.Port, "channels", len(cfg.Channels))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Fatal("failed to start server", "error", err)
	}
}

// newHistoryStore builds the configured history backend. The returned func
// releases whatever the store holds open.
func newHistoryStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (contract.HistoryStore, func(), error) {
	noop := func() {}

	if cfg.HistoryBackend == domain.BackendSQLite {
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, noop, err
		}

		logg.Info("running migrations", "path", cfg.DatabasePath)
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, noop, err
		}

		return history.NewSQLStore(database.NewInstance(db), logg), func() { db.Close() }, nil
	}

	files := history.NewFileStore(cfg.HistoryDir, logg)
	if cfg.S3Bucket == "" {
		logg.Info("no S3 bucket configured, using local history", "dir", cfg.HistoryDir)
		return files, noop, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, noop, err
	}

	return history.NewS3Mirror(files, s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.PostMatches, logg), noop, nil
}
