package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-sprint-planner/config"
	_ "voice-sprint-planner/docs" // Swagger docs
	"voice-sprint-planner/internal/httpserver"
	"voice-sprint-planner/internal/intake"
	intakeClickupRepo "voice-sprint-planner/internal/intake/repository/clickup"
	intakeDocstoreRepo "voice-sprint-planner/internal/intake/repository/docstore"
	intakeUC "voice-sprint-planner/internal/intake/usecase"
	plannerClickupRepo "voice-sprint-planner/internal/planner/repository/clickup"
	plannerDocstoreRepo "voice-sprint-planner/internal/planner/repository/docstore"
	"voice-sprint-planner/internal/planner/schedule"
	plannerUC "voice-sprint-planner/internal/planner/usecase"
	"voice-sprint-planner/pkg/clickup"
	"voice-sprint-planner/pkg/docstore"
	"voice-sprint-planner/pkg/gemini"
	"voice-sprint-planner/pkg/log"
	"voice-sprint-planner/pkg/speech"
)

// @title       Voice Sprint Planner API
// @description Voice-driven task intake and sprint agenda planning over ClickUp, Gemini, and Google Speech.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Sprint Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		loc = time.UTC
	}

	// 3. Clients
	clickupClient := clickup.NewClient(cfg.ClickUp.APIURL, cfg.ClickUp.APIToken)
	docstoreClient := docstore.NewClient(cfg.Docstore.URL, cfg.Docstore.AccessToken)

	// 4. Planner domain
	metadataRepo := plannerDocstoreRepo.New(
		docstoreClient,
		time.Duration(cfg.Docstore.CacheTTLMinutes)*time.Minute,
		logger,
	)
	trackerRepo := plannerClickupRepo.New(clickupClient, metadataRepo, cfg.ClickUp.BacklogListID, logger)

	planner := plannerUC.New(logger, trackerRepo, metadataRepo, loc, schedule.Thresholds{
		Under: cfg.Planner.WorkloadUnderHours,
		Over:  cfg.Planner.WorkloadOverHours,
	})

	// 5. Intake domain (optional: needs a Gemini key)
	var intakeUsecase intake.UseCase
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)

		var transcriber intake.Transcriber
		if cfg.Speech.CredentialsPath != "" {
			speechClient, spErr := speech.NewClientFromCredentialsFile(ctx, cfg.Speech.CredentialsPath)
			if spErr != nil {
				logger.Warnf(ctx, "Google Speech not available (optional): %v", spErr)
			} else {
				transcriber = speechClient
				logger.Info(ctx, "Google Speech initialized")
			}
		}

		intakeTracker := intakeClickupRepo.New(clickupClient, cfg.ClickUp.BacklogListID, logger)
		intakeQueue := intakeDocstoreRepo.New(docstoreClient, logger)
		intakeUsecase = intakeUC.New(logger, geminiClient, transcriber, intakeTracker, intakeQueue)
	} else {
		logger.Warn(ctx, "Intake disabled: GEMINI_API_KEY is missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		PlannerUC:       planner,
		IntakeUC:        intakeUsecase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
