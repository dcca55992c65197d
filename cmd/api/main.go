package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"serava-assistant/config"
	_ "serava-assistant/docs" // Swagger docs
	assistantUC "serava-assistant/internal/assistant/usecase"
	"serava-assistant/internal/auth/google"
	"serava-assistant/internal/auth/repository"
	memoryRepo "serava-assistant/internal/auth/repository/memory"
	postgreRepo "serava-assistant/internal/auth/repository/postgre"
	authUC "serava-assistant/internal/auth/usecase"
	calendarUC "serava-assistant/internal/calendar/usecase"
	"serava-assistant/internal/httpserver"
	"serava-assistant/pkg/datemath"
	"serava-assistant/pkg/gcalendar"
	"serava-assistant/pkg/llmprovider"
	"serava-assistant/pkg/log"
)

// @title       Serava Assistant API
// @description Natural-language calendar assistant over Google Calendar, with LLM intent extraction and OAuth token management.
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

	logger.Info(ctx, "Starting Serava Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser, anchored to the service timezone
	dateMathParser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Calendar.Timezone, err)
		return
	}

	// 4. Credential repository: Postgres when a DSN is configured, in-memory otherwise
	var credRepo repository.CredentialRepository
	if cfg.Auth.PostgresDSN != "" {
		db, dbErr := sql.Open("postgres", cfg.Auth.PostgresDSN)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open postgres: %v", dbErr)
			return
		}
		defer db.Close()
		if pingErr := db.PingContext(ctx); pingErr != nil {
			logger.Errorf(ctx, "Failed to ping postgres: %v", pingErr)
			return
		}
		credRepo = postgreRepo.New(db, logger)
		logger.Info(ctx, "Credential store: postgres")
	} else {
		credRepo = memoryRepo.New()
		logger.Warn(ctx, "Credential store: in-memory (credentials are lost on restart)")
	}

	// 5. Google OAuth provider + auth use case
	oauthProvider, err := google.New(google.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google OAuth: %v", err)
		return
	}
	authUseCase := authUC.New(logger, credRepo, oauthProvider, dateMathParser.Location(), cfg.Auth.TokenRenewal)

	// 6. Google Calendar client
	calendarClient, err := gcalendar.New(gcalendar.Config{
		CalendarID:    cfg.Calendar.CalendarID,
		Timezone:      cfg.Calendar.Timezone,
		LookaheadDays: cfg.Calendar.LookaheadDays,
		MaxResults:    cfg.Calendar.MaxResults,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Google Calendar client: %v", err)
		return
	}

	// 7. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 8. Domain use cases
	assistantUseCase := assistantUC.New(logger, llmManager, calendarClient, authUseCase, dateMathParser, cfg.Assistant.SnapshotCacheTTL)
	calendarUseCase := calendarUC.New(logger, calendarClient, authUseCase, dateMathParser)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AuthUC:         authUseCase,
		AssistantUC:    assistantUseCase,
		CalendarUC:     calendarUseCase,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
