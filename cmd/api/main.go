package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bbip/config"
	_ "bbip/docs" // Swagger docs
	"bbip/internal/httpserver"
	"bbip/pkg/datemath"
	"bbip/pkg/encrypter"
	"bbip/pkg/gcalendar"
	"bbip/pkg/llmprovider"
	"bbip/pkg/log"
	"bbip/pkg/scope"
	"bbip/pkg/sqlite"
)

// @title       bbip API
// @description Personal daily planner: plans, Korean free-text parsing and statistics.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting bbip...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage & auth
	db, err := sqlite.Connect(ctx, sqlite.Config{Path: cfg.Database.Path})
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	// 4. Plan domain collaborators
	dates, err := datemath.NewParser(cfg.Plan.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Plan.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	var generator llmprovider.Generator
	if len(cfg.LLM.Providers) > 0 {
		providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
		if err != nil {
			logger.Warnf(ctx, "AI parsing disabled: %v", err)
		} else {
			managerCfg, err := llmprovider.ManagerConfig(cfg.LLM)
			if err != nil {
				logger.Errorf(ctx, "Invalid llm config: %v", err)
				return
			}
			generator = llmprovider.NewManager(providers, managerCfg, logger)
			logger.Infof(ctx, "AI parsing enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "AI parsing disabled: no LLM provider configured, using the local parser only")
	}

	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath,
			gcalendar.WithCalendarID(cfg.GoogleCalendar.CalendarID),
			gcalendar.WithLocation(dates.Location()),
		)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		JWTManager:      jwtManager,
		Encrypter:       encrypter.New(0),
		RateLimitPerMin: cfg.RateLimit.PerMin,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		Dates:           dates,
		LLM:             generator,
		Calendar:        calendar,
		Plan: httpserver.PlanConfig{
			AITimeout: cfg.Plan.AITimeout,
			MaxBulk:   cfg.Plan.MaxBulk,
		},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
