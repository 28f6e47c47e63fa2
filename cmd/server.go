package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"worklog-system.com/worklog-system/internal/cache"
	config "worklog-system.com/worklog-system/internal/configs"
	httpapi "worklog-system.com/worklog-system/internal/http"
	repository "worklog-system.com/worklog-system/internal/repositories"
	"worklog-system.com/worklog-system/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the worklog HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)

		var reportCache cache.ReportCache = cache.NoopCache{}
		if cfg.ReportCacheEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			reportCache = cache.NewRedisReportCache(
				redisClient,
				cfg.ReportCachePrefix,
				time.Duration(cfg.ReportCacheTTLSeconds)*time.Second,
			)
		}

		orgRepo := repository.NewOrganizationRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		profileRepo := repository.NewProfileRepository(database)

		cascade := services.NewCascadePlanner(orgRepo, projectRepo, taskRepo, logger)

		orgService := services.NewOrganizationService(orgRepo, cascade, reportCache, logger)
		projectService := services.NewProjectService(projectRepo, orgRepo, cascade, reportCache, logger)
		taskService := services.NewTaskService(taskRepo, projectRepo, reportCache, logger)
		billingService := services.NewBillingService(taskRepo, projectRepo, reportCache, logger)
		reportService := services.NewReportService(taskRepo, projectRepo, orgRepo)
		profileService := services.NewProfileService(profileRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(
			orgService,
			projectService,
			taskService,
			billingService,
			reportService,
			profileService,
		)
		httpapi.Register(e, handler, cfg.JWTSecret, cfg.RateLimit)

		go func() {
			logger.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logger.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
