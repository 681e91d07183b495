package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/config"
	"github.com/lshigami/juristudy/database"
	_ "github.com/lshigami/juristudy/docs" // Swagger docs
	adminctrl "github.com/lshigami/juristudy/internal/controller/admin"
	userctrl "github.com/lshigami/juristudy/internal/controller/user"
	"github.com/lshigami/juristudy/internal/logger"
	"github.com/lshigami/juristudy/internal/mailer"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/repository"
	"github.com/lshigami/juristudy/internal/router"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Legal Study Quiz API
// @version 1.0
// @description Randomized true/false quizzes over laws, scored reports and question error reports.
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.NopLogger,

		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
			mailer.NewMailer,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewLawRepository,
			repository.NewQuestionRepository,
			repository.NewQuizAttemptRepository,
			repository.NewContentRepository,
			repository.NewUserRepository,
			repository.NewErrorReportRepository,
			repository.NewSettingRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewLawCatalogService,
			service.NewQuizAttemptService,
			service.NewAdminContentService,
			func(
				reportRepo repository.ErrorReportRepository,
				questionRepo repository.QuestionRepository,
				userRepo repository.UserRepository,
				settingRepo repository.SettingRepository,
				m mailer.Mailer,
			) service.ErrorReportService {
				return service.NewErrorReportService(reportRepo, questionRepo, userRepo, settingRepo, m)
			},
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewSessionController,
			userctrl.NewLawController,
			userctrl.NewQuizAttemptController,
			adminctrl.NewAdminContentController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(BootstrapAdmin),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// StartServer manages the HTTP server lifecycle.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				return sqlDB.Close()
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// BootstrapAdmin creates the configured admin account on first start.
func BootstrapAdmin(auth service.AuthService, cfg *config.Config) error {
	if cfg.Admin.Email == "" {
		log.Warn().Msg("ADMIN_EMAIL is not set. No admin account is bootstrapped.")
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := auth.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("Admin bootstrap failed")
		return err
	}
	return nil
}
