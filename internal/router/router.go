package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/config"
	adminctrl "github.com/lshigami/juristudy/internal/controller/admin"
	userctrl "github.com/lshigami/juristudy/internal/controller/user"
	"github.com/lshigami/juristudy/internal/middleware"
	"github.com/lshigami/juristudy/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CorsAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(cfg.Auth.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Auth.JWTTTLHours * 3600,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(middleware.SessionName, store))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return r
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(
	router *gin.Engine,
	authSvc service.AuthService,
	sessionCtrl *userctrl.SessionController,
	lawCtrl *userctrl.LawController,
	quizCtrl *userctrl.QuizAttemptController,
	adminCtrl *adminctrl.AdminContentController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/session", sessionCtrl.CreateSession)
		api.DELETE("/auth/session", sessionCtrl.DeleteSession)
	}

	userAPIGroup := api.Group("", middleware.RequireUser(authSvc))
	{
		userAPIGroup.GET("/laws", lawCtrl.ListLaws)
		userAPIGroup.POST("/questions/:question_id/error-reports", lawCtrl.ReportQuestionError)

		userAPIGroup.POST("/quiz-attempts", quizCtrl.StartAttempt)
		userAPIGroup.GET("/quiz-attempts/:attempt_id/items/:item_id", quizCtrl.GetItem)
		userAPIGroup.PUT("/quiz-attempts/:attempt_id/items/:item_id/answer", quizCtrl.AnswerItem)
		userAPIGroup.POST("/quiz-attempts/:attempt_id/finish", quizCtrl.FinishAttempt)
		userAPIGroup.GET("/quiz-attempts/:attempt_id/report", quizCtrl.GetScoreReport)
	}

	adminAPIGroup := api.Group("/admin", middleware.RequireUser(authSvc), middleware.RequireAdmin())
	{
		adminAPIGroup.POST("/subjects", adminCtrl.CreateSubject)
		adminAPIGroup.POST("/laws", adminCtrl.CreateLaw)
		adminAPIGroup.GET("/laws/:law_id", adminCtrl.GetLaw)
		adminAPIGroup.PUT("/content/:kind/:id/active", adminCtrl.SetActive)
		adminAPIGroup.GET("/questions/:question_id/error-reports", adminCtrl.ListErrorReports)
		adminAPIGroup.GET("/settings/notify-email", adminCtrl.GetNotifyEmail)
		adminAPIGroup.PUT("/settings/notify-email", adminCtrl.SetNotifyEmail)
	}
}
