package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Siddhardha2330/backendrepo/internal/api/handlers"
	"github.com/Siddhardha2330/backendrepo/internal/api/middleware"
	"github.com/Siddhardha2330/backendrepo/internal/config"
	database "github.com/Siddhardha2330/backendrepo/internal/db"
	"github.com/Siddhardha2330/backendrepo/internal/metrics"
	"github.com/Siddhardha2330/backendrepo/internal/models"
)

type Server struct {
	cfg    *config.Config
	db     *database.Client
	log    *logrus.Logger
	router *gin.Engine
}

func New(cfg *config.Config, db *database.Client, log *logrus.Logger, m *metrics.Metrics) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode) // Set to Release for production
	}

	s := &Server{
		cfg:    cfg,
		db:     db,
		log:    log,
		router: gin.New(),
	}

	s.setupMiddleware(m)
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware(m *metrics.Metrics) {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestLogger(s.log))
	if m != nil {
		s.router.Use(m.Handler())
	}

	// CORS Configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

	// IMPORTANT: "Authorization" must be allowed so the frontend can send the JWT
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	secret := []byte(s.cfg.Auth.JWTSecret)
	tokenTTL := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour

	authHandler := handlers.NewAuthHandler(s.db.DB, s.log, secret, tokenTTL, s.cfg.Auth.BcryptCost)
	quizHandler := handlers.NewQuizHandler(s.db.DB, s.log)
	questionHandler := handlers.NewQuestionHandler(s.db.DB, s.log)
	submissionHandler := handlers.NewSubmissionHandler(s.db.DB, s.log)
	profileHandler := handlers.NewProfileHandler(s.db.DB, s.log, s.cfg.Auth.BcryptCost)

	// Health check for deployment verification
	s.router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "quiz-backend"})
	})

	api := s.router.Group("/api")
	{
		// ==========================================
		// PUBLIC ROUTES (No Token Required)
		// ==========================================
		api.POST("/login", authHandler.Login)
		api.POST("/signup", authHandler.Signup)
		api.POST("/logout", authHandler.Logout)

		// ==========================================
		// PROTECTED ROUTES (JWT Token Required)
		// ==========================================
		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.RequireAuth(secret))
		{
			// --- ADMIN ONLY ---
			quizzes.GET("", middleware.RequireRole(models.RoleAdmin), quizHandler.GetQuizzes)
			quizzes.POST("", middleware.RequireRole(models.RoleAdmin), quizHandler.CreateQuiz)
			quizzes.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), quizHandler.DeleteQuiz)
			quizzes.GET("/dashboard-stats", middleware.RequireRole(models.RoleAdmin), quizHandler.GetDashboardStats)
			quizzes.POST("/questions", middleware.RequireRole(models.RoleAdmin), questionHandler.AddQuestion)
			quizzes.GET("/questions", middleware.RequireRole(models.RoleAdmin), questionHandler.GetQuestions)

			// --- EMPLOYEE ONLY ---
			quizzes.GET("/:quizId/questions", middleware.RequireRole(models.RoleEmployee), questionHandler.GetQuizQuestions)
			quizzes.GET("/available", middleware.RequireRole(models.RoleEmployee), quizHandler.GetAvailableQuizzes)
			quizzes.POST("/:quizId/submit", middleware.RequireRole(models.RoleEmployee), submissionHandler.SubmitQuiz)
			quizzes.GET("/my-submissions", middleware.RequireRole(models.RoleEmployee), submissionHandler.GetMySubmissions)
			quizzes.GET("/leaderboard", middleware.RequireRole(models.RoleEmployee), submissionHandler.GetEmployeeLeaderboard)
			quizzes.GET("/:quizId/attempts", middleware.RequireRole(models.RoleEmployee), submissionHandler.GetAttempts)
			quizzes.POST("/change-password", middleware.RequireRole(models.RoleEmployee), authHandler.ChangePassword)
			quizzes.GET("/employee-stats", middleware.RequireRole(models.RoleEmployee), quizHandler.GetEmployeeStats)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(secret), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/submissions", submissionHandler.GetAllSubmissions)
			admin.GET("/submissions/quiz/:quizId", submissionHandler.GetQuizSubmissions)
			admin.GET("/leaderboard/:quizId", submissionHandler.GetLeaderboard)
			admin.GET("/profile", profileHandler.GetProfile)
			admin.PUT("/profile", profileHandler.UpdateProfile)
		}
	}
}

// Handler exposes the router for http.Server and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server on the configured address.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
