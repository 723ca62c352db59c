package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lus-labeler-backend/internal/drive"
	"lus-labeler-backend/internal/handlers"
	"lus-labeler-backend/internal/repository"
)

// Server wires the HTTP routes to their handlers.
type Server struct {
	router *gin.Engine
	log    *zap.Logger
}

// New builds the gin engine with all routes registered. The catalog and the
// database handle are constructed once at startup and shared by all requests.
func New(db *gorm.DB, catalog *drive.Catalog, log *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	// Dev-friendly CORS: allow all origins. Tighten for production.
	router.Use(cors.Default())

	s := &Server{router: router, log: log}
	s.setupRoutes(db, catalog)
	return s
}

func (s *Server) setupRoutes(db *gorm.DB, catalog *drive.Catalog) {
	catalogHandler := handlers.NewCatalogHandler(catalog, s.log)
	historyHandler := handlers.NewHistoryHandler(repository.NewHistoryRepository(db, s.log), s.log)
	userHandler := handlers.NewUserHandler(repository.NewUserRepository(db, s.log), s.log)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.GET("/patients", catalogHandler.ListPatients)
		api.GET("/patients/:patient_id/classes", catalogHandler.ListClasses)
		api.GET("/patients/:patient_id/classes/:class_id/videos", catalogHandler.ListVideos)
		api.GET("/videos/:file_id", catalogHandler.StreamVideo)
	}

	s.router.GET("/history", historyHandler.List)
	s.router.POST("/history", historyHandler.Upsert)
	s.router.DELETE("/history/:id", historyHandler.Delete)

	s.router.POST("/users", userHandler.Create)
	s.router.GET("/users", userHandler.List)
	s.router.DELETE("/users", userHandler.Delete)

	s.router.POST("/auth/login", userHandler.Login)
	s.router.POST("/auth/change-password", userHandler.ChangePassword)
}

// Handler exposes the underlying engine for http.Server and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
