// Package server contains the HTTP handlers for the blog's routes.
package server

import (
	"fmt"

	"weblog/internal/config"
	"weblog/internal/database"
	"weblog/internal/middleware"
	"weblog/internal/repository"
	"weblog/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	postService    *service.PostService
	commentService *service.CommentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("weblog"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
	}
	server.postService = service.NewPostService(postRepo, userRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo)

	return server
}

// SetupMiddleware attaches the shared middleware stack.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())
	middleware.RegisterMetrics(app, s.promMiddleware)
}

// SetupRoutes maps the five blog routes onto their handlers.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.ListPosts)
	app.Get("/create", s.NewPostForm)
	app.Post("/store", s.StorePost)
	app.Get("/post/:id", s.ShowPost)
	app.Post("/post/:id", s.StoreComment)
}
