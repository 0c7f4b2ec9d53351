package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"portfolio-api/internal/config"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := config.RunMigrations(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to MinIO, resume storage will not work")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg, log)
	handlers := handler.NewHandlers(services, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)

	posts := v1.Group("/posts")
	posts.Get("/", h.Post.List)
	posts.Get("/slug/:slug", h.Post.GetBySlug)

	projects := v1.Group("/projects")
	projects.Get("/", h.Project.List)
	projects.Get("/:projectId", h.Project.Get)

	experiences := v1.Group("/experiences")
	experiences.Get("/", h.Experience.List)
	experiences.Get("/:experienceId", h.Experience.Get)

	v1.Get("/settings", h.Settings.Get)
	v1.Post("/contact", h.Contact.Submit)

	resumes := v1.Group("/resumes")
	resumes.Get("/", h.Resume.List)
	resumes.Get("/:roleId/download", h.Resume.Download)

	analytics := v1.Group("/analytics")
	analytics.Post("/visit", h.Analytics.TrackVisit)
	analytics.Post("/blogs/:slug/view", h.Analytics.TrackBlogView)

	// Comment submission is open to visitors; a valid admin token upgrades
	// the author identity, so auth here is optional rather than required.
	comments := v1.Group("/posts/:postId/comments")
	comments.Get("/", h.Comment.Thread)
	comments.Get("/stream", h.Comment.Stream)
	comments.Post("/", middleware.OptionalAuth(authService), h.Comment.Submit)

	admin := v1.Group("/admin", middleware.AuthRequired(authService))

	adminPosts := admin.Group("/posts")
	adminPosts.Get("/:postId", h.Post.Get)
	adminPosts.Post("/", h.Post.Create)
	adminPosts.Put("/:postId", h.Post.Update)
	adminPosts.Delete("/:postId", h.Post.Delete)

	adminProjects := admin.Group("/projects")
	adminProjects.Post("/", h.Project.Create)
	adminProjects.Put("/:projectId", h.Project.Update)
	adminProjects.Delete("/:projectId", h.Project.Delete)

	adminExperiences := admin.Group("/experiences")
	adminExperiences.Post("/", h.Experience.Create)
	adminExperiences.Put("/:experienceId", h.Experience.Update)
	adminExperiences.Delete("/:experienceId", h.Experience.Delete)

	admin.Put("/settings", h.Settings.Update)

	adminComments := admin.Group("/comments")
	adminComments.Get("/", h.Comment.ListAll)
	adminComments.Get("/stats", h.Comment.Stats)
	adminComments.Delete("/:commentId", h.Comment.SoftDelete)
	adminComments.Post("/:commentId/restore", h.Comment.Restore)
	adminComments.Delete("/:commentId/permanent", h.Comment.HardDelete)

	adminResumes := admin.Group("/resumes")
	adminResumes.Post("/:roleId", h.Resume.Upload)
	adminResumes.Delete("/:roleId", h.Resume.Delete)

	admin.Get("/analytics/summary", h.Analytics.Summary)
}
