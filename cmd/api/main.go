package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"community-board/internal/config"
	"community-board/internal/handler"
	"community-board/internal/middleware"
	"community-board/internal/repository"
	"community-board/internal/service"
	"community-board/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	store := repository.NewStore(db)
	services := service.NewServices(store, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)

	app.Get("/posts", h.Post.List)
	app.Get("/posts/:postId", h.Post.Get)
	app.Get("/comments", h.Comment.ListAll)
	app.Get("/comments/comment/:commentId", h.Comment.Get)
	app.Get("/comments/:postId", h.Comment.ListTree)

	protected := app.Group("", middleware.AuthRequired(authService))

	protected.Post("/posts", h.Post.Create)
	protected.Patch("/posts/:postId", h.Post.Update)
	protected.Delete("/posts/:postId", h.Post.Delete)

	protected.Post("/comments", h.Comment.Create)
	protected.Patch("/comments/:commentId", h.Comment.Update)
	protected.Delete("/comments/reply/:commentId", h.Comment.DeleteReply)
	protected.Delete("/comments/:commentId", h.Comment.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/read-all", h.Notification.MarkAllAsRead)
	notifications.Patch("/read/:id", h.Notification.MarkAsRead)
	notifications.Delete("/all", h.Notification.DeleteAll)
	notifications.Delete("/:id", h.Notification.Delete)

	userGroup := protected.Group("/user")
	userGroup.Patch("/nickname", h.User.UpdateNickname)
	userGroup.Get("/my-posts", h.User.MyPosts)
	userGroup.Get("/my-comments", h.User.MyComments)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/users", h.Admin.ListUsers)
	admin.Patch("/ban-user/:handle", h.Admin.BanUser)
	admin.Patch("/unban-user/:handle", h.Admin.UnbanUser)
	admin.Delete("/users/:handle", h.Admin.DeleteUser)
	admin.Delete("/force-delete-post/:postId", h.Admin.ForceDeletePost)
	admin.Delete("/force-delete-comment/:commentId", h.Admin.ForceDeleteComment)
	admin.Delete("/force-delete-reply/:commentId", h.Admin.ForceDeleteReply)
}
