package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/linknest/backend/src/config"
	"github.com/linknest/backend/src/controllers"
	"github.com/linknest/backend/src/lib"
	"github.com/linknest/backend/src/middleware"
	"github.com/linknest/backend/src/routes"
	"github.com/linknest/backend/src/services"
)

func main() {
	cfg := config.Load()

	db, err := lib.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := lib.AutoMigrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	userService := services.NewUserService(db)
	postService := services.NewPostService(db)
	connectionService := services.NewConnectionService(db)
	notificationService := services.NewNotificationService(db)

	authCtrl := controllers.NewAuthController(userService, cfg)
	userCtrl := controllers.NewUserController(userService, postService, connectionService, cfg)
	postCtrl := controllers.NewPostController(postService)
	connectionCtrl := controllers.NewConnectionController(connectionService)
	notificationCtrl := controllers.NewNotificationController(notificationService)

	protect := middleware.ProtectRoute(userService, cfg.JWTSecret)
	authLimit := middleware.RateLimit(5, 10)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.AuthRoutes(app, authCtrl, authLimit, protect)
	routes.UserRoutes(app, userCtrl, postCtrl, protect)
	routes.PostRoutes(app, postCtrl, protect)
	routes.ConnectionRoutes(app, connectionCtrl, protect)
	routes.NotificationRoutes(app, notificationCtrl, protect)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Static("/static", "./static")

	slog.Info("server is running", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
