package server

import (
	"log"

	"storefront-be/internal/bootstrap"
	"storefront-be/internal/config"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"
	"storefront-be/pkg/bundle"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// domainErrors maps service and engine errors to HTTP statuses. Catalog
// degradation never reaches here; it is reported as rendered=false.
var domainErrors = []serverutils.ErrorMapping{
	{Target: service.ErrProductNotFound, Status: fiber.StatusNotFound},
	{Target: service.ErrBundleNotFound, Status: fiber.StatusNotFound},
	{Target: service.ErrUnknownPreference, Status: fiber.StatusNotFound},
	{Target: bundle.ErrUnknownPolicy, Status: fiber.StatusBadRequest},
	{Target: bundle.ErrEmptySelection, Status: fiber.StatusConflict},
	{Target: bundle.ErrNotRendered, Status: fiber.StatusConflict},
}

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(domainErrors...))

	// Fallback product imagery
	app.Static("/images", "./public/images")

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ProductController.RegisterRoutes(api)
	c.BundleController.RegisterRoutes(api)
	c.CartController.RegisterRoutes(api)
	c.PreferenceController.RegisterRoutes(api)

	c.NotificationHandler.RegisterRoutes(api)
}
