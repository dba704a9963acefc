package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/nattakit-w/shop-recommender-backend/internal/catalog"
	"github.com/nattakit-w/shop-recommender-backend/internal/config"
	"github.com/nattakit-w/shop-recommender-backend/internal/logging"
	"github.com/nattakit-w/shop-recommender-backend/internal/openai"
	"github.com/nattakit-w/shop-recommender-backend/internal/recommendation"
	"github.com/nattakit-w/shop-recommender-backend/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logging.Setup(cfg.Log)
	log.Info("Starting AI Product Recommender")

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	// catalog (public, read-only)
	catalogRepo := catalog.NewDefaultRepository()
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	catalogHandler.RegisterPublicRoutes(app)

	// sessions hold the verified API client per user
	sessionStore := session.NewInMemoryStore()
	sessionService := session.NewService(sessionStore, func(apiKey string) (session.Recommender, error) {
		return openai.NewClient(cfg.OpenAI, apiKey)
	})
	sessionHandler := session.NewHandler(sessionService, cfg.Auth.JWTSecret)
	sessionHandler.RegisterPublicRoutes(app)

	// recommendation pipeline: classify -> join catalog -> rank
	recommendationService := recommendation.NewService(catalogRepo)
	recommendationHandler := recommendation.NewHandler(recommendationService, func(id string) (recommendation.Recommender, bool) {
		sess, ok := sessionService.Get(id)
		if !ok {
			return nil, false
		}
		return sess.Client, true
	})

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.Auth.JWTSecret),
	}))

	sessionHandler.RegisterProtectedRoutes(app)
	recommendationHandler.RegisterProtectedRoutes(app)

	log.Infof("starting server on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Infof("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start).Round(time.Millisecond))
	return err
}
