package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"cityvoice-be/ai"
	"cityvoice-be/config"
	"cityvoice-be/controllers"
	"cityvoice-be/middlewares"
	"cityvoice-be/routes"
	"cityvoice-be/services"
	"cityvoice-be/stores"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func buildStores(cfg *config.AppConfig) (stores.IssueStore, stores.UserStore) {
	if cfg.StoreBackend == "memory" {
		issueStore := stores.NewMemoryIssueStore()
		userStore := stores.NewMemoryUserStore()
		if cfg.SeedDemoData {
			if err := stores.SeedDemoData(context.Background(), issueStore, userStore); err != nil {
				log.Fatalf("Failed to seed demo data: %v", err)
			}
			slog.Info("demo data loaded")
		}
		return issueStore, userStore
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	slog.Info("MongoDB connection established")
	return stores.NewMongoIssueStore(db.Collection("issues")),
		stores.NewMongoUserStore(db.Collection("users"))
}

func buildLLMClient(cfg *config.AppConfig) ai.LLMClient {
	switch cfg.EngineProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the gemini provider")
		}
		slog.Info("using Gemini engine backend", "model", cfg.GeminiModel)
		return ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	case "ollama":
		slog.Info("using Ollama engine backend", "url", cfg.OllamaURL, "model", cfg.OllamaModel)
		return ai.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel)
	default:
		log.Fatalf("Unknown engine provider: %s (supported: gemini, ollama, fake)", cfg.EngineProvider)
		return nil
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitLogger()
	cfg := config.Load()

	issueStore, userStore := buildStores(cfg)

	var priorityEngine ai.PriorityEngine
	var routingEngine ai.RoutingEngine
	if cfg.EngineProvider == "fake" {
		slog.Warn("using deterministic fake engines")
		priorityEngine = &ai.FakePriorityEngine{}
		routingEngine = &ai.FakeRoutingEngine{}
	} else {
		client := buildLLMClient(cfg)
		priorityEngine = ai.NewLLMPriorityEngine(client)
		routingEngine = ai.NewLLMRoutingEngine(client)
	}

	var submitLimiter gin.HandlerFunc
	if err := config.ConnectRedis(); err != nil {
		slog.Warn("Redis unavailable, submission rate limiting disabled", "error", err)
	} else {
		slog.Info("Redis connection established")
		submitLimiter = middlewares.IssueRateLimiter(cfg.IssueLimitPerDay)
	}

	verification := services.NewVerificationService(issueStore, userStore, priorityEngine)

	authController := controllers.NewAuthController(userStore)
	userController := controllers.NewUserController(userStore)
	issueController := controllers.NewIssueController(issueStore, priorityEngine)
	adminController := controllers.NewAdminController(issueStore, verification, routingEngine)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(middlewares.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.AuthRoutes(r, authController)
	routes.UserRoutes(r, userController)
	routes.IssueRoutes(r, issueController, submitLimiter)
	routes.AdminRoutes(r, adminController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
