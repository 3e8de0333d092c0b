// cmd/api/main.go
// Main entry point for the matching API
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imadgeboyega/kiekky-matcher/internal/auth"
	"github.com/imadgeboyega/kiekky-matcher/internal/common/database"
	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
	"github.com/imadgeboyega/kiekky-matcher/internal/config"
	"github.com/imadgeboyega/kiekky-matcher/internal/dating"
	"github.com/imadgeboyega/kiekky-matcher/internal/matching"
)

var startTime = time.Now()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Kiekky Matching API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load and validate configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}
	log.Println("✅ Configuration is valid")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Connect to PostgreSQL
	log.Println("\n🗄️  Step 3: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 4. Connect to Redis (optional)
	log.Println("\n📮 Step 4: Connecting to Redis...")
	var redisClient *redis.Client
	switch {
	case cfg.RedisURL == "":
		log.Println("⚠️  Redis URL not configured, match cache disabled")
	case !cfg.MatchCacheEnabled:
		log.Println("⚠️  Match cache disabled by configuration")
	default:
		redisClient, err = database.NewRedisClientFromURL(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  %v, continuing without match cache", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	}

	// 5. Run database migrations
	log.Println("\n🔨 Step 5: Running database migrations...")
	if err := runMigrations(ctx, db.DB); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 6. Initialize matching engine
	log.Println("\n💘 Step 6: Initializing matching engine...")
	engine, err := matching.NewEngine(cfg.MatchingConfig())
	if err != nil {
		log.Fatal("❌ Invalid matching configuration: ", err)
	}
	w := engine.Weights()
	log.Printf("   weights: interests=%d location=%d age=%d relationship=%d orientation=%d lifestyle=%d",
		w.Interests, w.Location, w.Age, w.Relationship, w.Orientation, w.Lifestyle)
	log.Printf("   min threshold: %d, orientation policy: %s", engine.MinThreshold(), cfg.MatchOrientation)

	repo := dating.NewPostgresRepository(db)
	cache := dating.NewRedisCache(redisClient, cfg.MatchCacheTTL)
	service := dating.NewService(repo, engine, cache, cfg.MatchCandidateLimit)
	handler := dating.NewHandler(service)
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	scheduler := dating.NewScheduler(repo, cfg.MatchStatsInterval)
	scheduler.Start(ctx)
	log.Println("✅ Matching engine initialized")

	// 7. Set up routes
	log.Println("\n🛣️  Step 7: Setting up routes...")
	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	dating.RegisterRoutes(router, handler, authMiddleware)
	log.Println("   ✅ Matching routes registered")

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 8. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("❌ Server forced to shutdown: ", err)
	}

	log.Println("✅ Server exited gracefully")
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	})
}
