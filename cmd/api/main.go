package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ripeness-backend/cmd"
	"ripeness-backend/internal/api"
	"ripeness-backend/internal/database"
	"ripeness-backend/internal/storage"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type APIConfig struct {
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"sqlite:///data/ripeness.db"`
	APIPort        string `env:"API_PORT" envDefault:"8001"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// StorageType selects where uploaded images are archived: "local", "s3",
	// or empty to disable archival entirely.
	StorageType       string `env:"STORAGE_TYPE" envDefault:""`
	LocalStorageDir   string `env:"LOCAL_STORAGE_DIR" envDefault:"/data/uploads"`
	UploadBucket      string `env:"UPLOAD_BUCKET" envDefault:"uploads"`
	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3Region          string `env:"AWS_REGION"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	AllowedOrigins   string `env:"ALLOWED_ORIGINS" envDefault:"*"`
	RateLimitPerHour int    `env:"RATE_LIMIT_PER_HOUR" envDefault:"100"`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := createObjectStore(cfg)

	// --- Chi Router Setup ---
	r := chi.NewRouter()

	// Middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Cache preflight response for 5 minutes
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log requests
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set request timeout
	if cfg.RateLimitPerHour > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerHour, time.Hour))
	}

	// API Handlers (dependency injection)
	apiHandler := api.NewClassifierService(db, store, cfg.UploadBucket, cfg.MaxUploadBytes)

	apiHandler.AddRoutes(r)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	log.Println("Server stopped.")
}

func createObjectStore(cfg APIConfig) storage.ObjectStore {
	switch cfg.StorageType {
	case "local":
		store, err := storage.NewLocalObjectStore(cfg.LocalStorageDir)
		if err != nil {
			log.Fatalf("Failed to create local object store: %v", err)
		}
		if err := store.CreateBucket(context.Background(), cfg.UploadBucket); err != nil {
			log.Fatalf("Failed to create upload bucket: %v", err)
		}
		return store
	case "s3":
		store, err := storage.NewS3ObjectStore(storage.S3ClientConfig{
			Endpoint:        cfg.S3EndpointURL,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			log.Fatalf("Failed to create S3 object store: %v", err)
		}
		if err := store.CreateBucket(context.Background(), cfg.UploadBucket); err != nil {
			log.Fatalf("Failed to create upload bucket: %v", err)
		}
		return store
	case "":
		log.Println("STORAGE_TYPE not set, uploaded images will not be archived")
		return nil
	default:
		log.Fatalf("unknown STORAGE_TYPE %q, expected 'local', 's3', or empty", cfg.StorageType)
		return nil
	}
}
