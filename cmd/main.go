package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mohd-obaidullah/complaint-box/internal/api/handler"
	"github.com/Mohd-obaidullah/complaint-box/internal/auth"
	"github.com/Mohd-obaidullah/complaint-box/internal/complaint"
	"github.com/Mohd-obaidullah/complaint-box/internal/config"
	"github.com/Mohd-obaidullah/complaint-box/internal/notification"
	"github.com/Mohd-obaidullah/complaint-box/internal/registry"
	"github.com/Mohd-obaidullah/complaint-box/internal/reset"
	"github.com/Mohd-obaidullah/complaint-box/internal/storage"
	"github.com/Mohd-obaidullah/complaint-box/internal/upload"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the storage layer relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return db, rdb
}

func main() {
	log.Println("Starting Complaint Box backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewService(db, rdb)
	if err := s.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database and Redis connections established, migrations complete.")

	credentials := auth.NewService(s)
	sessions := auth.NewSessions(s, cfg.SecretKey, config.SessionTTL)
	reg := registry.NewService(s)
	notifications := notification.NewService(s)
	complaints := complaint.NewService(s, notifications)
	resets := reset.NewService(s)
	uploads := upload.NewStore(cfg.UploadDir)

	r := gin.Default()
	h := handler.NewHandler(credentials, sessions, reg, complaints, notifications, resets, uploads)
	h.Routes(r)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
