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

	"github.com/joho/godotenv"
	"github.com/uni-match-api/internal/application/auth"
	"github.com/uni-match-api/internal/config"
	"github.com/uni-match-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/uni-match-api/internal/infrastructure/jwt"
	"github.com/uni-match-api/internal/infrastructure/memory"
	redisinfra "github.com/uni-match-api/internal/infrastructure/redis"
	s3infra "github.com/uni-match-api/internal/infrastructure/s3"
	"github.com/uni-match-api/internal/infrastructure/smtp"
	transporthttp "github.com/uni-match-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates and seeds them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Credential provider. Without a secret the protected routes run without
	// auth, which is only acceptable for local development.
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: credential provider not available: %v", err)
	}

	// OTP store: Redis when configured, in-memory otherwise.
	var otpStore auth.OTPStore
	if cfg.RedisAddr != "" {
		redisClient := redisinfra.NewClient(cfg)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis unreachable at %s: %v", cfg.RedisAddr, err)
		}
		otpStore = redisinfra.NewOTPStore(redisClient)
	} else {
		log.Println("WARN: REDIS_ADDR not set, using in-memory OTP store")
		otpStore = memory.NewOTPStore()
	}

	// S3 store for verification documents.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer — only in non-dev environments; dev logs codes instead.
	var mailer smtp.Mailer
	if cfg.AppEnv != "development" {
		mailer = smtp.NewMailer(cfg)
	}

	deps := &transporthttp.Deps{
		ProfileRepo:       dynamo.NewProfileRepo(dynamoClient, cfg.DynamoTables.Profiles),
		UniversityRepo:    dynamo.NewUniversityRepo(dynamoClient, cfg.DynamoTables.Universities),
		ConfigurationRepo: dynamo.NewConfigurationRepo(dynamoClient, cfg.DynamoTables.IntentOptions, cfg.DynamoTables.WeightPresets, cfg.DynamoTables.Flags),
		DocumentRepo:      dynamo.NewDocumentRepo(dynamoClient, cfg.DynamoTables.Documents),
		OTPStore:          otpStore,
		S3Store:           s3Store,
		Mailer:            mailer,
		JWTProvider:       jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
