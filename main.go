package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zenatech-mv/site-backend/api"
	"github.com/zenatech-mv/site-backend/auth"
	"github.com/zenatech-mv/site-backend/config"
	"github.com/zenatech-mv/site-backend/database"
	"github.com/zenatech-mv/site-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	connStr, err := config.RequireString(c, config.KeyDatabaseURL)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error applying migrations: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Stale session rows accumulate between restarts; clear them at boot
	if err := currentDB.SessionRepo().DeleteExpired(); err != nil {
		fmt.Printf("Warning: failed to purge expired sessions: %v\n", err)
	}

	signingKey, err := config.RequireString(c, config.KeySessionSigningKey)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	sessionTTL := time.Duration(config.GetInt(c, config.KeySessionTTLHours, 24)) * time.Hour

	authService := auth.NewService(
		currentDB.AuthIdentityRepo(),
		currentDB.AdminUserRepo(),
		currentDB.SessionRepo(),
		[]byte(signingKey),
		sessionTTL,
	)

	notifier := services.NewNotifier(
		config.GetString(c, config.KeyTelegramBotToken, ""),
		config.GetString(c, config.KeyTelegramChatID, ""),
		config.GetString(c, config.KeyTelegramAPIBase, ""),
	)

	uploader := newUploader(c)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Deps{
		Database: currentDB,
		Auth:     authService,
		Notifier: notifier,
		Uploader: uploader,
	})
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newUploader wires the S3 client when a bucket is configured. Without one
// the uploader serves base64 fallbacks only.
func newUploader(c map[string]string) *services.Uploader {
	bucket := config.GetString(c, config.KeyS3Bucket, "")
	publicBaseURL := config.GetString(c, config.KeyS3PublicBaseURL, "")

	if bucket == "" {
		fmt.Println("S3_BUCKET not set; uploads will use the base64 fallback")
		return services.NewUploader(nil, "", publicBaseURL)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(config.GetString(c, config.KeyS3Region, "us-east-1")),
	)
	if err != nil {
		fmt.Printf("Warning: failed to load AWS config: %v; uploads will use the base64 fallback\n", err)
		return services.NewUploader(nil, "", publicBaseURL)
	}

	return services.NewUploader(s3.NewFromConfig(awsCfg), bucket, publicBaseURL)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
