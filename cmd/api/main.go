package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/handler"
	apimiddleware "github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/middleware"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/api/router"
	"github.com/tuncayozel/i-inolsun-sub000/internal/adapter/repository"
	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/firebase"
	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/ratelimit"
	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/storage"
	"github.com/tuncayozel/i-inolsun-sub000/internal/infrastructure/websocket"
	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		if _, err := os.Stat(cfg.ServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.ServiceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", cfg.ServiceAccountPath)
		opt = option.WithCredentialsFile(cfg.ServiceAccountPath)
		credentialsPath = cfg.ServiceAccountPath
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	jobRepo := repository.NewFirestoreJobRepository(firestoreClient)
	applicationRepo := repository.NewFirestoreApplicationRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	balanceRepo := repository.NewFirestoreBalanceRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, settingsRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, balanceRepo, settingsRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, settingsRepo)
	paymentUseCase := usecase.NewPaymentUseCase(balanceRepo, transactionRepo, userRepo, notificationUseCase, cfg.CommissionRate, cfg.WithdrawFee)
	jobUseCase := usecase.NewJobUseCase(jobRepo, userRepo, paymentUseCase, notificationUseCase)
	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo, jobRepo, userRepo, notificationUseCase)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, jobRepo, wsManager, rateLimiter, notificationUseCase)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	handler.Setup(authUseCase, userUseCase, jobUseCase, applicationUseCase, paymentUseCase, notificationUseCase, settingsUseCase)
	handler.SetupFileHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, authClient)

	router.Setup(e, authMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
