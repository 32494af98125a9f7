package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"etsysync/internal/adapter/api"
	"etsysync/internal/adapter/api/handler"
	apimiddleware "etsysync/internal/adapter/api/middleware"
	"etsysync/internal/adapter/api/router"
	"etsysync/internal/adapter/repository"
	"etsysync/internal/infrastructure/etsy"
	"etsysync/internal/infrastructure/scheduler"
	"etsysync/internal/usecase"
	"etsysync/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
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

	storeRepo := repository.NewFirestoreStoreRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient, cfg.SyncBatchSize)
	statusRepo := repository.NewFirestoreSyncStatusRepository(firestoreClient)
	analyticsRepo := repository.NewFirestoreAnalyticsRepository(firestoreClient)
	queueRepo := repository.NewFirestoreQueueRepository(firestoreClient)
	learningRepo := repository.NewFirestoreLearningRepository(firestoreClient)

	requestQueue := etsy.NewQueue(100*time.Millisecond, time.Second, 3)
	defer requestQueue.Close()

	etsyClient := etsy.NewClient(requestQueue, etsy.ClientOptions{
		PageSize:       cfg.SyncPageSize,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	})

	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, listingRepo, storeRepo)
	syncUseCase := usecase.NewSyncUseCase(
		storeRepo,
		listingRepo,
		statusRepo,
		learningRepo,
		analyticsUseCase,
		etsyClient,
		time.Duration(cfg.SyncIntervalHours)*time.Hour,
	)
	storeUseCase := usecase.NewStoreUseCase(storeRepo, statusRepo, etsyClient)
	listingUseCase := usecase.NewListingUseCase(listingRepo, storeRepo)
	queueUseCase := usecase.NewQueueUseCase(queueRepo, storeRepo, etsyClient)

	handler.Setup(storeUseCase, syncUseCase, listingUseCase, queueUseCase, analyticsUseCase)

	syncScheduler := scheduler.New(cfg.CronSpec, syncUseCase)
	if err := syncScheduler.Start(); err != nil {
		log.Fatalf("Failed to start auto-sync scheduler: %v", err)
	}
	defer syncScheduler.Stop()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	cronMiddleware := apimiddleware.NewCronMiddleware(cfg.CronSecret)

	router.Setup(e, authMiddleware, cronMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
