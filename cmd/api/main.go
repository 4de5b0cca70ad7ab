package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"giglance/internal/adapter/api"
	"giglance/internal/adapter/api/handler"
	apimiddleware "giglance/internal/adapter/api/middleware"
	"giglance/internal/adapter/api/router"
	"giglance/internal/adapter/repository"
	"giglance/internal/domain/service"
	"giglance/internal/infrastructure/firebase"
	"giglance/internal/infrastructure/realtime"
	"giglance/internal/infrastructure/websocket"
	"giglance/internal/usecase"
	"giglance/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file
	// path (local development)
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(firestoreClient)
	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	hub := realtime.NewHub()
	wsManager := websocket.NewManager(hub, orderRepo, profileRepo)
	wsManager.Start(ctx)

	paymentService := service.NewSimulatedPaymentService()
	giftNoteService := service.NewGeminiGiftNoteService(cfg.GeminiApiKey, cfg.GeminiModel)

	authUseCase := usecase.NewAuthUseCase(profileRepo, firebaseAuthClient)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, profileRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, serviceRepo, profileRepo, paymentService, giftNoteService, hub, cfg.TaxRate)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, profileRepo)
	chatUseCase := usecase.NewChatUseCase(messageRepo, orderRepo, profileRepo, hub)

	handler.Setup(authUseCase, catalogUseCase, checkoutUseCase, orderUseCase, chatUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(profileRepo)

	wsHandler := handler.NewWebSocketHandler(wsManager, authMiddleware)
	paymentHandler := handler.NewPaymentHandler(checkoutUseCase)
	healthHandler := handler.NewHealthHandler(firestoreClient)

	router.Setup(e, authMiddleware, roleMiddleware)
	router.SetupPaymentRouter(e, paymentHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupHealthRouter(e, healthHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
