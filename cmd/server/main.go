package main

import (
	"fmt"
	"log"

	"github.com/snapstream/snapstream-api/adapters/event"
	httpAdapter "github.com/snapstream/snapstream-api/adapters/http"
	"github.com/snapstream/snapstream-api/adapters/media_storage"
	"github.com/snapstream/snapstream-api/adapters/persistence"
	"github.com/snapstream/snapstream-api/internal/application/service"
	accountUC "github.com/snapstream/snapstream-api/internal/application/usecase/account"
	mediaUC "github.com/snapstream/snapstream-api/internal/application/usecase/media"
	notificationUC "github.com/snapstream/snapstream-api/internal/application/usecase/notification"
	userUC "github.com/snapstream/snapstream-api/internal/application/usecase/user"
	"github.com/snapstream/snapstream-api/internal/config"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

func main() {
	fmt.Println("Start SnapStream API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	notifier, err := event.NewKafkaNotifier(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer notifier.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	mediaRepo := persistence.NewPostgresMediaRepo(dbPool, appLogger)
	notificationFeed := persistence.NewRedisNotificationFeed(redisClient, cfg.Notifications.FeedSize, appLogger)

	// Services
	verifier := service.NewCredentialVerifier(cfg.Auth.CredentialScheme)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	registerUseCase := accountUC.NewRegisterUseCase(userRepo, verifier, notifier, appLogger)
	loginUseCase := accountUC.NewLoginUseCase(userRepo, verifier, notifier, appLogger)
	createMediaUseCase := mediaUC.NewCreateMediaUseCase(mediaRepo)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(mediaRepo, uploader, notifier, appLogger)
	listMediaUseCase := mediaUC.NewListMediaUseCase(mediaRepo)
	attachAnalysisUseCase := mediaUC.NewAttachAnalysisUseCase(mediaRepo, notifier, appLogger)
	deleteMediaUseCase := mediaUC.NewDeleteMediaUseCase(mediaRepo)
	listUsersUseCase := userUC.NewListUsersUseCase(userRepo)
	listRecentUseCase := notificationUC.NewListRecentUseCase(notificationFeed)

	// HTTP Handlers
	accountHandler := httpAdapter.NewAccountHandler(registerUseCase, loginUseCase)
	mediaHandler := httpAdapter.NewMediaHandler(
		createMediaUseCase,
		uploadMediaUseCase,
		listMediaUseCase,
		attachAnalysisUseCase,
		deleteMediaUseCase,
		appLogger,
	)
	userHandler := httpAdapter.NewUserHandler(listUsersUseCase)
	notificationHandler := httpAdapter.NewNotificationHandler(listRecentUseCase)

	router := httpAdapter.NewRouter(accountHandler, mediaHandler, userHandler, notificationHandler, appLogger)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
