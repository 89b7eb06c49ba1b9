package bootstrap

import (
	"log"
	"time"

	"ecomia-be/internal/config"
	"ecomia-be/internal/controller"
	"ecomia-be/internal/pkg/logger"
	"ecomia-be/internal/pkg/mailer"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/internal/service"
	"ecomia-be/pkg/crypto"
	"ecomia-be/pkg/llm/factory"
	"ecomia-be/pkg/payments/mercadopago"
	"ecomia-be/pkg/search/tavily"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ChatController     controller.IChatController
	ResearchController controller.IResearchController
	StoreController    controller.IStoreController
	LandingController  controller.ILandingController
	AdminController    controller.IAdminController
	CheckoutController controller.ICheckoutController

	// Background services (exposed for main.go to run)
	ActivityConsumer service.IActivityConsumer
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers & External Clients
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
		time.Duration(cfg.Ai.TimeoutSecs)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	searchClient := tavily.NewClient(cfg.Keys.Tavily)
	mpClient := mercadopago.NewClient()

	codec, err := crypto.NewCodec(cfg.App.EncryptionKey)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize encryption codec: %v", err)
	}

	// 4. Services
	activityPublisher := service.NewActivityPublisher(pubSub, sysLogger)
	activityConsumer := service.NewActivityConsumer(pubSub, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory, cfg.App.JWTSecret)
	researchService := service.NewResearchService(uowFactory, activityPublisher)
	storeService := service.NewStoreService(uowFactory, activityPublisher)
	landingService := service.NewLandingService(uowFactory, activityPublisher)
	adminService := service.NewAdminService(uowFactory, cfg.Admin.SuperAdminEmails)

	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		searchClient,
		activityPublisher,
		sysLogger,
		cfg.App.ClientURL,
		cfg.App.Environment,
	)

	checkoutService := service.NewCheckoutService(
		uowFactory,
		mpClient,
		codec,
		emailService,
		activityPublisher,
		sysLogger,
		cfg.App.ClientURL,
	)

	// 5. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ChatController:     controller.NewChatController(chatService),
		ResearchController: controller.NewResearchController(researchService),
		StoreController:    controller.NewStoreController(storeService),
		LandingController:  controller.NewLandingController(landingService),
		AdminController:    controller.NewAdminController(adminService),
		CheckoutController: controller.NewCheckoutController(checkoutService),

		ActivityConsumer: activityConsumer,
	}
}
