package bootstrap

import (
	"time"

	"notevision-be/internal/config"
	"notevision-be/internal/controller"
	"notevision-be/internal/pkg/logger"
	"notevision-be/internal/pkg/mailer"
	"notevision-be/internal/pkg/serverutils"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/internal/service"
	"notevision-be/pkg/chatbot"
	"notevision-be/pkg/ocr"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const notebookSharedTopic = "NOTEBOOK_SHARED"

type Container struct {
	Logger logger.ILogger

	AuthController      controller.IAuthController
	UserController      controller.IUserController
	NotebookController  controller.INotebookController
	NoteController      controller.INoteController
	DiscoveryController controller.IDiscoveryController
	AiController        controller.IAiController

	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	uowFactory := unitofwork.NewRepositoryFactory(db)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		sysLogger,
	)

	authMiddleware := serverutils.NewJwtMiddleware(cfg.Keys.JWTSecret)

	var geminiClient *chatbot.GeminiClient
	if cfg.Keys.GoogleGemini != "" {
		geminiClient = chatbot.NewGeminiClient(cfg.Keys.GoogleGemini)
	}
	ocrClient := ocr.NewClient(cfg.Keys.OCRBaseURL)

	publisherService := service.NewPublisherService(notebookSharedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, notebookSharedTopic, emailService, sysLogger)

	authService := service.NewAuthService(uowFactory, cfg.Keys.JWTSecret)
	userService := service.NewUserService(uowFactory)
	notebookService := service.NewNotebookService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory)
	discoveryService := service.NewDiscoveryService(uowFactory, time.Duration(cfg.App.SearchCacheTTL)*time.Second)
	aiService := service.NewAiService(uowFactory, geminiClient, ocrClient)
	exportService := service.NewExportService(uowFactory)

	return &Container{
		Logger: sysLogger,

		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService, authMiddleware),
		NotebookController:  controller.NewNotebookController(notebookService, exportService, aiService, authMiddleware),
		NoteController:      controller.NewNoteController(noteService, authMiddleware),
		DiscoveryController: controller.NewDiscoveryController(discoveryService, authMiddleware),
		AiController:        controller.NewAiController(aiService, authMiddleware),

		ConsumerService: consumerService,
	}
}
