package bootstrap

import (
	"log"
	"time"

	"review-agent-be/internal/config"
	"review-agent-be/internal/controller"
	"review-agent-be/internal/pkg/logger"
	"review-agent-be/internal/pkg/mailer"
	"review-agent-be/internal/repository/implementation"
	"review-agent-be/internal/service"
	"review-agent-be/pkg/llm/factory"
	"review-agent-be/pkg/llm/gateway"
	"review-agent-be/pkg/pipeline"
	"review-agent-be/pkg/pipeline/prompt"
	"review-agent-be/pkg/pipeline/taxonomy"
	"review-agent-be/pkg/scheduler"

	pktNats "review-agent-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController     controller.IUserController
	DataController     controller.IDataController
	TagController      controller.ITagController
	AnalysisController controller.IAnalysisController
	ConfigController   controller.IConfigController
	ReportController   controller.IReportController
	NotifyController   controller.INotifyController
	LogController      controller.ILogController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	Scheduler       *scheduler.Scheduler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Model gateway
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	modelGateway := gateway.New(llmProvider, time.Duration(cfg.Ai.CallTimeoutSeconds)*time.Second)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	redisClient := redis.NewClient(opt)

	// 5. Repositories
	userRepo := implementation.NewUserRepository(db)
	fileRepo := implementation.NewFileRepository(db)
	tagRepo := implementation.NewTagRepository(db)
	analysisRepo := implementation.NewAnalysisRepository(db)
	scheduleRepo := implementation.NewScheduleConfigRepository(db)
	reportRepo := implementation.NewReportRepository(db)
	syncRecordRepo := implementation.NewSyncRecordRepository(db)

	// 6. Pipeline
	promptCatalog := prompt.NewCatalog()
	taxonomyBuilder := taxonomy.NewBuilder(tagRepo)
	executor := pipeline.NewExecutor(modelGateway, promptCatalog, taxonomyBuilder, sysLogger)

	// 7. Services
	notifyService := service.NewNotifyService(natsPub, redisClient, sysLogger)
	userService := service.NewUserService(userRepo, scheduleRepo)
	dataService := service.NewDataService(fileRepo, scheduleRepo, syncRecordRepo, notifyService, sysLogger)
	analysisService := service.NewAnalysisService(
		userRepo, fileRepo, analysisRepo, tagRepo, executor, notifyService,
		pubSub, cfg.App.CompletedTopicName, sysLogger,
	)
	tagService := service.NewTagService(tagRepo, analysisRepo, taxonomyBuilder)
	reportService := service.NewReportService(
		userRepo, analysisRepo, reportRepo, modelGateway, promptCatalog,
		emailService, notifyService, sysLogger,
	)

	// 8. Scheduler
	tasks := service.NewSchedulerTasks(dataService, analysisService, reportService, sysLogger)
	taskScheduler := scheduler.NewScheduler(scheduleRepo, tasks, cfg.Scheduler.MaxConcurrentTasks, sysLogger)
	configService := service.NewScheduleConfigService(scheduleRepo, taskScheduler)

	consumerService := service.NewConsumerService(pubSub, cfg.App.CompletedTopicName, notifyService, sysLogger)

	return &Container{
		UserController:     controller.NewUserController(userService),
		DataController:     controller.NewDataController(dataService),
		TagController:      controller.NewTagController(tagService),
		AnalysisController: controller.NewAnalysisController(analysisService),
		ConfigController:   controller.NewConfigController(configService),
		ReportController:   controller.NewReportController(reportService),
		NotifyController:   controller.NewNotifyController(notifyService),
		LogController:      controller.NewLogController(sysLogger),

		ConsumerService: consumerService,
		Scheduler:       taskScheduler,

		Logger: sysLogger,
	}
}
