package bootstrap

import (
	"context"
	"log"
	"time"

	"mindvault-be/internal/config"
	"mindvault-be/internal/controller"
	"mindvault-be/internal/pkg/logger"
	"mindvault-be/internal/pkg/mailer"
	"mindvault-be/internal/repository/cache"
	"mindvault-be/internal/repository/memory"
	"mindvault-be/internal/repository/unitofwork"
	"mindvault-be/internal/service"
	"mindvault-be/pkg/admin/dashboard"

	pktNats "mindvault-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activityTopicName = "USER_ACTIVITY"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	IdeaController      controller.IIdeaController
	AnalyticsController controller.IAnalyticsController
	AdminController     controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}
	dashboardCache := cache.NewDashboardCache(rdb)

	loginAttempts := memory.NewLoginAttemptStore(
		cfg.Auth.LoginAttemptLimit,
		time.Duration(cfg.Auth.LoginAttemptWindow)*time.Minute,
	)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, activityTopicName)
	consumerService := service.NewConsumerService(pubSub, activityTopicName, uowFactory)

	authService := service.NewAuthService(uowFactory, emailService, loginAttempts, natsPub, publisherService)
	userService := service.NewUserService(uowFactory, dashboardCache, natsPub)
	ideaService := service.NewIdeaService(uowFactory, dashboardCache, natsPub, publisherService)
	analyticsService := service.NewAnalyticsService(uowFactory, dashboardCache, publisherService)

	statsAggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(uowFactory, statsAggregator, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		IdeaController:      controller.NewIdeaController(ideaService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		AdminController:     controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
