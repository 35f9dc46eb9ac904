package config

import (
	"Zero-Desperdicio/internal/api/handlers"
	"Zero-Desperdicio/internal/api/routes"
	"Zero-Desperdicio/internal/middleware"
	"Zero-Desperdicio/internal/utils"
	"Zero-Desperdicio/internal/utils/mailing"
	"Zero-Desperdicio/internal/utils/storage"
	"Zero-Desperdicio/pkg/challenge"
	"Zero-Desperdicio/pkg/household"
	"Zero-Desperdicio/pkg/inventory"
	"Zero-Desperdicio/pkg/jwt"
	"Zero-Desperdicio/pkg/notification"
	"Zero-Desperdicio/pkg/shopping"
	"Zero-Desperdicio/pkg/stats"
	"Zero-Desperdicio/pkg/store"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const slotObjectPrefix = "slots/"

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	slotRepository, err := NewSlotRepository(db, utils.GetConfig("STORE_BACKEND"))
	if err != nil {
		return nil, err
	}
	householdRepository := household.NewHouseholdRepository(db)
	slots := store.NewStore(slotRepository)

	// Service
	jwtService := jwt.NewJWTService()
	householdService := household.NewHouseholdService(householdRepository, jwtService)
	dispatchers, err := NewDispatchers(utils.GetConfigList("NOTIFY_CHANNELS"), householdService)
	if err != nil {
		return nil, err
	}
	inventoryService := inventory.NewInventoryService(slots)
	shoppingService := shopping.NewShoppingService(slots)
	challengeService := challenge.NewChallengeService(slots)
	notificationService := notification.NewNotificationService(slots, dispatchers...)
	statsService := stats.NewStatsService(slots)

	// Handler
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	foodHandler := handlers.NewFoodHandler(inventoryService, validator, time.Now)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	challengeHandler := handlers.NewChallengeHandler(challengeService, time.Now)
	notificationHandler := handlers.NewNotificationHandler(notificationService, time.Now)
	statsHandler := handlers.NewStatsHandler(statsService, time.Now)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		HouseholdHandler:    householdHandler,
		FoodHandler:         foodHandler,
		ShoppingHandler:     shoppingHandler,
		ChallengeHandler:    challengeHandler,
		NotificationHandler: notificationHandler,
		StatsHandler:        statsHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// NewSlotRepository picks where household collections live: postgres
// (default), an S3 bucket, or process memory.
func NewSlotRepository(db *gorm.DB, backend string) (store.SlotRepository, error) {
	switch backend {
	case "", "postgres":
		return store.NewSlotRepository(db), nil
	case "s3":
		s3, err := storage.NewAwsS3()
		if err != nil {
			return nil, err
		}
		return store.NewS3SlotRepository(s3, slotObjectPrefix), nil
	case "memory":
		log.Warn("STORE_BACKEND=memory, data is lost on restart")
		return store.NewMemorySlotRepository(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

// NewDispatchers builds the delivery channels listed in NOTIFY_CHANNELS.
func NewDispatchers(channels []string, householdService household.HouseholdService) ([]notification.Dispatcher, error) {
	var dispatchers []notification.Dispatcher
	for _, channel := range channels {
		switch channel {
		case "mail":
			dispatchers = append(dispatchers, notification.NewMailDispatcher(householdService.GetEmail, mailing.SendMail))
		case "sns":
			topicARN := utils.GetConfig("SNS_TOPIC_ARN")
			if topicARN == "" {
				return nil, fmt.Errorf("notification channel sns needs SNS_TOPIC_ARN")
			}
			cfg, err := storage.LoadAwsConfig(context.Background())
			if err != nil {
				return nil, err
			}
			dispatchers = append(dispatchers, notification.NewSNSDispatcher(sns.NewFromConfig(cfg), topicARN))
		default:
			return nil, fmt.Errorf("unknown notification channel %q", channel)
		}
	}
	return dispatchers, nil
}
