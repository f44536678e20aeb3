package config

import (
	"context"
	"os"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/api/routes"
	"Smart-Fridge-Backend/internal/middleware"
	"Smart-Fridge-Backend/internal/scheduler"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/alert"
	"Smart-Fridge-Backend/pkg/detect"
	"Smart-Fridge-Backend/pkg/expiry"
	"Smart-Fridge-Backend/pkg/food"
	"Smart-Fridge-Backend/pkg/recipe"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *scheduler.Scheduler, error) {
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	thresholds := domain.AlertThresholds{
		Critical: utils.GetConfigInt("ALERT_CRITICAL_DAYS", 1),
		Warning:  utils.GetConfigInt("ALERT_WARNING_DAYS", 3),
		Normal:   utils.GetConfigInt("ALERT_NORMAL_DAYS", 7),
	}
	classifier, err := expiry.NewClassifier(thresholds)
	if err != nil {
		return nil, nil, err
	}

	// Repository
	foodRepository := food.NewFoodRepository(db)
	itemRepository := expiry.NewItemRepository(db)
	alertRepository := alert.NewAlertRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	alertService := alert.NewAlertService(alertRepository, notificationChannels()...)
	trackerService := expiry.NewTrackerService(
		itemRepository,
		alertRepository,
		alertService,
		classifier,
		utils.GetConfigInt("MAX_RECIPE_INGREDIENTS", expiry.DefaultMaxRecipeItems),
	)
	detectService := detect.NewDetectService(utils.GetConfigFloat("DETECTION_CONFIDENCE", 0.5))
	foodService := food.NewFoodService(foodRepository, detectService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, trackerService)

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	expiryHandler := handlers.NewExpiryHandler(trackerService)
	alertHandler := handlers.NewAlertHandler(alertService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		FoodHandler:   foodHandler,
		ExpiryHandler: expiryHandler,
		AlertHandler:  alertHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()

	// background expiry scans
	sched := scheduler.New(trackerService)
	if err := sched.Start(utils.GetConfigInt("SCAN_INTERVAL_HOURS", 12), utils.GetDailyCheckTimes()); err != nil {
		return nil, nil, err
	}

	return app, sched, nil
}

func notificationChannels() []alert.Channel {
	var channels []alert.Channel

	if utils.GetConfigBool("NOTIFY_DESKTOP") {
		channels = append(channels, alert.NewDesktopChannel())
	}

	if utils.GetConfigBool("NOTIFY_EMAIL") {
		if recipient := utils.GetConfig("ALERT_EMAIL_TO"); recipient != "" {
			channels = append(channels, alert.NewEmailChannel(recipient))
		}
	}

	if utils.GetConfigBool("NOTIFY_SMS") {
		phoneNumber := utils.GetConfig("ALERT_SMS_TO")
		if phoneNumber != "" {
			cfg, err := awsconfig.LoadDefaultConfig(
				context.Background(),
				awsconfig.WithRegion(utils.GetConfig("AWS_REGION")),
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					utils.GetConfig("AWS_ACCESS_KEY"),
					utils.GetConfig("AWS_SECRET_KEY"),
					"",
				)),
			)
			if err != nil {
				log.Errorf("failed to load AWS config for SMS channel: %v", err)
			} else {
				channels = append(channels, alert.NewSMSChannel(sns.NewFromConfig(cfg), phoneNumber))
			}
		}
	}

	return channels
}
