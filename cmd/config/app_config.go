package config

import (
	"os"
	"time"

	"nourish-backend/internal/api/handlers"
	"nourish-backend/internal/api/routes"
	"nourish-backend/internal/middleware"
	"nourish-backend/internal/utils"
	"nourish-backend/internal/utils/storage"
	"nourish-backend/pkg/community"
	"nourish-backend/pkg/gateway"
	"nourish-backend/pkg/insight"
	"nourish-backend/pkg/inventory"
	"nourish-backend/pkg/jwt"
	"nourish-backend/pkg/shopping"
	"nourish-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	appLogger := utils.NewLogger(utils.GetConfig("LOG_LEVEL"))
	receiptReader := inventory.NewSimulatedReceiptReader(time.Now().UnixNano())
	provider := gateway.NewGemini(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
		nil,
		appLogger,
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	communityRepository := community.NewCommunityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository, userRepository, receiptReader, s3)
	planner := insight.NewPlanner(provider, appLogger)
	responder := insight.NewResponder(provider, appLogger)
	budgetPlanner := insight.NewBudgetPlanner(provider, appLogger)
	insightService := insight.NewInsightService(inventoryRepository, userRepository, planner, responder, appLogger)
	shoppingService := shopping.NewShoppingService(shoppingRepository, inventoryRepository, budgetPlanner)
	communityService := community.NewCommunityService(communityRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	insightHandler := handlers.NewInsightHandler(insightService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	communityHandler := handlers.NewCommunityHandler(communityService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		InventoryHandler: inventoryHandler,
		InsightHandler:   insightHandler,
		ShoppingHandler:  shoppingHandler,
		CommunityHandler: communityHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
