package config

import (
	"Recipedia-Backend/internal/api/handlers"
	"Recipedia-Backend/internal/api/routes"
	"Recipedia-Backend/internal/middleware"
	"Recipedia-Backend/internal/utils"
	"Recipedia-Backend/pkg/admin"
	"Recipedia-Backend/pkg/interaction"
	"Recipedia-Backend/pkg/jwt"
	"Recipedia-Backend/pkg/recipe"
	"Recipedia-Backend/pkg/recommendation"
	"Recipedia-Backend/pkg/user"
	"os"
	"time"

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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	adminRepository := admin.NewAdminRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)
	recommendationRepository := recommendation.NewRecommendationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	adminService := admin.NewAdminService(adminRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, interactionRepository)
	interactionService := interaction.NewInteractionService(interactionRepository, recipeRepository)
	recommendationService := recommendation.NewRecommendationService(recommendationRepository, interactionRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, recommendationService, validator)
	interactionHandler := handlers.NewInteractionHandler(interactionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		AdminHandler:       adminHandler,
		RecipeHandler:      recipeHandler,
		InteractionHandler: interactionHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
