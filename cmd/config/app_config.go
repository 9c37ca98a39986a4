package config

import (
	"os"
	"time"

	"FitLog-Backend/internal/api/handlers"
	"FitLog-Backend/internal/api/routes"
	"FitLog-Backend/internal/middleware"
	"FitLog-Backend/internal/utils"
	"FitLog-Backend/internal/utils/storage"
	"FitLog-Backend/pkg/jwt"
	"FitLog-Backend/pkg/meal"
	"FitLog-Backend/pkg/user"
	"FitLog-Backend/pkg/workout"

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

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)
	workoutRepository := workout.NewWorkoutRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(
		userRepository,
		jwtService,
		s3,
		utils.GetConfig("SUPER_ADMIN_EMAIL"),
	)
	mealService := meal.NewMealService(mealRepository)
	workoutService := workout.NewWorkoutService(workoutRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	workoutHandler := handlers.NewWorkoutHandler(workoutService, validator)

	middlewares := middleware.NewMiddleware(userService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		MealHandler:    mealHandler,
		WorkoutHandler: workoutHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
