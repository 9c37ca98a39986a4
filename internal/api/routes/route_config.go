package routes

import (
	"FitLog-Backend/internal/api/handlers"
	"FitLog-Backend/internal/middleware"
	"FitLog-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	MealHandler    handlers.MealHandler
	WorkoutHandler handlers.WorkoutHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Meals()
	c.Workouts()
	c.GuestRoute()
	c.Pages()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	auth.Post("/callback", c.UserHandler.SignInCallback)
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.Middleware.AuthMiddleware(c.JWTService))
	users.Get("/me", c.UserHandler.Me)
	users.Patch("/avatar", c.Middleware.ApprovedOnly(), c.UserHandler.UpdateAvatar)

	// admin-only approval workflow
	users.Get("/unapproved", c.Middleware.AdminOnly(), c.UserHandler.GetUnapprovedUsers)
	users.Post("/approve", c.Middleware.AdminOnly(), c.UserHandler.ApproveUser)
}

func (c *Config) Meals() {
	meals := c.App.Group(
		"/api/v1/meals",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.ApprovedOnly(),
	)
	meals.Post("", c.MealHandler.SaveMeals)
	meals.Get("", c.MealHandler.FetchMeals)
	meals.Get("/range", c.MealHandler.FetchMealsRange)
}

func (c *Config) Workouts() {
	workouts := c.App.Group(
		"/api/v1/workouts",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.ApprovedOnly(),
	)
	workouts.Post("", c.WorkoutHandler.SaveWorkouts)
	workouts.Get("", c.WorkoutHandler.FetchWorkouts)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Pages registers the browser-facing routes. Rendering belongs to the front
// end; these endpoints exist to carry the route-level access rules.
func (c *Config) Pages() {
	c.App.Get("/auth/signin", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Sign in with your identity provider to continue"})
	})

	gate := c.Middleware.PageGate(c.JWTService)

	c.App.Get("/", gate, func(c *fiber.Ctx) error {
		return c.Redirect("/meals", fiber.StatusFound)
	})
	c.App.Get("/meals", gate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Meal tracker"})
	})
	c.App.Get("/approval", gate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Pending approvals"})
	})
	c.App.Get("/access-pending", gate, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Your account is awaiting approval"})
	})
}
