package routes

import (
	"Recipedia-Backend/internal/api/handlers"
	"Recipedia-Backend/internal/middleware"
	"Recipedia-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	AdminHandler       handlers.AdminHandler
	RecipeHandler      handlers.RecipeHandler
	InteractionHandler handlers.InteractionHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.UserRecipes()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/verify", c.UserHandler.Verify)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/recommended", c.RecipeHandler.GetRecommendations)
		recipes.Get("/meta/filters", c.RecipeHandler.GetFilters)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) UserRecipes() {
	userRecipes := c.App.Group("/user/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		userRecipes.Get("/saved", c.InteractionHandler.GetSavedRecipes)
		userRecipes.Post("/bulk-save", c.InteractionHandler.BulkSave)
		userRecipes.Post("/:id/save", c.InteractionHandler.SaveRecipe)
		userRecipes.Delete("/:id/save", c.InteractionHandler.UnsaveRecipe)
		userRecipes.Post("/:id/tried", c.InteractionHandler.MarkTried)
		userRecipes.Delete("/:id/tried", c.InteractionHandler.UnmarkTried)
		userRecipes.Post("/:id/rate", c.InteractionHandler.RateRecipe)
		userRecipes.Delete("/:id/rate", c.InteractionHandler.RemoveRating)
	}
}

func (c *Config) Admin() {
	c.App.Post("/admin/login", c.AdminHandler.Login)

	adminRecipes := c.App.Group(
		"/admin/recipes",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		adminRecipes.Get("/stats/overview", c.AdminHandler.GetRecipeStatsOverview)
		adminRecipes.Post("", c.RecipeHandler.CreateRecipe)
		adminRecipes.Get("", c.RecipeHandler.AdminGetRecipes)
		adminRecipes.Get("/:id", c.RecipeHandler.AdminGetRecipeDetail)
		adminRecipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		adminRecipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		adminRecipes.Patch("/:id/toggle-status", c.RecipeHandler.ToggleStatus)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
