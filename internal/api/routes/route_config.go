package routes

import (
	"Smart-Fridge-Backend/internal/api/handlers"
	"Smart-Fridge-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	FoodHandler   handlers.FoodHandler
	ExpiryHandler handlers.ExpiryHandler
	AlertHandler  handlers.AlertHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.FoodItems()
	c.Expiry()
	c.Alerts()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items")
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)

	// Special operations
	foodItems.Post("/consume", c.FoodHandler.MarkAsConsumed)
	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Expiry() {
	expiry := c.App.Group("/api/v1/expiry")
	expiry.Get("/status", c.ExpiryHandler.CheckExpiryStatus)
	expiry.Post("/alerts", c.ExpiryHandler.GenerateAlerts)
	expiry.Get("/recipe-candidates", c.ExpiryHandler.GetRecipeCandidates)
	expiry.Get("/waste-stats", c.ExpiryHandler.GetWasteStatistics)
	expiry.Get("/insights", c.ExpiryHandler.GetConsumptionInsights)
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/api/v1/alerts")
	alerts.Get("", c.AlertHandler.GetUnreadAlerts)
	alerts.Get("/summary", c.AlertHandler.GetAlertSummary)
	alerts.Post("/read", c.AlertHandler.MarkAlertAsRead)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
