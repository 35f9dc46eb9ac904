package routes

import (
	"Zero-Desperdicio/internal/api/handlers"
	"Zero-Desperdicio/internal/middleware"
	"Zero-Desperdicio/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	HouseholdHandler    handlers.HouseholdHandler
	FoodHandler         handlers.FoodHandler
	ShoppingHandler     handlers.ShoppingHandler
	ChallengeHandler    handlers.ChallengeHandler
	NotificationHandler handlers.NotificationHandler
	StatsHandler        handlers.StatsHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Household()
	c.FoodItems()
	c.Shopping()
	c.Challenges()
	c.Notifications()
	c.Stats()
	c.GuestRoute()
}

func (c *Config) Household() {
	household := c.App.Group("/api/v1/households")
	household.Post("/register", c.HouseholdHandler.Register)
	household.Post("/login", c.HouseholdHandler.Login)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) FoodItems() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))
	items.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	items.Post("", c.FoodHandler.AddFoodItem)
	items.Get("", c.FoodHandler.GetFoodItems)
	items.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	items.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
	items.Post("/:id/waste", c.FoodHandler.WasteFoodItem)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Get("", c.ShoppingHandler.GetShoppingList)
	shopping.Post("", c.ShoppingHandler.AddShoppingItem)
	// registered before /:id so "checked" is not taken for an id
	shopping.Delete("/checked", c.ShoppingHandler.ClearChecked)
	shopping.Patch("/:id/toggle", c.ShoppingHandler.ToggleShoppingItem)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteShoppingItem)
}

func (c *Config) Challenges() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	challenges := c.App.Group("/api/v1/challenges", auth)
	challenges.Get("", c.ChallengeHandler.GetActiveChallenges)
	challenges.Post("/scan", c.ChallengeHandler.ScanChallenges)
	challenges.Post("/:id/complete", c.ChallengeHandler.CompleteChallenge)

	c.App.Get("/api/v1/medals", auth, c.ChallengeHandler.GetEarnedMedals)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/generate", c.NotificationHandler.GenerateNotifications)
	notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService))
	stats.Get("", c.StatsHandler.GetMonthlyStats)
	stats.Get("/current", c.StatsHandler.GetCurrentMonth)
}
