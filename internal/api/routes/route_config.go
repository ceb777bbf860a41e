package routes

import (
	"nourish-backend/internal/api/handlers"
	"nourish-backend/internal/middleware"
	"nourish-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	InventoryHandler handlers.InventoryHandler
	InsightHandler   handlers.InsightHandler
	ShoppingHandler  handlers.ShoppingHandler
	CommunityHandler handlers.CommunityHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.Insights()
	c.Shopping()
	c.Community()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}

	c.App.Get("/api/v1/resources", c.UserHandler.GetResources)
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboard)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)

	// Consumption logging
	inventory.Post("/consume", c.InventoryHandler.ConsumeItem)
	inventory.Post("/waste", c.InventoryHandler.WasteItem)

	// Images and receipt scanning
	inventory.Post("/image", c.InventoryHandler.UploadItemImage)
	inventory.Post("/receipt-scan", c.InventoryHandler.UploadReceipt)
	inventory.Post("/save-scanned", c.InventoryHandler.SaveScannedItems)
}

func (c *Config) Insights() {
	insights := c.App.Group("/api/v1/insights", c.Middleware.AuthMiddleware(c.JWTService))
	insights.Get("", c.InsightHandler.GetImpactInsights)
	insights.Get("/risks", c.InsightHandler.GetExpirationRisks)
	insights.Post("/meal-plan", c.InsightHandler.GenerateMealPlan)
	insights.Post("/chat", c.InsightHandler.Chat)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Post("", c.ShoppingHandler.AddItem)
	shopping.Get("", c.ShoppingHandler.GetItems)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteItem)
	shopping.Patch("/:id/purchase", c.ShoppingHandler.MarkPurchased)
	shopping.Post("/generate", c.ShoppingHandler.GenerateList)
}

func (c *Config) Community() {
	community := c.App.Group("/api/v1/community", c.Middleware.AuthMiddleware(c.JWTService))
	community.Post("", c.CommunityHandler.CreatePost)
	community.Get("", c.CommunityHandler.GetPosts)
	community.Post("/:id/claim", c.CommunityHandler.ClaimPost)
	community.Post("/:id/close", c.CommunityHandler.ClosePost)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
