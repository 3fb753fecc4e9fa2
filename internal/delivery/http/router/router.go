// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"kirana/internal/delivery/http/middleware"
	"kirana/internal/delivery/http/router/handler"
	"kirana/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ShopHandler         *handler.ShopHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/owner/register", p.AccountHandler.RegisterOwner)
		authGroup.POST("/owner/login", p.AccountHandler.LoginOwner)
		authGroup.POST("/customer/login", p.AccountHandler.LoginCustomer)
		authGroup.POST("/admin/login", p.AccountHandler.LoginAdmin)
	}

	// Owner routes require authentication and the "owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(p.AuthMiddleware.Authenticate)
	ownerGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleOwner))
	{
		ownerGroup.POST("/shop", p.ShopHandler.SetupShop)
		ownerGroup.GET("/shop", p.ShopHandler.GetShop)
		ownerGroup.GET("/shop/qr", p.ShopHandler.ShopQR)

		ownerGroup.GET("/products", p.CatalogHandler.ListAll)
		ownerGroup.POST("/products", p.CatalogHandler.AddProduct)
		ownerGroup.PATCH("/products/:id", p.CatalogHandler.UpdateProduct)
		ownerGroup.DELETE("/products/:id", p.CatalogHandler.DeleteProduct)
		ownerGroup.PATCH("/products/:id/availability", p.CatalogHandler.SetAvailability)

		ownerGroup.GET("/orders", p.OrderHandler.ListOrders)
		ownerGroup.GET("/orders/:id", p.OrderHandler.GetOrder)
		ownerGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateStatus)

		ownerGroup.GET("/notifications", p.NotificationHandler.List(entity.QueueOwner))
		ownerGroup.GET("/notifications/unread", p.NotificationHandler.UnreadCount(entity.QueueOwner))
		ownerGroup.POST("/notifications/read", p.NotificationHandler.MarkAllRead(entity.QueueOwner))
	}

	// Customer routes require authentication and the "customer" role
	customerGroup := e.Group("/customer")
	customerGroup.Use(p.AuthMiddleware.Authenticate)
	customerGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/shop", p.ShopHandler.CustomerShopView)
		customerGroup.GET("/products", p.CatalogHandler.ListAvailable)

		customerGroup.GET("/cart", p.CartHandler.Get)
		customerGroup.POST("/cart/items", p.CartHandler.AddItem)
		customerGroup.PUT("/cart/items/:productId", p.CartHandler.SetQuantity)
		customerGroup.DELETE("/cart/items/:productId", p.CartHandler.RemoveItem)
		customerGroup.DELETE("/cart", p.CartHandler.Clear)

		customerGroup.POST("/orders", p.OrderHandler.PlaceOrder)
		customerGroup.GET("/orders", p.OrderHandler.ListOrders)
		customerGroup.GET("/orders/:id", p.OrderHandler.GetOrder)
		customerGroup.GET("/orders/:id/track", p.OrderHandler.Track)
		customerGroup.POST("/orders/:id/rating", p.ProfileHandler.RateOrder)
		customerGroup.GET("/orders/:id/rating", p.ProfileHandler.RatingForOrder)

		customerGroup.GET("/profile", p.ProfileHandler.GetProfile)
		customerGroup.PUT("/profile", p.ProfileHandler.SaveProfile)
		customerGroup.GET("/addresses", p.ProfileHandler.ListAddresses)
		customerGroup.POST("/addresses", p.ProfileHandler.AddAddress)
		customerGroup.DELETE("/addresses/:id", p.ProfileHandler.DeleteAddress)

		customerGroup.GET("/saved-lists", p.ProfileHandler.ListSavedLists)
		customerGroup.POST("/saved-lists", p.ProfileHandler.CreateSavedList)
		customerGroup.DELETE("/saved-lists/:id", p.ProfileHandler.DeleteSavedList)
		customerGroup.POST("/saved-lists/:id/apply", p.ProfileHandler.ApplySavedList)

		customerGroup.GET("/notifications", p.NotificationHandler.List(entity.QueueCustomer))
		customerGroup.GET("/notifications/unread", p.NotificationHandler.UnreadCount(entity.QueueCustomer))
		customerGroup.POST("/notifications/read", p.NotificationHandler.MarkAllRead(entity.QueueCustomer))
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stores", p.AdminHandler.ListStores)
		adminGroup.POST("/stores/toggle-status", p.AdminHandler.ToggleShopStatus)
		adminGroup.GET("/flags", p.AdminHandler.GetFlags)
		adminGroup.POST("/flags/customer", p.AdminHandler.ToggleCustomerBlocked)
		adminGroup.POST("/flags/owner", p.AdminHandler.ToggleOwnerSuspended)
		adminGroup.GET("/orders", p.AdminHandler.ListOrders)
		adminGroup.GET("/overview", p.AdminHandler.Overview)
	}
}
