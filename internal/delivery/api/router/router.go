// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"surplus/config"
	"surplus/internal/delivery/api/middleware"
	"surplus/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	CatalogHandler  *handler.CatalogHandler
	WishlistHandler *handler.WishlistHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	profileHandler  *handler.ProfileHandler
	catalogHandler  *handler.CatalogHandler
	wishlistHandler *handler.WishlistHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
	basePath        string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		profileHandler:  params.ProfileHandler,
		catalogHandler:  params.CatalogHandler,
		wishlistHandler: params.WishlistHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
		basePath:        params.Config.HTTP.BasePath,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths end in a slash; the server adds it to requests that omit it.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health/", handler.HealthCheck)

	api := e.Group(r.basePath)

	// Public routes
	api.GET("/login/", r.userHandler.Login)
	api.POST("/register/", r.userHandler.Register)

	// Routes that require an API token
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile/", r.profileHandler.GetProfile)
		authed.PUT("/profile/", r.profileHandler.UpdateProfile)

		authed.GET("/home_screen/", r.catalogHandler.HomeScreen)
		authed.GET("/products/", r.catalogHandler.SearchProducts)

		authed.GET("/wishlist/", r.wishlistHandler.List)
		authed.POST("/wishlist/", r.wishlistHandler.Add)
		authed.DELETE("/wishlist/", r.wishlistHandler.Remove)

		authed.GET("/cart/", r.cartHandler.GetCart)
		authed.POST("/cart/", r.cartHandler.AddItem)
		authed.DELETE("/cart/", r.cartHandler.ClearCart)
		authed.PUT("/modify_cart/", r.cartHandler.ModifyItem)
		authed.DELETE("/modify_cart/", r.cartHandler.RemoveItem)
		authed.POST("/make_order/", r.cartHandler.MakeOrder)

		authed.GET("/orders/", r.orderHandler.ListOrders)
		authed.GET("/orders/:cartId/qr/", r.orderHandler.PickupQR)
	}
}
