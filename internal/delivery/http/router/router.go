// Package router contains routing setup for the HTTP delivery.
package router

import (
	"carmarket/config"
	"carmarket/internal/delivery/http/middleware"
	"carmarket/internal/delivery/http/router/handler"
	"carmarket/internal/domain/entity"
	"carmarket/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CarHandler      *handler.CarHandler
	OfferHandler    *handler.OfferHandler
	PurchaseHandler *handler.PurchaseHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Gatherer        prometheus.Gatherer `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	carHandler      *handler.CarHandler
	offerHandler    *handler.OfferHandler
	purchaseHandler *handler.PurchaseHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
	gatherer        prometheus.Gatherer
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	gatherer := params.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &router{
		userHandler:     params.UserHandler,
		carHandler:      params.CarHandler,
		offerHandler:    params.OfferHandler,
		purchaseHandler: params.PurchaseHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
		gatherer:        gatherer,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/buyer", r.userHandler.RegisterBuyer)
		authGroup.POST("/register/dealership", r.userHandler.RegisterDealership)
		authGroup.POST("/login", r.userHandler.Login)
	}

	adminGroup := e.Group("/admin", authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/users", r.userHandler.RegisterAdmin)
		adminGroup.PATCH("/users/:id/active", r.userHandler.SetUserActive)
	}

	e.GET("/users/:id", r.userHandler.GetUser, authenticate)

	// Catalog reads are public, writes require an account.
	carsGroup := e.Group("/cars")
	{
		carsGroup.GET("", r.carHandler.Search)
		carsGroup.GET("/available", r.carHandler.ListAvailable)
		carsGroup.GET("/:id", r.carHandler.GetCar)
		carsGroup.GET("/:id/reviews", r.carHandler.ReviewSummary)
		carsGroup.POST("", r.carHandler.RegisterCar, authenticate)
		carsGroup.PATCH("/:id", r.carHandler.UpdateCar, authenticate)
		carsGroup.PATCH("/:id/availability", r.carHandler.SetAvailability, authenticate)
	}

	offersGroup := e.Group("/offers")
	{
		offersGroup.GET("", r.offerHandler.ListAvailable)
		offersGroup.GET("/:id", r.offerHandler.GetOffer)
		offersGroup.GET("/:id/qr", r.offerHandler.QRCode)
		offersGroup.POST("", r.offerHandler.CreateOffer, authenticate)
		offersGroup.PATCH("/:id", r.offerHandler.UpdateOffer, authenticate)
		offersGroup.POST("/:id/close", r.offerHandler.CloseOffer, authenticate)
		offersGroup.POST("/:id/reopen", r.offerHandler.ReopenOffer, authenticate)
	}

	dealershipsGroup := e.Group("/dealerships")
	{
		dealershipsGroup.GET("/:id/offers", r.offerHandler.ListByDealership)
		dealershipsGroup.GET("/:id/offers/car/:carId", r.offerHandler.FindByCarAndDealership)
		dealershipsGroup.GET("/:id/purchases", r.purchaseHandler.ListByDealership, authenticate)
	}

	purchasesGroup := e.Group("/purchases", authenticate)
	{
		purchasesGroup.POST("", r.purchaseHandler.CreatePurchase)
		purchasesGroup.GET("/:id", r.purchaseHandler.GetPurchase)
		purchasesGroup.GET("/:id/summary", r.purchaseHandler.GetSummary)
		purchasesGroup.POST("/:id/confirm", r.purchaseHandler.Confirm)
		purchasesGroup.POST("/:id/deliver", r.purchaseHandler.Deliver)
		purchasesGroup.POST("/:id/cancel", r.purchaseHandler.Cancel)
		purchasesGroup.POST("/:id/revert", r.purchaseHandler.Revert)
	}

	buyersGroup := e.Group("/buyers", authenticate)
	{
		buyersGroup.GET("/:id/purchases", r.purchaseHandler.ListByBuyer)
		buyersGroup.GET("/:id/favorites", r.favoriteHandler.ListByBuyer)
		buyersGroup.POST("/:id/favorites", r.favoriteHandler.AddFavorite)
		buyersGroup.DELETE("/:id/favorites/:carId", r.favoriteHandler.RemoveFavorite)
	}

	favoritesGroup := e.Group("/favorites", authenticate)
	{
		favoritesGroup.PATCH("/:id/review", r.favoriteHandler.UpdateReview)
		favoritesGroup.PATCH("/:id/notification", r.favoriteHandler.SetNotification)
		favoritesGroup.POST("/:id/notification/toggle", r.favoriteHandler.ToggleNotification)
	}
}
