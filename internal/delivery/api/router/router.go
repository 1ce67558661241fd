// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"raahi/config"
	"raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/response"
	"raahi/internal/delivery/api/router/handler"
	"raahi/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	PanicHandler    *handler.PanicHandler
	GeofenceHandler *handler.GeofenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	panicHandler    *handler.PanicHandler
	geofenceHandler *handler.GeofenceHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		panicHandler:    params.PanicHandler,
		geofenceHandler: params.GeofenceHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	operator := r.authMiddleware.RequireRole(entity.RoleOperator, entity.RoleAdmin)

	emergencyGroup := e.Group("/emergency")
	{
		panicMiddleware := []echo.MiddlewareFunc{r.authMiddleware.OptionalAuthenticate}
		if limiter := r.panicRateLimiter(); limiter != nil {
			panicMiddleware = append([]echo.MiddlewareFunc{limiter}, panicMiddleware...)
		}
		emergencyGroup.POST("/panic", r.panicHandler.CreatePanic, panicMiddleware...)

		emergencyGroup.GET("/my-alerts", r.panicHandler.ListMyAlerts, r.authMiddleware.Authenticate)

		alertsGroup := emergencyGroup.Group("/panic-alerts")
		alertsGroup.Use(r.authMiddleware.Authenticate)
		alertsGroup.Use(operator)
		{
			alertsGroup.GET("", r.panicHandler.ListAlerts)
			alertsGroup.GET("/:id", r.panicHandler.GetAlert)
			alertsGroup.GET("/:id/qrcode", r.panicHandler.GetAlertQRCode)
			alertsGroup.PUT("/:id/status", r.panicHandler.UpdateAlertStatus)
		}
	}

	geofencesGroup := e.Group("/geofences")
	{
		// Configured zones
		geofencesGroup.GET("/hardcoded", r.geofenceHandler.ListStaticGeofences)
		geofencesGroup.POST("/check-hardcoded", r.geofenceHandler.CheckStaticLocation)

		// Dynamic registry
		geofencesGroup.GET("", r.geofenceHandler.ListGeofences)
		geofencesGroup.POST("/check", r.geofenceHandler.CheckLocation)
		geofencesGroup.GET("/:id", r.geofenceHandler.GetGeofence)
		geofencesGroup.POST("", r.geofenceHandler.CreateGeofence, r.authMiddleware.Authenticate)
		geofencesGroup.PUT("/:id", r.geofenceHandler.UpdateGeofence, r.authMiddleware.Authenticate)
		geofencesGroup.DELETE("/:id", r.geofenceHandler.DeleteGeofence, r.authMiddleware.Authenticate)
	}
}

// panicRateLimiter throttles alert creation per client IP. It returns nil when disabled.
func (r *router) panicRateLimiter() echo.MiddlewareFunc {
	if r.config.Panic == nil || !r.config.Panic.RateLimit.Enabled {
		return nil
	}

	rl := r.config.Panic.RateLimit
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(rl.Max) / rl.Window.Seconds()),
		Burst:     rl.Max,
		ExpiresIn: rl.Window,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many panic alerts, please wait before retrying", nil)
		},
	})
}
