// Package api serves the RAAHI HTTP API.
package api

import (
	"log/slog"
	"net"
	"strconv"

	"raahi/config"
	"raahi/internal/delivery"
	apimiddleware "raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/router"
	"raahi/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	httpCfg := params.Cfg.HTTP

	e := delivery.NewEcho(params.Logger)
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// Browser dashboards read the request id and back off on Retry-After.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders: []string{echo.HeaderXRequestID, "Retry-After"},
	}))
	e.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(httpCfg.Port))

	return delivery.NewEchoServer(params.Lc, "api", addr, e, &http2.Server{IdleTimeout: httpCfg.Timeouts.IdleTimeout}, params.Logger), nil
}
