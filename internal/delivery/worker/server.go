// Package worker serves the Pub/Sub push endpoint of the alert worker.
package worker

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"raahi/config"
	"raahi/internal/delivery"
	"raahi/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the push endpoint on worker.port.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)

	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Worker.Port))

	return delivery.NewEchoServer(params.Lc, "worker", addr, e, nil, params.Logger), nil
}
