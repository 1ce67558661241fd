// Package delivery defines the inbound transports and the echo plumbing they share.
package delivery

import (
	"context"
	"log/slog"
	"net/http"

	"raahi/internal/delivery/middleware"
	"raahi/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// NewEcho returns an echo instance with the middleware every transport needs:
// panic recovery, request ids and an access log that skips health probes.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	// Request ids come before the access log so every line carries one.
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))

	return e
}

// EchoServer serves an echo instance on addr until the fx lifecycle stops it.
type EchoServer struct {
	name   string
	addr   string
	echo   *echo.Echo
	h2c    *http2.Server
	logger *slog.Logger
}

// NewEchoServer registers the graceful shutdown hook and returns the server.
// A non-nil h2c enables cleartext HTTP/2 for clients behind a load balancer.
func NewEchoServer(lc fx.Lifecycle, name, addr string, e *echo.Echo, h2c *http2.Server, logger *slog.Logger) *EchoServer {
	srv := &EchoServer{
		name:   name,
		addr:   addr,
		echo:   e,
		h2c:    h2c,
		logger: logger.With(slog.String("server", name)),
	}
	lc.Append(fx.Hook{OnStop: srv.stop})

	return srv
}

func (s *EchoServer) Serve(context.Context) error {
	s.logger.Info("HTTP server listening", slog.String("addr", s.addr))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server stopped", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("HTTP server shutting down")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
