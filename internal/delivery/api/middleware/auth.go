package middleware

import (
	"log/slog"
	"strings"

	"raahi/internal/delivery/api/response"
	deliverycontext "raahi/internal/delivery/context"
	"raahi/internal/domain/entity"
	"raahi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyActor = "actor"
	bearerPrefix    = "Bearer "
)

// AuthMiddleware authenticates bearer tokens and enforces roles.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header must carry a Bearer token")
		}

		if err := m.authenticate(c, token); err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		return next(c)
	}
}

// OptionalAuthenticate attaches the actor when a valid token is present and
// lets the request through otherwise. A panic must never be refused for a
// stale token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if err := m.authenticate(c, token); err != nil {
				deliverycontext.LoggerFrom(c.Request().Context(), m.logger).
					Warn("Ignoring invalid token on optional route", slog.Any("error", err))
			}
		}

		return next(c)
	}
}

// RequireRole lets the request through when the actor holds any of roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
			}

			for _, role := range roles {
				if actor.Roles.Contains(role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Insufficient role for this operation")
		}
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string) error {
	actor, err := m.verifier.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return err
	}

	c.Set(contextKeyActor, *actor)

	// Tag the request logger so use case logs name the caller.
	ctx := c.Request().Context()
	logger := deliverycontext.LoggerFrom(ctx, m.logger).With(slog.String("actor_id", actor.UserID))
	ctx = deliverycontext.WithActorID(ctx, actor.UserID)
	ctx = deliverycontext.WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))

	return nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}

// GetActor returns the authenticated caller.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(contextKeyActor).(entity.Actor)

	return actor, ok
}

// GetUserID returns the authenticated caller's id.
func GetUserID(c echo.Context) (string, bool) {
	actor, ok := GetActor(c)
	if !ok || actor.UserID == "" {
		return "", false
	}

	return actor.UserID, true
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return nil, false
	}

	return actor.Roles, true
}

// SetActor attaches an actor to the echo context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(contextKeyActor, actor)
}
