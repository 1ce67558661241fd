package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "raahi/internal/delivery/context"
	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	mocks "raahi/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mocks.MockTokenVerifier) {
	t.Helper()

	verifier := mocks.NewMockTokenVerifier(t)

	return NewAuthMiddleware(verifier, slog.New(slog.NewTextHandler(io.Discard, nil))), verifier
}

func serve(handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))

	return rec
}

func actorEcho(c echo.Context) error {
	actor, ok := GetActor(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, actor.UserID)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, verifier := newTestAuthMiddleware(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "good").
		Return(&entity.Actor{UserID: "u1", Roles: entity.Roles{entity.RoleUser}}, nil).Once()
	verifier.EXPECT().VerifyToken(mock.Anything, "bad").
		Return(nil, domainerrors.ErrUnauthenticated).Once()

	rec := serve(m.Authenticate(actorEcho), "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(m.Authenticate(actorEcho), "Bearer bad").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(m.Authenticate(actorEcho), "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(m.Authenticate(actorEcho), "Basic dTpw").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(m.Authenticate(actorEcho), "Bearer ").Code)
}

func TestAuthMiddleware_Authenticate_TagsRequestContext(t *testing.T) {
	m, verifier := newTestAuthMiddleware(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "good").
		Return(&entity.Actor{UserID: "op-7", Roles: entity.Roles{entity.RoleOperator}}, nil).Once()

	rec := serve(m.Authenticate(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.NotNil(t, deliverycontext.LoggerFrom(ctx, nil))

		return c.String(http.StatusOK, deliverycontext.ActorIDFrom(ctx))
	}), "Bearer good")

	assert.Equal(t, "op-7", rec.Body.String())
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	m, verifier := newTestAuthMiddleware(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "good").
		Return(&entity.Actor{UserID: "u1"}, nil).Once()
	verifier.EXPECT().VerifyToken(mock.Anything, "expired").
		Return(nil, domainerrors.ErrUnauthenticated).Once()

	assert.Equal(t, "u1", serve(m.OptionalAuthenticate(actorEcho), "Bearer good").Body.String())

	rec := serve(m.OptionalAuthenticate(actorEcho), "Bearer expired")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	assert.Equal(t, "anonymous", serve(m.OptionalAuthenticate(actorEcho), "").Body.String())
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, verifier := newTestAuthMiddleware(t)
	verifier.EXPECT().VerifyToken(mock.Anything, "tourist").
		Return(&entity.Actor{UserID: "u1", Roles: entity.Roles{entity.RoleUser}}, nil).Once()
	verifier.EXPECT().VerifyToken(mock.Anything, "admin").
		Return(&entity.Actor{UserID: "a1", Roles: entity.Roles{entity.RoleAdmin}}, nil).Once()

	guarded := m.Authenticate(m.RequireRole(entity.RoleOperator, entity.RoleAdmin)(actorEcho))

	assert.Equal(t, http.StatusForbidden, serve(guarded, "Bearer tourist").Code)

	rec := serve(guarded, "Bearer admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a1", rec.Body.String())

	// Without Authenticate there is no actor
	assert.Equal(t, http.StatusUnauthorized, serve(m.RequireRole(entity.RoleAdmin)(actorEcho), "").Code)
}

func TestGetUserIDAndRoles(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetActor(c, entity.Actor{UserID: "u1", Roles: entity.Roles{entity.RoleOperator}})
	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, entity.Roles{entity.RoleOperator}, roles)
}
