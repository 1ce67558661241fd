package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"raahi/config"
	"raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/router/handler"
	"raahi/internal/delivery/api/validator"
	"raahi/internal/domain/entity"
	servicemocks "raahi/internal/mocks/service"
	usecasemocks "raahi/internal/mocks/usecase"
	"raahi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testRouter struct {
	e        *echo.Echo
	panicUC  *usecasemocks.MockPanicUsecase
	fenceUC  *usecasemocks.MockGeofenceUsecase
	verifier *servicemocks.MockTokenVerifier
}

func newTestRouter(t *testing.T, cfg *config.Config) *testRouter {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tr := &testRouter{
		e:        echo.New(),
		panicUC:  usecasemocks.NewMockPanicUsecase(t),
		fenceUC:  usecasemocks.NewMockGeofenceUsecase(t),
		verifier: servicemocks.NewMockTokenVerifier(t),
	}
	tr.e.Validator = validator.New()

	NewRouter(RouterParams{
		PanicHandler:    handler.NewPanicHandler(handler.PanicHandlerParams{PanicUC: tr.panicUC, Logger: logger}),
		GeofenceHandler: handler.NewGeofenceHandler(handler.GeofenceHandlerParams{GeofenceUC: tr.fenceUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tr.verifier, logger),
		Config:          cfg,
	}).RegisterRoutes(tr.e)

	return tr
}

func (tr *testRouter) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.RemoteAddr = "203.0.113.7:5555"
	rec := httptest.NewRecorder()
	tr.e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_OperatorRoutesRequireRole(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})
	tr.verifier.EXPECT().VerifyToken(mock.Anything, "tourist").
		Return(&entity.Actor{UserID: "u1", Roles: entity.Roles{entity.RoleUser}}, nil)
	tr.verifier.EXPECT().VerifyToken(mock.Anything, "operator").
		Return(&entity.Actor{UserID: "op-1", Roles: entity.Roles{entity.RoleOperator}}, nil)
	tr.panicUC.EXPECT().ListAllAlerts(mock.Anything, 0, entity.AlertStatus("")).
		Return([]*entity.PanicAlert{}, nil).Once()

	assert.Equal(t, http.StatusUnauthorized, tr.do(http.MethodGet, "/emergency/panic-alerts", "", "").Code)
	assert.Equal(t, http.StatusForbidden, tr.do(http.MethodGet, "/emergency/panic-alerts", "", "tourist").Code)
	assert.Equal(t, http.StatusForbidden,
		tr.do(http.MethodPut, "/emergency/panic-alerts/a1/status", `{"status":"resolved"}`, "tourist").Code)
	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/emergency/panic-alerts", "", "operator").Code)
}

func TestRouter_PublicRoutes(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})
	tr.fenceUC.EXPECT().ListStaticGeofences(mock.Anything).Return([]*entity.Geofence{}).Once()
	tr.panicUC.EXPECT().CreateAlert(mock.Anything, mock.Anything).
		Return(&usecase.CreateAlertResult{AlertID: "a1"}, nil).Once()

	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, tr.do(http.MethodGet, "/geofences/hardcoded", "", "").Code)
	assert.Equal(t, http.StatusCreated,
		tr.do(http.MethodPost, "/emergency/panic", `{"location":{"latitude":28.6,"longitude":77.2}}`, "").Code)
	assert.Equal(t, http.StatusUnauthorized,
		tr.do(http.MethodPost, "/geofences", `{"name":"x","latitude":1,"longitude":1,"radius":100}`, "").Code)
}

func TestRouter_PanicRateLimit(t *testing.T) {
	cfg := &config.Config{Panic: &config.PanicConfig{
		RateLimit: config.RateLimitConfig{Enabled: true, Max: 2, Window: time.Hour},
	}}
	tr := newTestRouter(t, cfg)
	tr.panicUC.EXPECT().CreateAlert(mock.Anything, mock.Anything).
		Return(&usecase.CreateAlertResult{AlertID: "a1"}, nil).Times(2)

	body := `{"location":{"latitude":28.6,"longitude":77.2}}`
	assert.Equal(t, http.StatusCreated, tr.do(http.MethodPost, "/emergency/panic", body, "").Code)
	assert.Equal(t, http.StatusCreated, tr.do(http.MethodPost, "/emergency/panic", body, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, tr.do(http.MethodPost, "/emergency/panic", body, "").Code)
}
