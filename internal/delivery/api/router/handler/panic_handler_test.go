package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	mocks "raahi/internal/mocks/usecase"
	"raahi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPanicHandler(t *testing.T) (*PanicHandler, *mocks.MockPanicUsecase) {
	t.Helper()

	uc := mocks.NewMockPanicUsecase(t)

	return NewPanicHandler(PanicHandlerParams{
		PanicUC: uc,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), uc
}

func TestPanicHandler_CreatePanic_Authenticated(t *testing.T) {
	h, uc := newTestPanicHandler(t)

	uc.EXPECT().CreateAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *usecase.CreateAlertInput) (*usecase.CreateAlertResult, error) {
			assert.Equal(t, "tourist-1", in.OwnerUserID)
			assert.Equal(t, "t1@raahi.test", in.Email)
			assert.Equal(t, "Asha", in.DisplayName)
			assert.False(t, in.IsAnonymous)
			assert.Equal(t, entity.Coordinate{Latitude: 28.6562, Longitude: 77.241}, in.Location)
			assert.Equal(t, "raahi-web/1.0", in.UserAgent)
			require.NotNil(t, in.ClientTimestamp)

			return &usecase.CreateAlertResult{
				AlertID:     "a1",
				OwnerUserID: in.OwnerUserID,
				Path:        entity.AlertPath(in.OwnerUserID, "a1"),
				Location:    in.Location,
			}, nil
		}).Once()

	body := `{"userId":"someone-else","location":{"latitude":28.6562,"longitude":77.241},` +
		`"timestamp":"2026-03-01T10:00:00Z","userAgent":"raahi-web/1.0"}`
	c, rec := newRequestContext(http.MethodPost, "/emergency/panic", body, &touristActor)

	require.NoError(t, h.CreatePanic(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var result usecase.CreateAlertResult
	decodeData(t, rec, &result)
	assert.Equal(t, "a1", result.AlertID)
	assert.Equal(t, "users/tourist-1/panic_alerts/a1", result.Path)
}

func TestPanicHandler_CreatePanic_Anonymous(t *testing.T) {
	t.Run("body user id", func(t *testing.T) {
		h, uc := newTestPanicHandler(t)
		uc.EXPECT().CreateAlert(mock.Anything, mock.MatchedBy(func(in *usecase.CreateAlertInput) bool {
			return in.OwnerUserID == "guest-9" && in.IsAnonymous && in.Email == "g@raahi.test"
		})).Return(&usecase.CreateAlertResult{AlertID: "a2", OwnerUserID: "guest-9"}, nil).Once()

		body := `{"userId":"guest-9","email":"g@raahi.test","location":{"latitude":28.6,"longitude":77.2}}`
		c, rec := newRequestContext(http.MethodPost, "/emergency/panic", body, nil)

		require.NoError(t, h.CreatePanic(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("generated owner", func(t *testing.T) {
		h, uc := newTestPanicHandler(t)
		uc.EXPECT().CreateAlert(mock.Anything, mock.MatchedBy(func(in *usecase.CreateAlertInput) bool {
			return strings.HasPrefix(in.OwnerUserID, "anonymous-") && in.IsAnonymous
		})).Return(&usecase.CreateAlertResult{AlertID: "a3"}, nil).Once()

		body := `{"location":{"latitude":0,"longitude":0},"locationDegraded":true}`
		c, rec := newRequestContext(http.MethodPost, "/emergency/panic", body, nil)

		require.NoError(t, h.CreatePanic(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestPanicHandler_CreatePanic_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "missing location", body: `{"userId":"u1"}`, wantCode: "INVALID_LOCATION"},
		{name: "missing longitude", body: `{"location":{"latitude":28.6}}`, wantCode: "INVALID_LOCATION"},
		{name: "bad email", body: `{"email":"not-an-email","location":{"latitude":1,"longitude":1}}`, wantCode: "VALIDATION_ERROR"},
		{name: "malformed", body: `{"location":`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPanicHandler(t)
			c, rec := newRequestContext(http.MethodPost, "/emergency/panic", tt.body, nil)

			require.NoError(t, h.CreatePanic(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestPanicHandler_CreatePanic_UsecaseErrors(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		h, uc := newTestPanicHandler(t)
		uc.EXPECT().CreateAlert(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidLocation.WithDetails("latitude 91 out of range")).Once()

		c, rec := newRequestContext(http.MethodPost, "/emergency/panic", `{"location":{"latitude":91,"longitude":0}}`, nil)

		require.NoError(t, h.CreatePanic(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "latitude 91 out of range", env.Error.Details)
	})

	t.Run("storage down", func(t *testing.T) {
		h, uc := newTestPanicHandler(t)
		uc.EXPECT().CreateAlert(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewStorageError(assert.AnError, "failed to create panic alert")).Once()

		c, rec := newRequestContext(http.MethodPost, "/emergency/panic", `{"location":{"latitude":1,"longitude":1}}`, nil)

		require.NoError(t, h.CreatePanic(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Nil(t, env.Error.Details)
	})
}

func TestPanicHandler_ListAlerts(t *testing.T) {
	h, uc := newTestPanicHandler(t)
	alerts := []*entity.PanicAlert{
		{ID: "a2", OwnerUserID: "u2", Status: entity.AlertStatusActive, CreatedAt: time.Now()},
		{ID: "a1", OwnerUserID: "u1", Status: entity.AlertStatusActive, CreatedAt: time.Now().Add(-time.Minute)},
	}
	uc.EXPECT().ListAllAlerts(mock.Anything, 5, entity.AlertStatusActive).Return(alerts, nil).Once()

	c, rec := newRequestContext(http.MethodGet, "/emergency/panic-alerts?limit=5&status=active", "", &operatorActor)

	require.NoError(t, h.ListAlerts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Success bool                `json:"success"`
		Alerts  []entity.PanicAlert `json:"alerts"`
		Count   int                 `json:"count"`
	}
	decodeData(t, rec, &got)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "u2", got.Alerts[0].OwnerUserID)
}

func TestPanicHandler_ListAlerts_BadLimit(t *testing.T) {
	h, _ := newTestPanicHandler(t)
	c, rec := newRequestContext(http.MethodGet, "/emergency/panic-alerts?limit=ten", "", &operatorActor)

	require.NoError(t, h.ListAlerts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPanicHandler_UpdateAlertStatus(t *testing.T) {
	h, uc := newTestPanicHandler(t)
	uc.EXPECT().TransitionAlert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, in *usecase.TransitionAlertInput) (*entity.PanicAlert, error) {
			assert.Equal(t, "a1", in.AlertID)
			assert.Equal(t, "u1", in.OwnerUserID)
			assert.Equal(t, entity.AlertStatusResolved, in.Status)
			assert.Equal(t, "op-1", in.ActorID)
			require.NotNil(t, in.Notes)
			assert.Equal(t, "tourist found safe", *in.Notes)

			return &entity.PanicAlert{ID: "a1", OwnerUserID: "u1", Status: entity.AlertStatusResolved, Resolved: true}, nil
		}).Once()

	c, rec := newRequestContext(http.MethodPut, "/emergency/panic-alerts/a1/status?userId=u1",
		`{"status":"resolved","notes":"tourist found safe"}`, &operatorActor)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.UpdateAlertStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, "resolved", got["newStatus"])
	assert.Equal(t, true, got["resolved"])
}

func TestPanicHandler_UpdateAlertStatus_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
	}{
		{name: "illegal transition", err: domainerrors.ErrInvalidTransition.WithDetails("resolved -> active"), wantHTTP: http.StatusBadRequest},
		{name: "unknown status", err: domainerrors.ErrInvalidStatus, wantHTTP: http.StatusBadRequest},
		{name: "unknown alert", err: domainerrors.ErrAlertNotFound, wantHTTP: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestPanicHandler(t)
			uc.EXPECT().TransitionAlert(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			c, rec := newRequestContext(http.MethodPut, "/emergency/panic-alerts/a1/status", `{"status":"active"}`, &operatorActor)
			c.SetParamNames("id")
			c.SetParamValues("a1")

			require.NoError(t, h.UpdateAlertStatus(c))
			assert.Equal(t, tt.wantHTTP, rec.Code)
		})
	}
}

func TestPanicHandler_UpdateAlertStatus_RequiresStatus(t *testing.T) {
	h, _ := newTestPanicHandler(t)
	c, rec := newRequestContext(http.MethodPut, "/emergency/panic-alerts/a1/status", `{"notes":"x"}`, &operatorActor)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.UpdateAlertStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPanicHandler_ListMyAlerts(t *testing.T) {
	h, uc := newTestPanicHandler(t)
	uc.EXPECT().ListUserAlerts(mock.Anything, "tourist-1", 0).
		Return([]*entity.PanicAlert{{ID: "a1", OwnerUserID: "tourist-1"}}, nil).Once()

	c, rec := newRequestContext(http.MethodGet, "/emergency/my-alerts", "", &touristActor)

	require.NoError(t, h.ListMyAlerts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequestContext(http.MethodGet, "/emergency/my-alerts", "", nil)
	require.NoError(t, h.ListMyAlerts(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPanicHandler_GetAlertQRCode(t *testing.T) {
	h, uc := newTestPanicHandler(t)
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().AlertQRCode(mock.Anything, "", "a1").Return(png, nil).Once()

	c, rec := newRequestContext(http.MethodGet, "/emergency/panic-alerts/a1/qrcode", "", &operatorActor)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	require.NoError(t, h.GetAlertQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
