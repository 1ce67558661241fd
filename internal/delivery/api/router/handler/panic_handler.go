package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/response"
	"raahi/internal/domain/entity"
	"raahi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const anonymousOwnerPrefix = "anonymous-"

// PanicHandlerParams holds dependencies for PanicHandler, injected by Fx.
type PanicHandlerParams struct {
	fx.In

	PanicUC usecase.PanicUsecase
	Logger  *slog.Logger
}

// PanicHandler serves the emergency alert routes
type PanicHandler struct {
	panicUC usecase.PanicUsecase
	logger  *slog.Logger
}

// NewPanicHandler is the constructor for PanicHandler
func NewPanicHandler(params PanicHandlerParams) *PanicHandler {
	return &PanicHandler{
		panicUC: params.PanicUC,
		logger:  params.Logger,
	}
}

// LocationRequest is a device position. Both fields are required.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CreatePanicRequest is the body of POST /emergency/panic
type CreatePanicRequest struct {
	UserID           string           `json:"userId" validate:"omitempty,max=128"`
	Email            string           `json:"email" validate:"omitempty,email"`
	DisplayName      string           `json:"displayName" validate:"omitempty,max=100"`
	Location         *LocationRequest `json:"location"`
	LocationDegraded bool             `json:"locationDegraded"`
	Timestamp        *time.Time       `json:"timestamp"`
	UserAgent        string           `json:"userAgent" validate:"omitempty,max=512"`
	// Status is accepted for client compatibility; new alerts always start active.
	Status string `json:"status"`
}

// TransitionRequest is the body of PUT /emergency/panic-alerts/:id/status
type TransitionRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
	UserID string  `json:"userId"`
}

// CreatePanic stores a panic alert. Authenticated callers own the alert;
// anonymous callers may name themselves in the body.
func (h *PanicHandler) CreatePanic(c echo.Context) error {
	var req CreatePanicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid panic alert input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid panic alert input", err.Error())
	}
	if req.Location == nil || req.Location.Latitude == nil || req.Location.Longitude == nil {
		return response.BadRequest(c, "INVALID_LOCATION", "Valid location required")
	}

	input := &usecase.CreateAlertInput{
		Email:            req.Email,
		DisplayName:      req.DisplayName,
		Location:         entity.Coordinate{Latitude: *req.Location.Latitude, Longitude: *req.Location.Longitude},
		LocationDegraded: req.LocationDegraded,
		UserAgent:        req.UserAgent,
		ClientTimestamp:  req.Timestamp,
	}
	if input.UserAgent == "" {
		input.UserAgent = c.Request().UserAgent()
	}

	if actor, ok := middleware.GetActor(c); ok {
		input.OwnerUserID = actor.UserID
		input.IsAnonymous = actor.IsAnonymous
		if actor.Email != "" {
			input.Email = actor.Email
		}
		if actor.DisplayName != "" {
			input.DisplayName = actor.DisplayName
		}
	} else {
		input.IsAnonymous = true
		input.OwnerUserID = strings.TrimSpace(req.UserID)
		if input.OwnerUserID == "" {
			input.OwnerUserID = anonymousOwnerPrefix + uuid.NewString()
		}
	}

	result, err := h.panicUC.CreateAlert(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListAlerts is the operator view across every user
func (h *PanicHandler) ListAlerts(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}

	alerts, err := h.panicUC.ListAllAlerts(c.Request().Context(), limit, entity.AlertStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"alerts":  alerts,
		"count":   len(alerts),
	})
}

// GetAlert reads one alert; userId narrows the lookup to one partition
func (h *PanicHandler) GetAlert(c echo.Context) error {
	alert, err := h.panicUC.GetAlert(c.Request().Context(), c.QueryParam("userId"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// GetAlertQRCode renders the responder QR code as PNG
func (h *PanicHandler) GetAlertQRCode(c echo.Context) error {
	png, err := h.panicUC.AlertQRCode(c.Request().Context(), c.QueryParam("userId"), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// UpdateAlertStatus moves an alert through its lifecycle
func (h *PanicHandler) UpdateAlertStatus(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid status input", err.Error())
	}

	owner := req.UserID
	if owner == "" {
		owner = c.QueryParam("userId")
	}

	alert, err := h.panicUC.TransitionAlert(c.Request().Context(), &usecase.TransitionAlertInput{
		AlertID:     c.Param("id"),
		OwnerUserID: owner,
		Status:      entity.AlertStatus(req.Status),
		ActorID:     actorID,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success":   true,
		"alertId":   alert.ID,
		"userId":    alert.OwnerUserID,
		"newStatus": alert.Status,
		"resolved":  alert.Resolved,
		"updatedAt": alert.UpdatedAt,
	})
}

// ListMyAlerts lists the caller's own alerts
func (h *PanicHandler) ListMyAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}

	alerts, err := h.panicUC.ListUserAlerts(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"alerts":  alerts,
		"count":   len(alerts),
	})
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
