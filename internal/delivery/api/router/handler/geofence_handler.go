package handler

import (
	"log/slog"
	"net/http"

	"raahi/internal/delivery/api/middleware"
	"raahi/internal/delivery/api/response"
	"raahi/internal/domain/entity"
	"raahi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler serves the geofence registry and check routes
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// CreateGeofenceRequest is the body of POST /geofences
type CreateGeofenceRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *float64 `json:"radius"`
	Color     string   `json:"color" validate:"hexcolor_or_empty"`
	Type      string   `json:"type"`
	IsActive  *bool    `json:"isActive"`
}

// UpdateGeofenceRequest is the body of PUT /geofences/:id. It has no id,
// createdBy or createdAt fields, so those can never be patched.
type UpdateGeofenceRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=100"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Radius    *float64 `json:"radius"`
	Color     *string  `json:"color" validate:"omitempty,hexcolor_or_empty"`
	Type      *string  `json:"type"`
	IsActive  *bool    `json:"isActive"`
}

// CheckLocationRequest is the body of the check routes
type CheckLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *CheckLocationRequest) point() (entity.Coordinate, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return entity.Coordinate{}, false
	}

	return entity.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}, true
}

// CreateGeofence stores a dynamic fence owned by the caller
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid geofence input", err.Error())
	}
	if req.Latitude == nil || req.Longitude == nil || req.Radius == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude, longitude and radius are required")
	}

	fence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), actor, &usecase.CreateGeofenceInput{
		Name:           req.Name,
		Center:         entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude},
		RadiusMeters:   *req.Radius,
		Classification: entity.GeofenceClassification(req.Type),
		Color:          req.Color,
		Active:         req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fence)
}

// ListGeofences lists dynamic fences; active only unless isActive=false
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}
	active, err := queryBool(c, "isActive")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "isActive must be a boolean")
	}

	fences, err := h.geofenceUC.ListGeofences(c.Request().Context(), &usecase.ListGeofencesInput{
		Limit:          limit,
		Active:         active,
		Classification: entity.GeofenceClassification(c.QueryParam("type")),
		CreatedBy:      c.QueryParam("userId"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"geofences": fences,
		"count":     len(fences),
	})
}

// GetGeofence reads one fence, static or dynamic
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	fence, err := h.geofenceUC.GetGeofence(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fence)
}

// UpdateGeofence patches a fence the caller owns or may administer
func (h *GeofenceHandler) UpdateGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req UpdateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid geofence input", err.Error())
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return response.BadRequest(c, "VALIDATION_ERROR", "latitude and longitude must be updated together")
	}

	input := &usecase.UpdateGeofenceInput{
		Name:         req.Name,
		RadiusMeters: req.Radius,
		Color:        req.Color,
		Active:       req.IsActive,
	}
	if req.Latitude != nil {
		input.Center = &entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}
	if req.Type != nil {
		classification := entity.GeofenceClassification(*req.Type)
		input.Classification = &classification
	}

	fence, err := h.geofenceUC.UpdateGeofence(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fence)
}

// DeleteGeofence removes a fence the caller owns or may administer
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	id := c.Param("id")
	if err := h.geofenceUC.DeleteGeofence(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

// CheckLocation matches a point against the dynamic registry
func (h *GeofenceHandler) CheckLocation(c echo.Context) error {
	point, ok, err := h.bindPoint(c)
	if !ok {
		return err
	}

	result, err := h.geofenceUC.CheckLocation(c.Request().Context(), point)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListStaticGeofences returns the configured zones, as GeoJSON with format=geojson
func (h *GeofenceHandler) ListStaticGeofences(c echo.Context) error {
	ctx := c.Request().Context()
	if c.QueryParam("format") == "geojson" {
		return c.JSON(http.StatusOK, h.geofenceUC.StaticGeofencesGeoJSON(ctx))
	}

	fences := h.geofenceUC.ListStaticGeofences(ctx)

	return response.Success(c, http.StatusOK, map[string]any{
		"geofences": fences,
		"count":     len(fences),
	})
}

// CheckStaticLocation matches a point against the configured zones
func (h *GeofenceHandler) CheckStaticLocation(c echo.Context) error {
	point, ok, err := h.bindPoint(c)
	if !ok {
		return err
	}

	result, err := h.geofenceUC.CheckStaticLocation(c.Request().Context(), point)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// bindPoint reads the point from the body. When ok is false the error
// response has already been written and err is the result of writing it.
func (h *GeofenceHandler) bindPoint(c echo.Context) (point entity.Coordinate, ok bool, err error) {
	var req CheckLocationRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return entity.Coordinate{}, false, response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	point, ok = req.point()
	if !ok {
		return entity.Coordinate{}, false, response.BadRequest(c, "INVALID_LOCATION", "latitude and longitude are required")
	}

	return point, true, nil
}
