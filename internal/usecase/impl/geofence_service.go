package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"raahi/config"
	deliverycontext "raahi/internal/delivery/context"
	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/domain/geo"
	"raahi/internal/domain/repository"
	"raahi/internal/errors"
	"raahi/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	defaultGeofenceListLimit = 100
	maxGeofenceListLimit     = 500
)

type geofenceService struct {
	geofenceRepo repository.GeofenceRepository
	static       repository.StaticGeofenceRegistry
	minRadius    float64
	maxRadius    float64
	logger       *slog.Logger
}

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	GeofenceRepo repository.GeofenceRepository
	Static       repository.StaticGeofenceRegistry
	Config       *config.Config
	Logger       *slog.Logger
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	minRadius, maxRadius := entity.MinGeofenceRadiusMeters, entity.MaxGeofenceRadiusMeters
	if params.Config != nil && params.Config.Geofences != nil {
		minRadius = params.Config.Geofences.MinRadius
		maxRadius = params.Config.Geofences.MaxRadius
	}

	return &geofenceService{
		geofenceRepo: params.GeofenceRepo,
		static:       params.Static,
		minRadius:    minRadius,
		maxRadius:    maxRadius,
		logger:       params.Logger,
	}
}

func (s *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, s.logger)
}

// CreateGeofence validates and stores a new dynamic fence owned by the actor
func (s *geofenceService) CreateGeofence(ctx context.Context, actor entity.Actor, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if actor.UserID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	classification := entity.GeofenceMonitoring
	if input.Classification != "" {
		classification = input.Classification
	}
	if !classification.IsValid() {
		return nil, invalidClassification(classification)
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = entity.DefaultGeofenceColor
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	fence := &entity.Geofence{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Center:         input.Center,
		RadiusMeters:   input.RadiusMeters,
		Classification: classification,
		Color:          color,
		Active:         active,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := fence.Validate(s.minRadius, s.maxRadius); err != nil {
		return nil, s.validationError(err)
	}

	if err := s.geofenceRepo.Create(ctx, fence); err != nil {
		return nil, errors.Wrap(err, "failed to create geofence")
	}

	s.log(ctx).Info("Geofence created",
		slog.String("geofence_id", fence.ID),
		slog.String("created_by", actor.UserID),
		slog.Float64("radius", fence.RadiusMeters),
	)

	return fence, nil
}

// GetGeofence returns a configured or dynamic fence by id
func (s *geofenceService) GetGeofence(ctx context.Context, id string) (*entity.Geofence, error) {
	if fence, ok := s.static.FindByID(id); ok {
		return fence, nil
	}

	fence, err := s.geofenceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapGeofenceError(err)
	}

	return fence, nil
}

// UpdateGeofence patches a dynamic fence. The ownership check and the write
// happen inside one atomic repository update.
func (s *geofenceService) UpdateGeofence(ctx context.Context, actor entity.Actor, id string, input *usecase.UpdateGeofenceInput) (*entity.Geofence, error) {
	if actor.UserID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if _, ok := s.static.FindByID(id); ok {
		return nil, domainerrors.ErrStaticGeofenceReadOnly
	}
	if err := s.validatePatch(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated, err := s.geofenceRepo.Update(ctx, id, func(fence *entity.Geofence) error {
		if !actor.CanModify(fence) {
			return domainerrors.ErrGeofenceOwnership
		}

		applyGeofencePatch(fence, input)
		fence.UpdatedAt = now

		if err := fence.Validate(s.minRadius, s.maxRadius); err != nil {
			return s.validationError(err)
		}

		return nil
	})
	if err != nil {
		return nil, mapGeofenceError(err)
	}

	s.log(ctx).Info("Geofence updated",
		slog.String("geofence_id", id),
		slog.String("updated_by", actor.UserID),
	)

	return updated, nil
}

// DeleteGeofence removes a dynamic fence after the same ownership check as update
func (s *geofenceService) DeleteGeofence(ctx context.Context, actor entity.Actor, id string) error {
	if actor.UserID == "" {
		return domainerrors.ErrUnauthenticated
	}
	if _, ok := s.static.FindByID(id); ok {
		return domainerrors.ErrStaticGeofenceReadOnly
	}

	err := s.geofenceRepo.Delete(ctx, id, func(fence *entity.Geofence) error {
		if !actor.CanModify(fence) {
			return domainerrors.ErrGeofenceOwnership
		}

		return nil
	})
	if err != nil {
		return mapGeofenceError(err)
	}

	s.log(ctx).Info("Geofence deleted",
		slog.String("geofence_id", id),
		slog.String("deleted_by", actor.UserID),
	)

	return nil
}

// ListGeofences lists dynamic fences, newest first. Only active fences are
// returned unless the caller asks otherwise.
func (s *geofenceService) ListGeofences(ctx context.Context, input *usecase.ListGeofencesInput) ([]*entity.Geofence, error) {
	filter := repository.GeofenceFilter{
		Limit:          clampLimit(input.Limit, defaultGeofenceListLimit, maxGeofenceListLimit),
		Active:         input.Active,
		Classification: input.Classification,
		CreatedBy:      input.CreatedBy,
	}
	if filter.Active == nil {
		active := true
		filter.Active = &active
	}
	if filter.Classification != "" && !filter.Classification.IsValid() {
		return nil, invalidClassification(filter.Classification)
	}

	fences, err := s.geofenceRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return fences, nil
}

// CheckLocation matches the point against the dynamic registry only
func (s *geofenceService) CheckLocation(ctx context.Context, point entity.Coordinate) (*usecase.GeofenceCheckResult, error) {
	if err := point.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidLocation.WithDetails(err.Error())
	}

	active := true
	fences, err := s.geofenceRepo.List(ctx, repository.GeofenceFilter{Active: &active})
	if err != nil {
		s.log(ctx).Warn("Dynamic geofence check failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeofenceCheckFailed.WithDetails(err.Error()), "failed to load geofences")
	}

	return newCheckResult(usecase.GeofenceSourceDynamic, point, fences), nil
}

// ListStaticGeofences returns the active configured fences
func (s *geofenceService) ListStaticGeofences(_ context.Context) []*entity.Geofence {
	return s.static.ListActive()
}

// CheckStaticLocation matches the point against the configured fences only
func (s *geofenceService) CheckStaticLocation(_ context.Context, point entity.Coordinate) (*usecase.GeofenceCheckResult, error) {
	if err := point.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidLocation.WithDetails(err.Error())
	}

	return newCheckResult(usecase.GeofenceSourceStatic, point, s.static.ListActive()), nil
}

// StaticGeofencesGeoJSON renders the active configured fences
func (s *geofenceService) StaticGeofencesGeoJSON(_ context.Context) *geojson.FeatureCollection {
	return geo.FeatureCollection(s.static.ListActive())
}

func newCheckResult(source usecase.GeofenceSource, point entity.Coordinate, fences []*entity.Geofence) *usecase.GeofenceCheckResult {
	matches := geo.Match(point, fences)

	return &usecase.GeofenceCheckResult{
		Source:  source,
		Point:   point,
		Matches: matches,
		Count:   len(matches),
	}
}

// validatePatch rejects malformed patch fields before any write is attempted
func (s *geofenceService) validatePatch(input *usecase.UpdateGeofenceInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return s.validationError(entity.ErrGeofenceNameRequired)
	}
	if input.Center != nil {
		if err := input.Center.Validate(); err != nil {
			return s.validationError(err)
		}
	}
	if input.RadiusMeters != nil {
		if err := entity.ValidateRadius(*input.RadiusMeters, s.minRadius, s.maxRadius); err != nil {
			return s.validationError(err)
		}
	}
	if input.Classification != nil && !input.Classification.IsValid() {
		return invalidClassification(*input.Classification)
	}

	return nil
}

func applyGeofencePatch(fence *entity.Geofence, input *usecase.UpdateGeofenceInput) {
	if input.Name != nil {
		fence.Name = strings.TrimSpace(*input.Name)
	}
	if input.Center != nil {
		fence.Center = *input.Center
	}
	if input.RadiusMeters != nil {
		fence.RadiusMeters = *input.RadiusMeters
	}
	if input.Classification != nil {
		fence.Classification = *input.Classification
	}
	if input.Color != nil {
		fence.Color = strings.TrimSpace(*input.Color)
	}
	if input.Active != nil {
		fence.Active = *input.Active
	}
}

func (s *geofenceService) validationError(err error) error {
	if errors.Is(err, entity.ErrRadiusOutOfRange) {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius must be between %g and %g meters", s.minRadius, s.maxRadius),
		)
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

func invalidClassification(c entity.GeofenceClassification) error {
	return domainerrors.ErrValidationFailed.WithDetails(
		fmt.Sprintf("type %q must be one of safe, monitoring, restricted", c),
	)
}

func mapGeofenceError(err error) error {
	if errors.Is(err, repository.ErrGeofenceNotFound) {
		return domainerrors.ErrGeofenceNotFound
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, "geofence storage operation failed")
}

// clampLimit applies the default to non-positive limits and caps the rest
func clampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		return def
	}

	return min(limit, maxLimit)
}
