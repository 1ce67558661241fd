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
	"raahi/internal/domain/repository"
	"raahi/internal/domain/service"
	"raahi/internal/errors"
	"raahi/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

type panicService struct {
	alertRepo repository.AlertRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	listLimit int
	maxLimit  int
	logger    *slog.Logger
	now       func() time.Time
}

// PanicServiceParams holds dependencies for PanicService, injected by Fx.
type PanicServiceParams struct {
	fx.In

	AlertRepo repository.AlertRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPanicService creates a new panic alert service instance
func NewPanicService(params PanicServiceParams) usecase.PanicUsecase {
	listLimit, maxLimit := 50, 500
	if params.Config != nil && params.Config.Panic != nil {
		if params.Config.Panic.DefaultListLimit > 0 {
			listLimit = params.Config.Panic.DefaultListLimit
		}
		if params.Config.Panic.MaxListLimit > 0 {
			maxLimit = params.Config.Panic.MaxListLimit
		}
	}

	return &panicService{
		alertRepo: params.AlertRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		listLimit: listLimit,
		maxLimit:  maxLimit,
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *panicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, s.logger)
}

// CreateAlert stores a new alert. Nothing is written when the location is invalid.
func (s *panicService) CreateAlert(ctx context.Context, input *usecase.CreateAlertInput) (*usecase.CreateAlertResult, error) {
	if strings.TrimSpace(input.OwnerUserID) == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := input.Location.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidLocation.WithDetails(err.Error())
	}
	// (0,0) is only a stand-in for a missing fix and must be flagged as one.
	if input.Location.IsZero() && !input.LocationDegraded {
		return nil, domainerrors.ErrInvalidLocation.WithDetails("0,0 is only accepted with locationDegraded")
	}

	logger := s.log(ctx)
	if input.LocationDegraded {
		logger.Warn("Panic alert raised without a fresh location",
			slog.String("user_id", input.OwnerUserID),
		)
	}

	now := s.now()
	presence := &entity.UserPresence{
		UID:         input.OwnerUserID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		IsAnonymous: input.IsAnonymous,
		LastActive:  now,
		CreatedAt:   now,
	}
	if err := s.alertRepo.UpsertPresence(ctx, presence); err != nil {
		return nil, errors.Wrap(err, "failed to upsert user presence")
	}

	alert := &entity.PanicAlert{
		ID:               uuid.NewString(),
		OwnerUserID:      input.OwnerUserID,
		UserEmail:        input.Email,
		UserName:         displayNameOrDefault(input.DisplayName, input.IsAnonymous),
		Location:         input.Location,
		LocationDegraded: input.LocationDegraded,
		Status:           entity.AlertStatusActive,
		IsAnonymous:      input.IsAnonymous,
		UserAgent:        input.UserAgent,
		ClientTimestamp:  input.ClientTimestamp,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create panic alert")
	}

	logger.Info("Panic alert created",
		slog.String("alert_id", alert.ID),
		slog.String("user_id", alert.OwnerUserID),
		slog.Float64("latitude", alert.Location.Latitude),
		slog.Float64("longitude", alert.Location.Longitude),
		slog.Bool("location_degraded", alert.LocationDegraded),
	)

	s.publishAlertEvent(ctx, alert)

	return &usecase.CreateAlertResult{
		Success:          true,
		AlertID:          alert.ID,
		OwnerUserID:      alert.OwnerUserID,
		Path:             alert.Path(),
		Location:         alert.Location,
		LocationDegraded: alert.LocationDegraded,
		CreatedAt:        alert.CreatedAt,
	}, nil
}

// publishAlertEvent fans the alert out to the worker without blocking the
// response. A failed publish never fails the stored alert.
func (s *panicService) publishAlertEvent(ctx context.Context, alert *entity.PanicAlert) {
	if s.publisher == nil {
		return
	}

	event := &service.AlertEvent{
		RequestID:        deliverycontext.RequestIDFrom(ctx),
		AlertID:          alert.ID,
		OwnerUserID:      alert.OwnerUserID,
		UserName:         alert.UserName,
		Latitude:         alert.Location.Latitude,
		Longitude:        alert.Location.Longitude,
		LocationDegraded: alert.LocationDegraded,
		Status:           alert.Status.String(),
		CreatedAt:        alert.CreatedAt,
	}
	logger := s.log(ctx)
	detached := context.WithoutCancel(ctx)

	go func() {
		pubCtx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()

		if err := s.publisher.PublishAlertEvent(pubCtx, event); err != nil {
			logger.Error("Failed to publish alert event",
				slog.String("alert_id", event.AlertID),
				slog.Any("error", err),
			)
		}
	}()
}

// ListAllAlerts reads every owner's alerts, newest first
func (s *panicService) ListAllAlerts(ctx context.Context, limit int, status entity.AlertStatus) ([]*entity.PanicAlert, error) {
	if status != "" && !status.IsValid() {
		return nil, invalidStatus(status)
	}

	alerts, err := s.alertRepo.ListAllAlerts(ctx, repository.AlertFilter{
		Limit:  clampLimit(limit, s.listLimit, s.maxLimit),
		Status: status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// GetAlert reads one alert by owner and id, or by id alone
func (s *panicService) GetAlert(ctx context.Context, ownerUserID, alertID string) (*entity.PanicAlert, error) {
	var (
		alert *entity.PanicAlert
		err   error
	)
	if ownerUserID == "" {
		alert, err = s.alertRepo.FindAlertByID(ctx, alertID)
	} else {
		alert, err = s.alertRepo.FindAlert(ctx, ownerUserID, alertID)
	}
	if err != nil {
		return nil, mapAlertError(err)
	}

	return alert, nil
}

// ListUserAlerts lists one owner's alerts, newest first
func (s *panicService) ListUserAlerts(ctx context.Context, ownerUserID string, limit int) ([]*entity.PanicAlert, error) {
	if ownerUserID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	alerts, err := s.alertRepo.ListUserAlerts(ctx, ownerUserID, clampLimit(limit, s.listLimit, s.maxLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user alerts")
	}

	return alerts, nil
}

// TransitionAlert moves an alert through its lifecycle inside one atomic update
func (s *panicService) TransitionAlert(ctx context.Context, input *usecase.TransitionAlertInput) (*entity.PanicAlert, error) {
	if !input.Status.IsValid() {
		return nil, invalidStatus(input.Status)
	}

	owner := input.OwnerUserID
	if owner == "" {
		found, err := s.alertRepo.FindAlertByID(ctx, input.AlertID)
		if err != nil {
			return nil, mapAlertError(err)
		}
		owner = found.OwnerUserID
	}

	var previous entity.AlertStatus
	now := s.now()
	updated, err := s.alertRepo.UpdateAlert(ctx, owner, input.AlertID, func(alert *entity.PanicAlert) error {
		previous = alert.Status

		return alert.Transition(input.Status, input.ActorID, input.Notes, now)
	})
	if err != nil {
		return nil, mapAlertError(err)
	}

	s.log(ctx).Info("Panic alert status changed",
		slog.String("alert_id", updated.ID),
		slog.String("user_id", owner),
		slog.String("from", previous.String()),
		slog.String("to", updated.Status.String()),
		slog.String("actor", input.ActorID),
	)

	return updated, nil
}

// AlertQRCode renders the responder QR code for an alert
func (s *panicService) AlertQRCode(ctx context.Context, ownerUserID, alertID string) ([]byte, error) {
	alert, err := s.GetAlert(ctx, ownerUserID, alertID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateAlertQR(alert)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate alert QR code")
	}

	return png, nil
}

func displayNameOrDefault(name string, anonymous bool) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if anonymous {
		return "Anonymous Tourist"
	}

	return "Tourist"
}

func invalidStatus(status entity.AlertStatus) error {
	return domainerrors.ErrInvalidStatus.WithDetails(
		fmt.Sprintf("status %q must be one of active, in_progress, resolved, false_alarm", status),
	)
}

func mapAlertError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAlertNotFound):
		return domainerrors.ErrAlertNotFound
	case errors.Is(err, entity.ErrIllegalTransition):
		return domainerrors.ErrInvalidTransition.WithDetails(err.Error())
	case errors.Is(err, entity.ErrUnknownAlertStatus):
		return domainerrors.ErrInvalidStatus.WithDetails(err.Error())
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, "alert storage operation failed")
}
