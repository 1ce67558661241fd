// Package persistence selects the alert and geofence store named in configuration.
package persistence

import (
	"log/slog"
	"strings"

	"raahi/config"
	"raahi/internal/domain/constants"
	"raahi/internal/domain/repository"
	"raahi/internal/errors"
	"raahi/internal/infra/firebase"
	firestorerepo "raahi/internal/infra/persistence/firestore"
	"raahi/internal/infra/persistence/memory"
	"raahi/internal/infra/persistence/postgres"

	firebaseSDK "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebaseSDK.App
}

// Repositories are the stores produced for the selected backend
type Repositories struct {
	fx.Out

	Alerts    repository.AlertRepository
	Geofences repository.GeofenceRepository
}

// NewRepositories opens the configured backend. An empty provider falls back to memory.
func NewRepositories(params Params) (Repositories, error) {
	provider := constants.StorageProviderMemory
	if params.Config.Storage != nil && params.Config.Storage.Provider != "" {
		provider = strings.ToLower(params.Config.Storage.Provider)
	}

	switch provider {
	case constants.StorageProviderMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")

		return Repositories{
			Alerts:    memory.NewAlertRepository(),
			Geofences: memory.NewGeofenceRepository(),
		}, nil

	case constants.StorageProviderPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres storage selected without postgres configuration")
		}
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL storage")

		return Repositories{
			Alerts:    postgres.NewAlertRepository(db),
			Geofences: postgres.NewGeofenceRepository(db),
		}, nil

	case constants.StorageProviderFirestore:
		client, err := firebase.NewFirestoreClient(firebase.FirestoreParams{
			Lifecycle: params.Lifecycle,
			App:       params.FirebaseApp,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using Firestore storage", slog.String("project_id", params.Config.Firebase.ProjectID))

		return Repositories{
			Alerts:    firestorerepo.NewAlertRepository(client),
			Geofences: firestorerepo.NewGeofenceRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage provider: %s", provider)
	}
}
