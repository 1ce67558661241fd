package auth

import (
	"log/slog"
	"strings"

	"raahi/config"
	"raahi/internal/domain/constants"
	"raahi/internal/domain/service"
	"raahi/internal/errors"
	"raahi/internal/infra/firebase"

	firebaseSDK "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebaseSDK.App
}

// NewTokenVerifier picks the identity provider named in configuration.
// Firebase is the default whenever a Firebase app is available.
func NewTokenVerifier(params Params) (service.TokenVerifier, error) {
	provider := constants.AuthProviderFirebase
	if params.Config.Auth != nil && params.Config.Auth.Provider != "" {
		provider = strings.ToLower(params.Config.Auth.Provider)
	}

	switch provider {
	case constants.AuthProviderFirebase:
		client, err := firebase.NewAuthClient(params.FirebaseApp)
		if err != nil {
			return nil, errors.Wrap(err, "firebase identity provider")
		}
		params.Logger.Info("Verifying Firebase ID tokens")

		return NewFirebaseVerifier(client), nil

	case constants.AuthProviderJWT:
		svc, err := NewJWTService(params.Config)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Verifying HS256 tokens")

		return svc, nil

	default:
		return nil, errors.Errorf("unsupported auth provider: %s", provider)
	}
}
