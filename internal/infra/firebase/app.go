// Package firebase builds the Firebase Admin SDK clients shared by storage,
// identity, push and the realtime mirror.
package firebase

import (
	"context"
	"log/slog"

	"raahi/config"
	"raahi/internal/domain/lifecycle"
	"raahi/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrFirebaseNotConfigured is returned when a Firebase client is requested without firebase config.
var ErrFirebaseNotConfigured = errors.New("firebase configuration is missing")

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase Admin app. Without a credentials path the
// application default credentials are used. Firebase is optional: a nil app
// is returned when it is not configured.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// FirestoreParams defines the required parameters for the Firestore client
type FirestoreParams struct {
	fx.In
	fx.Lifecycle

	App *firebase.App
}

// NewFirestoreClient opens the Firestore client and closes it on shutdown
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	if params.App == nil {
		return nil, ErrFirebaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewAuthClient returns the Firebase Auth client used to verify ID tokens
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	if app == nil {
		return nil, ErrFirebaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return client, nil
}

// NewMessagingClient returns the Cloud Messaging client used for topic pushes
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	if app == nil {
		return nil, ErrFirebaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Messaging client")
	}

	return client, nil
}

// NewDatabaseClient returns the Realtime Database client used by the live alert mirror
func NewDatabaseClient(app *firebase.App) (*db.Client, error) {
	if app == nil {
		return nil, ErrFirebaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Realtime Database client")
	}

	return client, nil
}
