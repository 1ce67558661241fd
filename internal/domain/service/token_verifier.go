package service

import (
	"context"

	"raahi/internal/domain/entity"
)

// TokenVerifier turns a bearer token into the authenticated caller.
// This abstracts the identity provider away from the delivery layer.
type TokenVerifier interface {
	// VerifyToken validates the token and returns the actor it identifies.
	VerifyToken(ctx context.Context, token string) (*entity.Actor, error)
}
