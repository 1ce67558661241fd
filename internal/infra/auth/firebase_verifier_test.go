package auth

import (
	"context"
	"testing"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(_ context.Context, _ string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_AnonymousTourist(t *testing.T) {
	verifier := &FirebaseVerifier{client: stubIDTokenVerifier{token: &firebaseauth.Token{
		UID:      "anon-42",
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: "anonymous"},
		Claims:   map[string]any{},
	}}}

	actor, err := verifier.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "anon-42", actor.UserID)
	assert.True(t, actor.IsAnonymous)
	assert.Equal(t, entity.Roles{entity.RoleUser}, actor.Roles)
}

func TestFirebaseVerifier_CustomClaims(t *testing.T) {
	verifier := &FirebaseVerifier{client: stubIDTokenVerifier{token: &firebaseauth.Token{
		UID:      "op-7",
		Firebase: firebaseauth.FirebaseInfo{SignInProvider: "password"},
		Claims: map[string]any{
			"email": "op7@raahi.test",
			"name":  "Operator Seven",
			"roles": []any{"operator", "bogus", 3},
			"role":  "admin",
		},
	}}}

	actor, err := verifier.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.False(t, actor.IsAnonymous)
	assert.Equal(t, "op7@raahi.test", actor.Email)
	assert.Equal(t, "Operator Seven", actor.DisplayName)
	assert.Equal(t, entity.Roles{entity.RoleOperator, entity.RoleAdmin}, actor.Roles)
}

func TestFirebaseVerifier_InvalidToken(t *testing.T) {
	verifier := &FirebaseVerifier{client: stubIDTokenVerifier{err: errors.New("ID token has expired")}}

	actor, err := verifier.VerifyToken(context.Background(), "id-token")
	assert.Nil(t, actor)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
