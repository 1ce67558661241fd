package auth

import (
	"context"

	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

const anonymousSignInProvider = "anonymous"

// idTokenVerifier is the part of the Firebase Auth client the verifier uses.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// FirebaseVerifier accepts Firebase ID tokens, including anonymous sign-ins.
// Roles come from the "roles" or "role" custom claim and default to user.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier is the constructor for FirebaseVerifier.
func NewFirebaseVerifier(client *firebaseauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// VerifyToken validates the ID token and maps its claims onto an actor.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*entity.Actor, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	return actorFromFirebaseToken(token), nil
}

func actorFromFirebaseToken(token *firebaseauth.Token) *entity.Actor {
	actor := &entity.Actor{
		UserID:      token.UID,
		Email:       stringClaim(token.Claims, "email"),
		DisplayName: stringClaim(token.Claims, "name"),
		IsAnonymous: token.Firebase.SignInProvider == anonymousSignInProvider,
	}

	var roles []string
	switch raw := token.Claims["roles"].(type) {
	case []any:
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	case string:
		roles = append(roles, raw)
	}
	if role := stringClaim(token.Claims, "role"); role != "" {
		roles = append(roles, role)
	}

	actor.Roles = entity.RolesFromStrings(roles)
	if len(actor.Roles) == 0 {
		actor.Roles = entity.Roles{entity.RoleUser}
	}

	return actor
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}
