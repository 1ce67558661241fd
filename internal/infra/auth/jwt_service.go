// Package auth provides the bearer token verifiers used by the delivery layer.
package auth

import (
	"context"
	"time"

	"raahi/config"
	"raahi/internal/domain/entity"
	domainerrors "raahi/internal/domain/errors"
	"raahi/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultIssuer = "raahi"

// Claims is the payload of an HS256 token issued for operators and scripted clients.
type Claims struct {
	jwt.RegisteredClaims

	Email       string   `json:"email,omitempty"`
	Name        string   `json:"name,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	IsAnonymous bool     `json:"anonymous,omitempty"`
}

// JWTService signs and verifies HS256 tokens.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	issuer := cfg.Auth.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &JWTService{
		secret: []byte(cfg.Auth.Secret),
		issuer: issuer,
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// IssueToken creates a signed token for the actor.
func (s *JWTService) IssueToken(actor entity.Actor) (string, error) {
	if actor.UserID == "" {
		return "", errors.New("token subject must not be empty")
	}

	issuedAt := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
		Email:       actor.Email,
		Name:        actor.DisplayName,
		Roles:       actor.Roles.ToStrings(),
		IsAnonymous: actor.IsAnonymous,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// VerifyToken checks the signature, issuer and expiry and returns the actor.
func (s *JWTService) VerifyToken(_ context.Context, tokenString string) (*entity.Actor, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token has no subject")
	}

	roles := entity.RolesFromStrings(claims.Roles)
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleUser}
	}

	return &entity.Actor{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		Roles:       roles,
		IsAnonymous: claims.IsAnonymous,
	}, nil
}
