package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/mock_token_validator.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"hotel-admin/internal/domain/operator"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenRevoked = errs.New("token revoked")

type AuthClaims struct {
	OperatorID uuid.UUID
	Role       operator.Role
	TokenID    string
	ExpiresAt  time.Time
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*AuthClaims, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	revocation shared.TokenRevocationStore
}

func NewTokenValidator(jwtService *jwt.Service, revocation shared.TokenRevocationStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		revocation: revocation,
	}
}

// ValidateToken fails closed: a revocation store that cannot answer rejects the token.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := operator.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, jwt.ErrInvalidToken)
	}

	revoked, err := t.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		slog.ErrorContext(ctx, "revocation lookup failed", "jti", claims.ID, "error", err.Error())
		return nil, errs.Mark(err, ErrTokenRevoked)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &AuthClaims{
		OperatorID: claims.OperatorID,
		Role:       role,
		TokenID:    claims.ID,
		ExpiresAt:  claims.ExpiresAtTime(),
	}, nil
}
