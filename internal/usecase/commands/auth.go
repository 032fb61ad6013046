package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-admin/internal/domain/operator"
	reqdto "hotel-admin/internal/handler/dto/request"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/jwt"
	"hotel-admin/internal/pkg/password"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrAuthenticationFailed means the credentials were malformed, not wrong.
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrLogoutFailed         = errs.New("logout failed")
)

type LoginResult struct {
	OperatorID  uuid.UUID
	AccessToken string
	ExpiresAt   time.Time
	Operator    *queries.OperatorView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.OperatorReadStore
	jwtService *jwt.Service
	revocation shared.TokenRevocationStore
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.OperatorReadStore,
	jwtService *jwt.Service,
	revocation shared.TokenRevocationStore,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		revocation: revocation,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password so emails cannot be probed.
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "find operator")
	}
	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, errs.ErrOperatorInactive
	}
	if password.NeedsRehash(hash) {
		slog.WarnContext(ctx, "operator password hash uses an outdated cost", "operator_id", view.ID)
	}

	role, err := operator.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "operator role")
	}

	token, claims, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Operators().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.WarnContext(ctx, "failed to update last login", "operator_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		OperatorID:  view.ID,
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAtTime(),
		Operator:    view,
	}, nil
}

// Logout revokes the token until it would have expired anyway.
func (a *authCommandsImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return nil
	}
	if err := a.revocation.Revoke(ctx, tokenID, expiresAt); err != nil {
		return errs.Mark(err, ErrLogoutFailed)
	}
	return nil
}
