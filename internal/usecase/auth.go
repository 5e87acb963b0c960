package usecase

import (
	"context"
	"log/slog"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/user"
	"company-registry/internal/infra"
	"company-registry/internal/pkg/errs"
	"company-registry/internal/pkg/jwt"
	"company-registry/internal/pkg/password"
	"company-registry/internal/usecase/readmodel"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type UpdateUserParams struct {
	Email        *string
	PasswordHash *string
	FirstAccess  *bool
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*readmodel.UserView, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.UserView, string, error)
	FindByID(ctx context.Context, id int64) (*readmodel.UserView, error)
	Update(ctx context.Context, id int64, params UpdateUserParams) (*readmodel.UserView, error)
	MarkAccessed(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error)
	CurrentUser(ctx context.Context, userID int64) (*readmodel.UserView, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error) {
	userView, err := a.verifyCredentials(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(userView.ID)
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	if userView.FirstAccess {
		if markErr := a.userRepo.MarkAccessed(ctx, userView.ID); markErr != nil {
			// Login already succeeded; the flag flips on a later login instead.
			slog.Warn("failed to clear first access flag", "user_id", userView.ID, "error", markErr.Error())
		} else {
			userView.FirstAccess = false
		}
	}

	return token, userView, nil
}

func (a *authUseCaseImpl) verifyCredentials(ctx context.Context, credentials auth.Credentials) (*readmodel.UserView, error) {
	userView, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent account enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}

func (a *authUseCaseImpl) CurrentUser(ctx context.Context, userID int64) (*readmodel.UserView, error) {
	userView, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return userView, nil
}
