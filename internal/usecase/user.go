package usecase

import (
	"context"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/user"
	"company-registry/internal/infra"
	"company-registry/internal/pkg/errs"
	"company-registry/internal/pkg/jwt"
	"company-registry/internal/pkg/password"
	"company-registry/internal/usecase/readmodel"
)

var ErrEmailTaken = errs.New("email already registered")

type UpdateUserInput struct {
	Email       *string
	Password    *string
	FirstAccess *bool
}

type UserUseCase interface {
	Register(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error)
	Update(ctx context.Context, id int64, input UpdateUserInput, ident auth.Identity) (*readmodel.UserView, error)
	Delete(ctx context.Context, id int64, ident auth.Identity) error
}

type userUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	bcryptCost int
}

func NewUserUseCase(userRepo UserRepository, jwtService *jwt.Service, bcryptCost int) UserUseCase {
	return &userUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates the user with the hash computed up front; there is no code
// path where an unhashed password reaches the repository. The new user gets a
// token immediately so no second login round-trip is needed.
func (u *userUseCaseImpl) Register(ctx context.Context, credentials auth.Credentials) (string, *readmodel.UserView, error) {
	hash, err := password.Hash(credentials.Password().Value(), u.bcryptCost)
	if err != nil {
		return "", nil, err
	}

	userView, err := u.userRepo.Create(ctx, user.New(credentials.Email(), hash))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}

	token, err := u.jwtService.GenerateToken(userView.ID)
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	return token, userView, nil
}

// Update is self-only: a mismatched identity behaves exactly like a missing
// user so ids cannot be probed across tenants.
func (u *userUseCaseImpl) Update(ctx context.Context, id int64, input UpdateUserInput, ident auth.Identity) (*readmodel.UserView, error) {
	if ident.UserID != id {
		return nil, ErrUserNotFound
	}

	params := UpdateUserParams{FirstAccess: input.FirstAccess}

	if input.Email != nil {
		email, err := user.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		value := email.Value()
		params.Email = &value
	}

	if input.Password != nil {
		plaintext, err := user.NewPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		hash, err := password.Hash(plaintext.Value(), u.bcryptCost)
		if err != nil {
			return nil, err
		}
		params.PasswordHash = &hash
	}

	userView, err := u.userRepo.Update(ctx, id, params)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return userView, nil
}

// Delete cascades to owned companies at the database level.
func (u *userUseCaseImpl) Delete(ctx context.Context, id int64, ident auth.Identity) error {
	if ident.UserID != id {
		return ErrUserNotFound
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
