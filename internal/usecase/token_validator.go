package usecase

import (
	"context"

	"company-registry/internal/domain/auth"
	"company-registry/internal/pkg/errs"
	"company-registry/internal/pkg/jwt"
)

// TokenValidator backs the auth middleware: it turns a raw bearer token into a
// verified Identity or fails. Stateless and idempotent per token.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (auth.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	userRepo   UserRepository
}

func NewTokenValidator(jwtService *jwt.Service, userRepo UserRepository) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (auth.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Identity{}, errs.Mark(err, ErrTokenValidation)
	}

	// The subject may have been deleted after issuance
	if _, err := t.userRepo.FindByID(ctx, claims.UserID); err != nil {
		return auth.Identity{}, errs.Mark(err, ErrTokenValidation)
	}

	return auth.Identity{UserID: claims.UserID}, nil
}
