package components

import (
	"company-registry/internal/pkg/config"
	"company-registry/internal/pkg/jwt"
	"company-registry/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewCompanyUseCase,
		usecase.NewTokenValidator,
		func(userRepo usecase.UserRepository, jwtService *jwt.Service, cfg config.Config) usecase.UserUseCase {
			return usecase.NewUserUseCase(userRepo, jwtService, cfg.Auth.BcryptCost)
		},
	),
)
