package components

import (
	repo_impl "company-registry/internal/infra/repository"
	"company-registry/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCompanyRepository,
			fx.As(new(usecase.CompanyRepository)),
		),
	),
)
