//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/company"
	"company-registry/internal/infra"
	"company-registry/internal/usecase"
	"company-registry/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCompanyInput() usecase.CreateCompanyInput {
	return usecase.CreateCompanyInput{
		Name:    "Acme Ltda",
		CNPJ:    "12.345.678/0001-95",
		Address: "Av. Paulista 1000",
		Phone:   "+55 11 99999-0000",
		Email:   "contact@acme.com.br",
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func TestCompanyUseCase_Create(t *testing.T) {
	ctx := context.Background()
	ident := auth.Identity{UserID: 7}

	t.Run("success: caller becomes the owner", func(t *testing.T) {
		var created *company.Company
		repo := &stubCompanyRepository{
			createFn: func(_ context.Context, c *company.Company) (*readmodel.CompanyView, error) {
				created = c
				return &readmodel.CompanyView{ID: 1, Name: c.Name().Value(), OwnerID: c.OwnerID()}, nil
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		view, err := uc.Create(ctx, validCompanyInput(), ident)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(7), created.OwnerID())
		assert.Equal(t, int64(7), view.OwnerID)
	})

	t.Run("error: duplicate name maps to ErrCompanyNameTaken", func(t *testing.T) {
		repo := &stubCompanyRepository{
			createFn: func(_ context.Context, _ *company.Company) (*readmodel.CompanyView, error) {
				return nil, infra.WrapRepoErr("companies_name_key", nil, infra.KindDuplicateKey)
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		_, err := uc.Create(ctx, validCompanyInput(), ident)
		assert.ErrorIs(t, err, usecase.ErrCompanyNameTaken)
	})

	t.Run("error: malformed CNPJ rejected before persistence", func(t *testing.T) {
		repo := &stubCompanyRepository{}
		uc := usecase.NewCompanyUseCase(repo)

		input := validCompanyInput()
		input.CNPJ = "12345678000195"
		_, err := uc.Create(ctx, input, ident)
		assert.ErrorIs(t, err, company.ErrInvalidCNPJ)
	})

	t.Run("error: empty name rejected before persistence", func(t *testing.T) {
		repo := &stubCompanyRepository{}
		uc := usecase.NewCompanyUseCase(repo)

		input := validCompanyInput()
		input.Name = "  "
		_, err := uc.Create(ctx, input, ident)
		assert.ErrorIs(t, err, company.ErrInvalidName)
	})
}

func TestCompanyUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns an owned company", func(t *testing.T) {
		repo := &stubCompanyRepository{
			findByIDFn: func(_ context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error) {
				return &readmodel.CompanyView{ID: id, OwnerID: ident.UserID}, nil
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		view, err := uc.Get(ctx, 1, auth.Identity{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, int64(7), view.OwnerID)
	})

	t.Run("error: another tenant's company behaves like a missing one", func(t *testing.T) {
		// The repository filters by owner, so a foreign id surfaces as no rows.
		repo := &stubCompanyRepository{
			findByIDFn: func(_ context.Context, _ int64, _ auth.Identity) (*readmodel.CompanyView, error) {
				return nil, notFound("company not found")
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		_, err := uc.Get(ctx, 1, auth.Identity{UserID: 8})
		assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
	})
}

func TestCompanyUseCase_Update(t *testing.T) {
	ctx := context.Background()
	ident := auth.Identity{UserID: 7}

	strPtr := func(s string) *string { return &s }

	t.Run("success: validated fields reach the repository", func(t *testing.T) {
		var gotParams usecase.UpdateCompanyParams
		repo := &stubCompanyRepository{
			updateOwnedFn: func(_ context.Context, id int64, _ auth.Identity, params usecase.UpdateCompanyParams) (*readmodel.CompanyView, error) {
				gotParams = params
				return &readmodel.CompanyView{ID: id, OwnerID: ident.UserID}, nil
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		input := usecase.UpdateCompanyInput{
			Name:    strPtr("  Renamed Ltda  "),
			Address: strPtr("New address"),
		}
		_, err := uc.Update(ctx, 1, input, ident)
		require.NoError(t, err)
		require.NotNil(t, gotParams.Name)
		assert.Equal(t, "Renamed Ltda", *gotParams.Name)
		require.NotNil(t, gotParams.Address)
		assert.Equal(t, "New address", *gotParams.Address)
		assert.Nil(t, gotParams.CNPJ)
	})

	t.Run("error: invalid CNPJ rejected before persistence", func(t *testing.T) {
		repo := &stubCompanyRepository{}
		uc := usecase.NewCompanyUseCase(repo)

		_, err := uc.Update(ctx, 1, usecase.UpdateCompanyInput{CNPJ: strPtr("bad")}, ident)
		assert.ErrorIs(t, err, company.ErrInvalidCNPJ)
	})

	t.Run("error: cross-tenant update maps to ErrCompanyNotFound", func(t *testing.T) {
		repo := &stubCompanyRepository{
			updateOwnedFn: func(_ context.Context, _ int64, _ auth.Identity, _ usecase.UpdateCompanyParams) (*readmodel.CompanyView, error) {
				return nil, notFound("company not found")
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		_, err := uc.Update(ctx, 1, usecase.UpdateCompanyInput{}, ident)
		assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
	})

	t.Run("error: renaming to a taken name maps to ErrCompanyNameTaken", func(t *testing.T) {
		repo := &stubCompanyRepository{
			updateOwnedFn: func(_ context.Context, _ int64, _ auth.Identity, _ usecase.UpdateCompanyParams) (*readmodel.CompanyView, error) {
				return nil, infra.WrapRepoErr("companies_name_key", nil, infra.KindDuplicateKey)
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		_, err := uc.Update(ctx, 1, usecase.UpdateCompanyInput{Name: strPtr("Taken")}, ident)
		assert.ErrorIs(t, err, usecase.ErrCompanyNameTaken)
	})
}

func TestCompanyUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	ident := auth.Identity{UserID: 7}

	t.Run("success", func(t *testing.T) {
		repo := &stubCompanyRepository{
			deleteOwnedFn: func(_ context.Context, id int64, got auth.Identity) error {
				assert.Equal(t, int64(1), id)
				assert.Equal(t, ident, got)
				return nil
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		assert.NoError(t, uc.Delete(ctx, 1, ident))
	})

	t.Run("error: cross-tenant delete maps to ErrCompanyNotFound", func(t *testing.T) {
		repo := &stubCompanyRepository{
			deleteOwnedFn: func(_ context.Context, _ int64, _ auth.Identity) error {
				return notFound("company not found")
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		assert.ErrorIs(t, uc.Delete(ctx, 1, ident), usecase.ErrCompanyNotFound)
	})
}

func TestCompanyUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: only the caller's companies come back", func(t *testing.T) {
		repo := &stubCompanyRepository{
			findAllByOwnerFn: func(_ context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error) {
				return []*readmodel.CompanyView{
					{ID: 1, OwnerID: ident.UserID},
					{ID: 2, OwnerID: ident.UserID},
				}, nil
			},
		}
		uc := usecase.NewCompanyUseCase(repo)

		views, err := uc.List(ctx, auth.Identity{UserID: 7})
		require.NoError(t, err)
		require.Len(t, views, 2)
		for _, v := range views {
			assert.Equal(t, int64(7), v.OwnerID)
		}
	})
}
