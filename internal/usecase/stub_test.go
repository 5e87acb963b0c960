//go:build unit

package usecase_test

import (
	"context"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/company"
	"company-registry/internal/domain/user"
	"company-registry/internal/usecase"
	"company-registry/internal/usecase/readmodel"
)

// Function-field stubs stand in for the repositories; a nil field means the
// test does not expect that call.

type stubUserRepository struct {
	createFn       func(ctx context.Context, u *user.User) (*readmodel.UserView, error)
	findByEmailFn  func(ctx context.Context, email string) (*readmodel.UserView, string, error)
	findByIDFn     func(ctx context.Context, id int64) (*readmodel.UserView, error)
	updateFn       func(ctx context.Context, id int64, params usecase.UpdateUserParams) (*readmodel.UserView, error)
	markAccessedFn func(ctx context.Context, id int64) error
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *stubUserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserView, error) {
	return s.createFn(ctx, u)
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserView, string, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserView, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepository) Update(ctx context.Context, id int64, params usecase.UpdateUserParams) (*readmodel.UserView, error) {
	return s.updateFn(ctx, id, params)
}

func (s *stubUserRepository) MarkAccessed(ctx context.Context, id int64) error {
	return s.markAccessedFn(ctx, id)
}

func (s *stubUserRepository) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubCompanyRepository struct {
	createFn         func(ctx context.Context, c *company.Company) (*readmodel.CompanyView, error)
	findAllByOwnerFn func(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error)
	findByIDFn       func(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error)
	updateOwnedFn    func(ctx context.Context, id int64, ident auth.Identity, params usecase.UpdateCompanyParams) (*readmodel.CompanyView, error)
	deleteOwnedFn    func(ctx context.Context, id int64, ident auth.Identity) error
}

func (s *stubCompanyRepository) Create(ctx context.Context, c *company.Company) (*readmodel.CompanyView, error) {
	return s.createFn(ctx, c)
}

func (s *stubCompanyRepository) FindAllByOwner(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error) {
	return s.findAllByOwnerFn(ctx, ident)
}

func (s *stubCompanyRepository) FindByIDForOwner(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error) {
	return s.findByIDFn(ctx, id, ident)
}

func (s *stubCompanyRepository) UpdateOwned(ctx context.Context, id int64, ident auth.Identity, params usecase.UpdateCompanyParams) (*readmodel.CompanyView, error) {
	return s.updateOwnedFn(ctx, id, ident, params)
}

func (s *stubCompanyRepository) DeleteOwned(ctx context.Context, id int64, ident auth.Identity) error {
	return s.deleteOwnedFn(ctx, id, ident)
}
