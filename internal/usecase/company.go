package usecase

import (
	"context"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/company"
	"company-registry/internal/infra"
	"company-registry/internal/pkg/errs"
	"company-registry/internal/usecase/readmodel"
)

var (
	ErrCompanyNotFound  = errs.New("company not found")
	ErrCompanyNameTaken = errs.New("company name already taken")
)

type CreateCompanyInput struct {
	Name    string
	CNPJ    string
	Address string
	Phone   string
	Email   string
}

type UpdateCompanyInput struct {
	Name    *string
	CNPJ    *string
	Address *string
	Phone   *string
	Email   *string
}

type UpdateCompanyParams struct {
	Name    *string
	CNPJ    *string
	Address *string
	Phone   *string
	Email   *string
}

// CompanyRepository is the ownership-scoped persistence contract: no read,
// update or delete takes a bare id.
type CompanyRepository interface {
	Create(ctx context.Context, c *company.Company) (*readmodel.CompanyView, error)
	FindAllByOwner(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error)
	FindByIDForOwner(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error)
	UpdateOwned(ctx context.Context, id int64, ident auth.Identity, params UpdateCompanyParams) (*readmodel.CompanyView, error)
	DeleteOwned(ctx context.Context, id int64, ident auth.Identity) error
}

type CompanyUseCase interface {
	Create(ctx context.Context, input CreateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error)
	List(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error)
	Get(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error)
	Update(ctx context.Context, id int64, input UpdateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error)
	Delete(ctx context.Context, id int64, ident auth.Identity) error
}

type companyUseCaseImpl struct {
	companyRepo CompanyRepository
}

func NewCompanyUseCase(companyRepo CompanyRepository) CompanyUseCase {
	return &companyUseCaseImpl{
		companyRepo: companyRepo,
	}
}

// Create assigns the caller as owner; the name uniqueness check is global, so
// a collision with another tenant's company still conflicts.
func (c *companyUseCaseImpl) Create(ctx context.Context, input CreateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error) {
	name, err := company.NewName(input.Name)
	if err != nil {
		return nil, err
	}

	cnpj, err := company.NewCNPJ(input.CNPJ)
	if err != nil {
		return nil, err
	}

	entity, err := company.New(name, cnpj, input.Address, input.Phone, input.Email, ident.UserID)
	if err != nil {
		return nil, err
	}

	view, err := c.companyRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCompanyNameTaken
		}
		return nil, err
	}

	return view, nil
}

func (c *companyUseCaseImpl) List(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error) {
	return c.companyRepo.FindAllByOwner(ctx, ident)
}

func (c *companyUseCaseImpl) Get(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error) {
	view, err := c.companyRepo.FindByIDForOwner(ctx, id, ident)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}

	return view, nil
}

func (c *companyUseCaseImpl) Update(ctx context.Context, id int64, input UpdateCompanyInput, ident auth.Identity) (*readmodel.CompanyView, error) {
	params := UpdateCompanyParams{
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}

	if input.Name != nil {
		name, err := company.NewName(*input.Name)
		if err != nil {
			return nil, err
		}
		value := name.Value()
		params.Name = &value
	}

	if input.CNPJ != nil {
		cnpj, err := company.NewCNPJ(*input.CNPJ)
		if err != nil {
			return nil, err
		}
		value := cnpj.Value()
		params.CNPJ = &value
	}

	view, err := c.companyRepo.UpdateOwned(ctx, id, ident, params)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCompanyNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrCompanyNameTaken
		}
		return nil, err
	}

	return view, nil
}

func (c *companyUseCaseImpl) Delete(ctx context.Context, id int64, ident auth.Identity) error {
	if err := c.companyRepo.DeleteOwned(ctx, id, ident); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	return nil
}
