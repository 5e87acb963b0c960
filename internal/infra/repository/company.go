package repository

import (
	"context"

	"company-registry/internal/domain/auth"
	"company-registry/internal/domain/company"
	"company-registry/internal/infra"
	"company-registry/internal/infra/db"
	"company-registry/internal/usecase"
	"company-registry/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

const companyColumns = "id, name, cnpj, address, phone, email, owner_id, created_at, updated_at"

// ownedPredicate is the single place the tenant filter is written. Every
// single-row statement below scopes by (id, owner_id) jointly, so a row owned
// by someone else is indistinguishable from a missing row.
const ownedPredicate = "id = $1 AND owner_id = $2"

type CompanyRepository struct {
	db db.DBTX
}

func NewCompanyRepository(dbtx db.DBTX) *CompanyRepository {
	return &CompanyRepository{db: dbtx}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) (*readmodel.CompanyView, error) {
	const query = `
		INSERT INTO companies (name, cnpj, address, phone, email, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + companyColumns

	row := r.db.QueryRow(ctx, query,
		c.Name().Value(), c.CNPJ().Value(), c.Address(), c.Phone(), c.Email(), c.OwnerID())

	view, err := scanCompanyView(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create company", err)
	}
	return view, nil
}

func (r *CompanyRepository) FindAllByOwner(ctx context.Context, ident auth.Identity) ([]*readmodel.CompanyView, error) {
	const query = `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, ident.UserID)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list companies", err)
	}
	defer rows.Close()

	views := []*readmodel.CompanyView{}
	for rows.Next() {
		view, scanErr := scanCompanyView(rows)
		if scanErr != nil {
			return nil, infra.ClassifyPgErr("failed to scan company row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read company rows", err)
	}

	return views, nil
}

func (r *CompanyRepository) FindByIDForOwner(ctx context.Context, id int64, ident auth.Identity) (*readmodel.CompanyView, error) {
	const query = `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE ` + ownedPredicate

	view, err := scanCompanyView(r.db.QueryRow(ctx, query, id, ident.UserID))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find company", err)
	}
	return view, nil
}

// UpdateOwned re-asserts ownership inside the write itself; owner_id is never
// part of the SET list so a company cannot change hands through this path.
func (r *CompanyRepository) UpdateOwned(ctx context.Context, id int64, ident auth.Identity, params usecase.UpdateCompanyParams) (*readmodel.CompanyView, error) {
	const query = `
		UPDATE companies
		SET name = COALESCE($3, name),
		    cnpj = COALESCE($4, cnpj),
		    address = COALESCE($5, address),
		    phone = COALESCE($6, phone),
		    email = COALESCE($7, email),
		    updated_at = now()
		WHERE ` + ownedPredicate + `
		RETURNING ` + companyColumns

	row := r.db.QueryRow(ctx, query, id, ident.UserID,
		params.Name, params.CNPJ, params.Address, params.Phone, params.Email)

	view, err := scanCompanyView(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to update company", err)
	}
	return view, nil
}

func (r *CompanyRepository) DeleteOwned(ctx context.Context, id int64, ident auth.Identity) error {
	const query = `DELETE FROM companies WHERE ` + ownedPredicate

	tag, err := r.db.Exec(ctx, query, id, ident.UserID)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCompanyView(row pgx.Row) (*readmodel.CompanyView, error) {
	var view readmodel.CompanyView
	err := row.Scan(
		&view.ID, &view.Name, &view.CNPJ, &view.Address, &view.Phone,
		&view.Email, &view.OwnerID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
