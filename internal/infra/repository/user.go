package repository

import (
	"context"

	"company-registry/internal/domain/user"
	"company-registry/internal/infra"
	"company-registry/internal/infra/db"
	"company-registry/internal/usecase"
	"company-registry/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*readmodel.UserView, error) {
	const query = `
		INSERT INTO users (email, password_hash, first_access)
		VALUES ($1, $2, $3)
		RETURNING id, email, first_access
	`

	row := r.db.QueryRow(ctx, query, u.Email().Value(), u.PasswordHash(), u.FirstAccess())

	view, err := scanUserView(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to create user", err)
	}
	return view, nil
}

// FindByEmail also returns the stored hash; it is the only read path that
// exposes it, and only to the authenticator.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserView, string, error) {
	const query = `
		SELECT id, email, first_access, password_hash
		FROM users
		WHERE email = $1
	`

	var (
		view readmodel.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Email, &view.FirstAccess, &hash)
	if err != nil {
		return nil, "", infra.ClassifyPgErr("failed to find user by email", err)
	}

	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*readmodel.UserView, error) {
	const query = `
		SELECT id, email, first_access
		FROM users
		WHERE id = $1
	`

	view, err := scanUserView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by ID", err)
	}
	return view, nil
}

// Update patches only the provided fields. The password_hash column can only
// receive an already-hashed value because the usecase hashes before calling.
func (r *UserRepository) Update(ctx context.Context, id int64, params usecase.UpdateUserParams) (*readmodel.UserView, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    password_hash = COALESCE($3, password_hash),
		    first_access = COALESCE($4, first_access),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, email, first_access
	`

	view, err := scanUserView(r.db.QueryRow(ctx, query, id, params.Email, params.PasswordHash, params.FirstAccess))
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to update user", err)
	}
	return view, nil
}

func (r *UserRepository) MarkAccessed(ctx context.Context, id int64) error {
	const query = `
		UPDATE users
		SET first_access = FALSE, updated_at = now()
		WHERE id = $1
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return infra.ClassifyPgErr("failed to mark user accessed", err)
	}
	return nil
}

// Delete removes the user; owned companies go with it via ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanUserView(row pgx.Row) (*readmodel.UserView, error) {
	var view readmodel.UserView
	if err := row.Scan(&view.ID, &view.Email, &view.FirstAccess); err != nil {
		return nil, err
	}
	return &view, nil
}
