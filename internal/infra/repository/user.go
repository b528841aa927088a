package repository

import (
	"context"

	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/pgconv"
	"stitchcart/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, company_name, is_active
FROM users
WHERE email = $1`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var (
		snapshot    commands.UserSnapshot
		companyName pgtype.Text
	)

	row := r.pool.QueryRow(ctx, findUserByEmailSQL, email)
	err := row.Scan(
		&snapshot.ID,
		&snapshot.Email,
		&snapshot.PasswordHash,
		&snapshot.Role,
		&companyName,
		&snapshot.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	snapshot.CompanyName = pgconv.StringPtrFromPgtype(companyName)
	return &snapshot, nil
}
