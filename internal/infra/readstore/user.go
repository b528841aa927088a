package readstore

import (
	"context"

	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/pgconv"
	"stitchcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const getUserViewByIDSQL = `
SELECT id, email, role, company_name
FROM users
WHERE id = $1 AND is_active = true`

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		view        queries.UserView
		companyName pgtype.Text
	)

	row := r.pool.QueryRow(ctx, getUserViewByIDSQL, id)
	err := row.Scan(&view.ID, &view.Email, &view.Role, &companyName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user view by id", err)
	}

	view.CompanyName = pgconv.StringPtrFromPgtype(companyName)
	return &view, nil
}
