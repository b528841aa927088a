package queries

import (
	"context"
	"time"

	"stitchcart/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid pagination cursor")

// ProductReadStore is the catalog read port implemented by the pgx adapter.
type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*ProductListItem, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductListItem, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{readStore: readStore}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.readStore.FindByID(ctx, id)
}

// List pages newest-first with a keyset cursor. One extra row is fetched to
// decide whether a next cursor exists.
func (q *productQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1)

	var (
		items []*ProductListItem
		err   error
	)
	if cursor == nil {
		items, err = q.readStore.ListFirstPage(ctx, fetch)
	} else {
		var (
			lastCreatedAt time.Time
			lastID        uuid.UUID
		)
		lastCreatedAt, lastID, err = DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		items, err = q.readStore.ListKeyset(ctx, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return items, next, nil
}
