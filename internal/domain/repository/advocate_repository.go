package repository

import (
	"context"

	"advocate-directory/internal/domain/entity"
)

type AdvocateRepository interface {
	// FindAll returns every advocate in id-ascending order.
	FindAll(ctx context.Context) ([]entity.Advocate, error)

	// Search applies the filter's conjunction of predicates to both the
	// row-fetch and count queries. Limit/Offset bound the rows only; the
	// returned total always reflects the full filtered count.
	Search(ctx context.Context, filter *entity.AdvocateFilter) ([]entity.Advocate, int64, error)

	// Create inserts a new advocate. A (first_name, last_name) unique
	// violation surfaces as the underlying driver error.
	Create(ctx context.Context, advocate *entity.Advocate) error

	// Upsert inserts the advocate or, on a (first_name, last_name)
	// conflict, updates the existing row in place. The bool reports
	// whether a new row was inserted.
	Upsert(ctx context.Context, advocate *entity.Advocate) (*entity.Advocate, bool, error)
}
