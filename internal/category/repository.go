package category

import (
	"context"

	"koffiehuis-be/internal/store"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)
}

type repository struct {
	col *store.Collection[Category]
}

// NewRepository opens the categories collection, seeding the four fixed
// records on first use.
func NewRepository(dataDir string) (Repository, error) {
	col := store.NewCollection[Category](dataDir, "categories")
	if err := col.EnsureExists(Defaults()); err != nil {
		return nil, err
	}
	return &repository{col: col}, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Category, error) {
	return r.col.ReadAll()
}
