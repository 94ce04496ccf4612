package order

import (
	"context"
	"strconv"
	"time"

	"koffiehuis-be/internal/store"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, input NewOrderInput) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
}

type repository struct {
	col *store.Collection[Order]
	now func() time.Time
}

// NewRepository opens the orders collection, creating it empty on first
// use.
func NewRepository(dataDir string) (Repository, error) {
	col := store.NewCollection[Order](dataDir, "orders")
	if err := col.EnsureExists(nil); err != nil {
		return nil, err
	}
	return &repository{col: col, now: time.Now}, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	return r.col.ReadAll()
}

func (r *repository) GetByID(ctx context.Context, id string) (Order, error) {
	orders, err := r.col.ReadAll()
	if err != nil {
		return Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func (r *repository) Create(ctx context.Context, input NewOrderInput) (Order, error) {
	var created Order
	err := r.col.Update(func(orders []Order) ([]Order, error) {
		now := r.now().UTC()
		created = Order{
			ID:        strconv.FormatInt(now.UnixMilli(), 10),
			Items:     input.Items,
			Customer:  input.Customer,
			Total:     input.Total,
			Status:    StatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return append(orders, created), nil
	})
	if err != nil {
		return Order{}, err
	}
	return created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	var updated Order
	err := r.col.Update(func(orders []Order) ([]Order, error) {
		for i := range orders {
			if orders[i].ID != id {
				continue
			}
			orders[i].Status = status
			orders[i].UpdatedAt = r.now().UTC()
			updated = orders[i]
			return orders, nil
		}
		return nil, ErrOrderNotFound
	})
	if err != nil {
		return Order{}, err
	}
	return updated, nil
}
