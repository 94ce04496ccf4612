package order

import (
	"context"
	"testing"
	"time"

	"koffiehuis-be/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepoAt(t *testing.T, at time.Time) *repository {
	t.Helper()
	col := store.NewCollection[Order](t.TempDir(), "orders")
	require.NoError(t, col.EnsureExists(nil))
	return &repository{col: col, now: func() time.Time { return at }}
}

func checkoutInput() NewOrderInput {
	return NewOrderInput{
		Items: []Item{
			{ProductID: 1, Name: "Rancilio Silvia", Price: decimal.NewFromInt(649), Quantity: 1},
		},
		Customer: Customer{Name: "Jan Jansen", Email: "jan@example.com"},
		Total:    decimal.NewFromInt(649),
	}
}

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newTestRepoAt(t, at)

	created, err := repo.Create(ctx, checkoutInput())
	require.NoError(t, err)

	t.Run("Id derives from the creation timestamp", func(t *testing.T) {
		assert.Equal(t, "1748779200000", created.ID)
	})

	t.Run("Status starts pending", func(t *testing.T) {
		assert.Equal(t, StatusPending, created.Status)
	})

	t.Run("Persisted and readable back", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.True(t, got.Total.Equal(decimal.NewFromInt(649)))
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Rancilio Silvia", got.Items[0].Name)
	})
}

func TestRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepoAt(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	created, err := repo.Create(ctx, checkoutInput())
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo.now = func() time.Time { return time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) }

		updated, err := repo.UpdateStatus(ctx, created.ID, StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, updated.Status)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "0", StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepositoryGetAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepoAt(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := repo.Create(ctx, checkoutInput())
	require.NoError(t, err)
	repo.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC) }
	_, err = repo.Create(ctx, checkoutInput())
	require.NoError(t, err)

	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
