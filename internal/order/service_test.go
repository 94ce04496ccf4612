package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Order), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewOrderInput) (Order, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(Order), args.Error(1)
}

// --- Tests ---

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Total is stored as supplied, never recomputed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		// Items sum to 20, the caller claims 25. The claim wins.
		input := NewOrderInput{
			Items:    []Item{{ProductID: 1, Name: "X", Price: decimal.NewFromInt(10), Quantity: 2}},
			Customer: Customer{Name: "A", Email: "a@b.com"},
			Total:    decimal.NewFromInt(25),
		}
		mockRepo.On("Create", ctx, input).Return(Order{ID: "1", Total: input.Total, Status: StatusPending}, nil)

		created, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.True(t, created.Total.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, StatusPending, created.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty items rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, NewOrderInput{
			Customer: Customer{Name: "A", Email: "a@b.com"},
			Total:    decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Zero quantity rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, NewOrderInput{
			Items:    []Item{{ProductID: 1, Name: "X", Price: decimal.NewFromInt(10), Quantity: 0}},
			Customer: Customer{Name: "A", Email: "a@b.com"},
			Total:    decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Missing customer email rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, NewOrderInput{
			Items:    []Item{{ProductID: 1, Name: "X", Price: decimal.NewFromInt(10), Quantity: 1}},
			Customer: Customer{Name: "A"},
			Total:    decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Non-positive total rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, NewOrderInput{
			Items:    []Item{{ProductID: 1, Name: "X", Price: decimal.NewFromInt(10), Quantity: 1}},
			Customer: Customer{Name: "A", Email: "a@b.com"},
			Total:    decimal.Zero,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Any status may move to any other", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("UpdateStatus", ctx, "1", StatusShipped).Return(Order{ID: "1", Status: StatusShipped}, nil)
		mockRepo.On("UpdateStatus", ctx, "1", StatusPending).Return(Order{ID: "1", Status: StatusPending}, nil)

		_, err := svc.UpdateStatus(ctx, "1", StatusShipped)
		require.NoError(t, err)

		// Going backwards is allowed: there is no transition graph.
		updated, err := svc.UpdateStatus(ctx, "1", StatusPending)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, updated.Status)
	})

	t.Run("Unknown status rejected before hitting storage", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.UpdateStatus(ctx, "1", Status("returned"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Not found propagates", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("UpdateStatus", ctx, "0", StatusShipped).Return(Order{}, ErrOrderNotFound)

		_, err := svc.UpdateStatus(ctx, "0", StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
