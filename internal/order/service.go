package order

import (
	"context"
	"fmt"
	"strings"

	"koffiehuis-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, input NewOrderInput) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *service) GetOrderByID(ctx context.Context, id string) (Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a checkout. The supplied total is stored as-is and is
// not checked against the item sum; the storefront computes it.
func (s *service) Create(ctx context.Context, input NewOrderInput) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Int("item_count", len(input.Items)),
	)

	if len(input.Items) == 0 {
		return Order{}, fmt.Errorf("%w: order must contain items", ErrValidation)
	}
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return Order{}, fmt.Errorf("%w: quantity must be positive at index %d", ErrValidation, i)
		}
	}
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Email) == "" {
		return Order{}, fmt.Errorf("%w: customer name and email are required", ErrValidation)
	}
	if !input.Total.GreaterThan(decimal.Zero) {
		return Order{}, fmt.Errorf("%w: total must be positive", ErrValidation)
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return Order{}, err
	}

	log.Info("order created",
		zap.String("id", created.ID),
		zap.String("customer", created.Customer.Email),
		zap.String("total", created.Total.String()),
	)
	return created, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("id", id),
	)

	if !status.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if err != ErrOrderNotFound {
			log.Error("failed to update order status", zap.Error(err))
		}
		return Order{}, err
	}

	log.Info("order status updated", zap.String("status", string(status)))
	return updated, nil
}
