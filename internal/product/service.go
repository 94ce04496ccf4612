package product

import (
	"context"
	"fmt"
	"strings"

	"koffiehuis-be/internal/category"
	"koffiehuis-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	GetList(ctx context.Context, opts ListOptions) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (Product, error)
	Create(ctx context.Context, input NewProductInput) (Product, error)
	// Update returns the updated product plus the image URL that was
	// replaced, if any, so the caller can remove the stale asset.
	Update(ctx context.Context, id int, input UpdateProductInput) (Product, *string, error)
	// Delete returns the removed product's image URL, if any.
	Delete(ctx context.Context, id int) (*string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetList(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetList"),
	)

	products, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Debug("product list success",
		zap.Int("count", len(products)),
		zap.String("category", opts.Category),
		zap.String("search", opts.Search),
		zap.String("sort", opts.Sort),
	)
	return products, nil
}

func (s *service) GetProductByID(ctx context.Context, id int) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	if err := validateNew(input); err != nil {
		log.Warn("product rejected", zap.Error(err))
		return Product{}, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product created", zap.Int("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *service) Update(ctx context.Context, id int, input UpdateProductInput) (Product, *string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.Int("id", id),
	)

	if err := validateUpdate(input); err != nil {
		log.Warn("product update rejected", zap.Error(err))
		return Product{}, nil, err
	}

	var replacedImage *string
	if input.Image != nil {
		prev, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return Product{}, nil, err
		}
		if prev.Image != nil && *prev.Image != *input.Image {
			replacedImage = prev.Image
		}
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if err != ErrProductNotFound {
			log.Error("failed to update product", zap.Error(err))
		}
		return Product{}, nil, err
	}

	log.Info("product updated", zap.Int("id", updated.ID))
	return updated, replacedImage, nil
}

func (s *service) Delete(ctx context.Context, id int) (*string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delete"),
		zap.Int("id", id),
	)

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if err != ErrProductNotFound {
			log.Error("failed to delete product", zap.Error(err))
		}
		return nil, err
	}

	log.Info("product deleted", zap.Int("id", id))
	return removed.Image, nil
}

func validateNew(input NewProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !category.Valid(input.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}
	if !input.Price.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}

func validateUpdate(input UpdateProductInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	if input.Category != nil && !category.Valid(*input.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *input.Category)
	}
	if input.Price != nil && !input.Price.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return nil
}
