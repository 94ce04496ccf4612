package category

import (
	"context"

	"koffiehuis-be/internal/logger"

	"go.uber.org/zap"
)

// Service exposes the read-only category reference data.
type Service interface {
	GetCategories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCategories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCategories"),
	)

	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to read categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
