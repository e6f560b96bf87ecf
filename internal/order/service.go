package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"iphones-store/internal/logger"
)

type Service interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, input NewOrderInput) (int, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input NewOrderInput) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
	)

	id, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Warn("order create failed", zap.Error(err))
		return 0, err
	}

	log.Info("order created",
		zap.Int("order_id", id),
		zap.Float64("total", input.Total),
	)
	return id, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
