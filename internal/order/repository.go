package order

import (
	"context"
	"fmt"

	"iphones-store/internal/backend"
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, input NewOrderInput) (int, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := r.client.Get(ctx, "/api/orders", &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (r *repository) Create(ctx context.Context, input NewOrderInput) (int, error) {
	var out struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	if err := r.client.Post(ctx, "/api/orders", input, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	payload := map[string]string{"status": string(status)}
	return r.client.Put(ctx, fmt.Sprintf("/api/orders/%d", id), payload, nil)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/api/orders/%d", id))
}
