package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"iphones-store/internal/backend"
)

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input ProductInput) (string, error)
	Update(ctx context.Context, id int, input ProductInput) (string, error)
	Delete(ctx context.Context, id int) error
}

type repository struct {
	client *backend.Client
}

func NewRepository(client *backend.Client) Repository {
	return &repository{client: client}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	var out struct {
		Iphones []Product `json:"iphones"`
	}
	if err := r.client.Get(ctx, "/api/iphones", &out); err != nil {
		return nil, err
	}
	return out.Iphones, nil
}

// GetByID accepts both the enveloped `{iphone: {...}}` response and a
// bare product object; the backend has shipped both shapes.
func (r *repository) GetByID(ctx context.Context, id int) (*Product, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, fmt.Sprintf("/api/iphones/%d", id), &raw); err != nil {
		return nil, err
	}

	var env struct {
		Iphone *Product `json:"iphone"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Iphone != nil {
		return env.Iphone, nil
	}

	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode iphone %d: %w", id, err)
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, input ProductInput) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.client.Post(ctx, "/api/iphones", input, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (r *repository) Update(ctx context.Context, id int, input ProductInput) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := r.client.Put(ctx, fmt.Sprintf("/api/iphones/%d", id), input, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/api/iphones/%d", id))
}
