package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input ProductInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, input ProductInput) (string, error) {
	args := m.Called(ctx, id, input)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Helpers ---

func ptr(v float64) *float64 { return &v }

func fixtureProducts() []Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, Nome: "iPhone Pro", Modelo: "15 Pro", ArmazenamentoGB: 256, PrecoTabela: 1000, PrecoPromocional: ptr(900), DataCriacao: base.Add(24 * time.Hour)},
		{ID: 2, Nome: "iPhone SE", Modelo: "SE", ArmazenamentoGB: 128, PrecoTabela: 500, DataCriacao: base.Add(48 * time.Hour)},
		{ID: 3, Nome: "iPhone Plus", Modelo: "15", ArmazenamentoGB: 256, PrecoTabela: 800, DataCriacao: base},
	}
}

// --- Tests ---

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("List", ctx).Return(fixtureProducts(), nil)

		res, err := svc.List(ctx, ListOptions{})
		require.NoError(t, err)
		assert.Len(t, res.Products, 3)
		// Newest first by default.
		assert.Equal(t, 2, res.Products[0].ID)
		assert.Equal(t, []string{"SE", "15 Pro", "15"}, res.Models)
		assert.Equal(t, []int{128, 256}, res.Storages)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("List", ctx).Return(nil, errors.New("connection error"))

		_, err := svc.List(ctx, ListOptions{})
		assert.Error(t, err)
	})
}

func TestFilter(t *testing.T) {
	products := fixtureProducts()

	t.Run("SearchCaseInsensitive", func(t *testing.T) {
		got := Filter(products, ListOptions{Search: "pro"})
		require.Len(t, got, 1)
		assert.Equal(t, "iPhone Pro", got[0].Nome)
	})

	t.Run("SearchMatchesDescription", func(t *testing.T) {
		withDesc := append([]Product{}, products...)
		withDesc[1].DescricaoDetalhada = "O modelo PRO de entrada"
		got := Filter(withDesc, ListOptions{Search: "pro"})
		assert.Len(t, got, 2)
	})

	t.Run("ModelExact", func(t *testing.T) {
		got := Filter(products, ListOptions{Model: "15"})
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("StorageExact", func(t *testing.T) {
		got := Filter(products, ListOptions{StorageGB: 256})
		assert.Len(t, got, 2)
	})

	t.Run("Conjunctive", func(t *testing.T) {
		got := Filter(products, ListOptions{Search: "iphone", Model: "15 Pro", StorageGB: 256})
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("NoMatches", func(t *testing.T) {
		got := Filter(products, ListOptions{Search: "android"})
		assert.Empty(t, got)
	})

	t.Run("SubsetAndIdempotent", func(t *testing.T) {
		opts := ListOptions{Search: "iphone", StorageGB: 256}
		once := Filter(products, opts)
		twice := Filter(once, opts)
		assert.Equal(t, once, twice)
		for _, p := range once {
			assert.Contains(t, products, p)
		}
	})
}

func TestSortProducts(t *testing.T) {
	t.Run("PriceAscUsesEffectivePrice", func(t *testing.T) {
		products := fixtureProducts()
		SortProducts(products, SortPriceAsc)
		// 500, 800, 900 (promotional beats the 1000 list price).
		assert.Equal(t, []int{2, 3, 1}, ids(products))
	})

	t.Run("PriceDesc", func(t *testing.T) {
		products := fixtureProducts()
		SortProducts(products, SortPriceDesc)
		assert.Equal(t, []int{1, 3, 2}, ids(products))
	})

	t.Run("LatestFirst", func(t *testing.T) {
		products := fixtureProducts()
		SortProducts(products, SortLatest)
		assert.Equal(t, []int{2, 1, 3}, ids(products))
	})

	t.Run("StableOnTies", func(t *testing.T) {
		products := fixtureProducts()
		for i := range products {
			products[i].PrecoTabela = 700
			products[i].PrecoPromocional = nil
		}
		SortProducts(products, SortPriceAsc)
		// All prices equal: fetch order preserved.
		assert.Equal(t, []int{1, 2, 3}, ids(products))
	})
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	input := ProductInput{Nome: "iPhone 15", PrecoTabela: 5000}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, input).Return("iPhone cadastrado com sucesso!", nil)

		msg, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "iPhone cadastrado com sucesso!", msg)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, input).Return("", errors.New("backend: 400 SKU inválido"))

		_, err := svc.Create(ctx, input)
		assert.Error(t, err)
	})
}
