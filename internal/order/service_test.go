package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewOrderInput) (int, error) {
	args := m.Called(ctx, input)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Tests ---

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("Enviado").Valid())
	assert.False(t, Status("").Valid())
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	input := NewOrderInput{
		ClienteNome:  "Ana Souza",
		ClienteEmail: "ana@example.com",
		Produtos:     []Item{{IphoneID: 1, Nome: "iPhone 15 Pro", Quantidade: 1, PrecoUnitario: 900}},
		Total:        900,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, input).Return(42, nil)

		id, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 42, id)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, input).Return(0, errors.New("connection error"))

		_, err := svc.Create(ctx, input)
		assert.Error(t, err)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("UpdateStatus", ctx, 3, StatusProcessing).Return(nil)

		assert.NoError(t, svc.UpdateStatus(ctx, 3, StatusProcessing))
		mockRepo.AssertExpectations(t)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.UpdateStatus(ctx, 3, Status("Enviado"))
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockRepo.On("Delete", ctx, 9).Return(nil)

	assert.NoError(t, svc.Delete(ctx, 9))
	mockRepo.AssertExpectations(t)
}
