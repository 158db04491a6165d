package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"contact-book-backend/internal/domain"
	"contact-book-backend/internal/usecase"
	"contact-book-backend/pkg/apperror"
	"contact-book-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repository
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) List(ctx context.Context, search string) ([]domain.Contact, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Update(ctx context.Context, id string, in domain.ContactInput) (*domain.Contact, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockContactRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func requireAppError(t *testing.T, err error, status int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.Status())
	return appErr
}

func TestCreateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("Should normalise fields before writing", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())

		want := domain.ContactInput{Name: "Alice Doe", Email: "alice@example.com", Phone: "5551234567"}
		repo.On("Create", ctx, want).Return(&domain.Contact{ID: "1", Name: want.Name, Email: want.Email, Phone: want.Phone}, nil)

		got, err := uc.CreateContact(ctx, domain.ContactInput{Name: "  Alice Doe ", Email: " Alice@Example.COM ", Phone: " 5551234567 "})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail with required message when a field is missing", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())

		_, err := uc.CreateContact(ctx, domain.ContactInput{Name: "Bob", Phone: "5551234567"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a whitespace-only name", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())

		_, err := uc.CreateContact(ctx, domain.ContactInput{Name: "   ", Email: "bob@example.com", Phone: "5551234567"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Name is required", appErr.Message)
	})

	t.Run("Should reject a short phone", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())

		_, err := uc.CreateContact(ctx, domain.ContactInput{Name: "Bob", Email: "bob@example.com", Phone: "12345"})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Contains(t, appErr.Message, "10 digits")
	})

	t.Run("Should map a duplicate phone to conflict", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.Anything).Return(nil, fmt.Errorf("insert contact: %w", domain.ErrDuplicatePhone))

		_, err := uc.CreateContact(ctx, domain.ContactInput{Name: "Bob", Email: "bob@example.com", Phone: "5551234567"})
		appErr := requireAppError(t, err, http.StatusConflict)
		assert.Equal(t, "This phone number is already registered", appErr.Message)
	})

	t.Run("Should wrap unexpected store errors", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := uc.CreateContact(ctx, domain.ContactInput{Name: "Bob", Email: "bob@example.com", Phone: "5551234567"})
		appErr := requireAppError(t, err, http.StatusInternalServerError)
		assert.Equal(t, "connection refused", appErr.Detail())
	})
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map a missing record to not found", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())
		repo.On("Update", ctx, "nope", mock.Anything).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateContact(ctx, "nope", domain.ContactInput{Name: "Bob", Email: "bob@example.com", Phone: "5551234567"})
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("Should validate before touching the store", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())

		_, err := uc.UpdateContact(ctx, "1", domain.ContactInput{Name: "Bob", Email: "bob", Phone: "5551234567"})
		requireAppError(t, err, http.StatusBadRequest)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListContacts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return an empty slice instead of nil", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())
		repo.On("List", ctx, "zed").Return(nil, nil)

		got, err := uc.ListContacts(ctx, "zed")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should wrap store errors", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc := usecase.NewContactUsecase(repo, validation.New())
		repo.On("List", ctx, "").Return(nil, errors.New("timeout"))

		_, err := uc.ListContacts(ctx, "")
		requireAppError(t, err, http.StatusInternalServerError)
	})
}

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepo)
	uc := usecase.NewContactUsecase(repo, validation.New())

	repo.On("Delete", ctx, "gone").Return(domain.ErrNotFound)
	repo.On("Delete", ctx, "here").Return(nil)

	requireAppError(t, uc.DeleteContact(ctx, "gone"), http.StatusNotFound)
	assert.NoError(t, uc.DeleteContact(ctx, "here"))
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report an unreachable store as unavailable", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Ping", ctx).Return(errors.New("dial tcp: refused"))

		requireAppError(t, usecase.NewHealthUsecase(repo).Check(ctx), http.StatusServiceUnavailable)
	})

	t.Run("Should pass when the store answers", func(t *testing.T) {
		repo := new(MockContactRepo)
		repo.On("Ping", ctx).Return(nil)

		assert.NoError(t, usecase.NewHealthUsecase(repo).Check(ctx))
	})
}
