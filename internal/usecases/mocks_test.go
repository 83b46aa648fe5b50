package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"alvezinc.backend/internal/domain/entities"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, userUUID)
	if u := args.Get(0); u != nil {
		return u.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Activate(ctx context.Context, userUUID uuid.UUID) error {
	args := m.Called(ctx, userUUID)
	return args.Error(0)
}

type MockUserActivationRepository struct {
	mock.Mock
}

func (m *MockUserActivationRepository) Create(ctx context.Context, userUUID uuid.UUID, code string) error {
	args := m.Called(ctx, userUUID, code)
	return args.Error(0)
}

func (m *MockUserActivationRepository) Consume(ctx context.Context, code string) (uuid.UUID, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, userUUID)
	if p := args.Get(0); p != nil {
		return p.(*entities.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, userUUID uuid.UUID, input *entities.UpdateProfileInput) error {
	args := m.Called(ctx, userUUID, input)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entities.Product, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*entities.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, query string) ([]*entities.ProductSearchResult, error) {
	args := m.Called(ctx, query)
	if r := args.Get(0); r != nil {
		return r.([]*entities.ProductSearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMailDispatcher struct {
	mock.Mock
}

func (m *MockMailDispatcher) SendActivationEmail(ctx context.Context, toEmail, code string) error {
	args := m.Called(ctx, toEmail, code)
	return args.Error(0)
}
