package mocks

import (
	"context"

	"landapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLandRepository struct {
	mock.Mock
}

func (m *MockLandRepository) Insert(ctx context.Context, land *model.Land) (*model.Land, error) {
	args := m.Called(ctx, land)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Land), args.Error(1)
}

func (m *MockLandRepository) FindByWallet(ctx context.Context, address string) ([]model.Land, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Land), args.Error(1)
}
