package mocks

import (
	"context"

	"landapi/internal/model"
	"landapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockLandService struct {
	mock.Mock
}

func (m *MockLandService) Upload(ctx context.Context, in service.UploadInput) (*service.UploadResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockLandService) ListByWallet(ctx context.Context, address string) ([]model.Land, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Land), args.Error(1)
}

func (m *MockLandService) Create(ctx context.Context, in service.CreateInput) (*model.Land, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Land), args.Error(1)
}
