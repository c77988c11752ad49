package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPinner struct {
	mock.Mock
}

func (m *MockPinner) Pin(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	args := m.Called(ctx, data, fileName, contentType)
	return args.String(0), args.Error(1)
}
