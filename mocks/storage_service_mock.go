package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Download(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStorageService) Bucket() string {
	return "mock-bucket"
}
