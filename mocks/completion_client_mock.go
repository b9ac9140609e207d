package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, req services.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionClient) Model() string {
	return "mock-model"
}
