package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

type MockAnalyzerService struct {
	mock.Mock
}

func (m *MockAnalyzerService) ExtractResume(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

func (m *MockAnalyzerService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string, params models.GenerationParams) (*services.ActionResult, error) {
	args := m.Called(ctx, resumeText, jobDescription, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ActionResult), args.Error(1)
}

func (m *MockAnalyzerService) RephraseText(ctx context.Context, text string, params models.GenerationParams) (*services.ActionResult, error) {
	args := m.Called(ctx, text, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ActionResult), args.Error(1)
}
