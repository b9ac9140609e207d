package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"google.golang.org/genai"
)

// CompletionRequest is one system + user exchange with its sampling settings.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int32
}

type CompletionClient interface {
	// Complete issues a single non-streaming request and returns the first
	// candidate's text unmodified.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (CompletionClient, error) {
	return newGeminiService(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, modelName)
}

func newGeminiService(ctx context.Context, cc *genai.ClientConfig, modelName string) (CompletionClient, error) {
	if cc.APIKey == "" {
		return nil, &ConfigurationError{Setting: "GEMINI_API_KEY", Err: errors.New("api key is empty")}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, &ConfigurationError{Setting: "GEMINI_API_KEY", Err: fmt.Errorf("failed to create gemini client: %w", err)}
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}

// Complete implements CompletionClient.
func (g *geminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if g == nil || g.client == nil {
		return "", &ConfigurationError{Setting: "GEMINI_API_KEY", Err: ErrClientNotConfigured}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(req.UserPrompt), buildGenerateConfig(req))
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", classifyCompletionError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		log.Println("❌ Gemini API returned no candidates")
		return "", &UpstreamError{Err: ErrEmptyCompletion}
	}

	if !hasText(resp.Candidates[0]) {
		log.Printf("❌ Gemini API returned a candidate without text (finish reason: %s)\n", resp.Candidates[0].FinishReason)
		return "", &UpstreamError{Err: fmt.Errorf("%w: finish reason %s", ErrNoCompletionText, resp.Candidates[0].FinishReason)}
	}

	return resp.Text(), nil
}

func buildGenerateConfig(req CompletionRequest) *genai.GenerateContentConfig {
	temperature := req.Temperature

	// Thinking is off so MaxOutputTokens bounds the answer alone.
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	return config
}

// hasText reports whether the candidate carries any non-thought text part.
func hasText(candidate *genai.Candidate) bool {
	if candidate == nil || candidate.Content == nil {
		return false
	}
	for _, part := range candidate.Content.Parts {
		if part != nil && !part.Thought && part.Text != "" {
			return true
		}
	}
	return false
}

func classifyCompletionError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return errorForStatus(apiErr.Code, err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return errorForStatus(apiErrPtr.Code, err)
	}

	return &UpstreamError{Err: err}
}

func errorForStatus(code int, err error) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ConfigurationError{Setting: "GEMINI_API_KEY", Err: err}
	case http.StatusTooManyRequests:
		return &UpstreamError{StatusCode: code, RateLimited: true, Err: err}
	default:
		return &UpstreamError{StatusCode: code, Err: err}
	}
}
