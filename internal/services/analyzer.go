package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
)

type AnalyzerService interface {
	ExtractResume(ctx context.Context, fileName string, data []byte) (string, error)
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string, params models.GenerationParams) (*ActionResult, error)
	RephraseText(ctx context.Context, text string, params models.GenerationParams) (*ActionResult, error)
}

// ActionResult carries the unmodified model output of one action.
type ActionResult struct {
	ID     uuid.UUID
	Action models.Action
	Output string
	Params models.GenerationParams
}

type analyzerService struct {
	extractor     DocumentExtractor
	completion    CompletionClient
	publisher     EventPublisher
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	extractor DocumentExtractor,
	completion CompletionClient,
	publisher EventPublisher,
) AnalyzerService {
	if publisher == nil {
		publisher = NewNoopPublisher()
	}

	return &analyzerService{
		extractor:     extractor,
		completion:    completion,
		publisher:     publisher,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *analyzerService) ExtractResume(ctx context.Context, fileName string, data []byte) (string, error) {
	id := uuid.New()
	a.publish(ctx, id, models.ActionExtract, models.EventProcessing, fileName)

	log.Printf("📄 Extracting text from %s (%d bytes)\n", fileName, len(data))
	text, err := a.extractor.ExtractText(fileName, data)
	if err != nil {
		log.Printf("❌ Extraction failed for %s: %v\n", fileName, err)
		a.publish(ctx, id, models.ActionExtract, models.EventFailed, err.Error())
		return "", err
	}

	if DocumentTypeOf(fileName) == DocumentTypeUnknown {
		log.Printf("⚠️  Unsupported file type for %s, returning empty text\n", fileName)
	}

	a.publish(ctx, id, models.ActionExtract, models.EventCompleted, fmt.Sprintf("%d characters extracted", len(text)))
	return text, nil
}

func (a *analyzerService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string, params models.GenerationParams) (*ActionResult, error) {
	prompt := a.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)
	return a.run(ctx, models.ActionAnalyze, prompt, params)
}

func (a *analyzerService) RephraseText(ctx context.Context, text string, params models.GenerationParams) (*ActionResult, error) {
	prompt := a.promptBuilder.BuildRephrasePrompt(text)
	return a.run(ctx, models.ActionRephrase, prompt, params)
}

func (a *analyzerService) run(ctx context.Context, action models.Action, prompt Prompt, params models.GenerationParams) (*ActionResult, error) {
	id := uuid.New()
	a.publish(ctx, id, action, models.EventProcessing, "request sent to "+a.completion.Model())

	log.Printf("🤖 Running %s (prompt length: %d characters, temperature: %.2f, max tokens: %d)\n",
		action, len(prompt.User), params.Temperature, params.MaxTokens)

	output, err := a.completion.Complete(ctx, CompletionRequest{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		Temperature:  params.Temperature,
		MaxTokens:    params.MaxTokens,
	})
	if err != nil {
		log.Printf("❌ %s failed: %v\n", action, err)
		a.publish(ctx, id, action, models.EventFailed, err.Error())
		return nil, err
	}

	log.Printf("✅ %s response received: %d characters\n", action, len(output))
	a.publish(ctx, id, action, models.EventCompleted, fmt.Sprintf("%d characters generated", len(output)))

	return &ActionResult{
		ID:     id,
		Action: action,
		Output: output,
		Params: params,
	}, nil
}

// publish never fails the action it reports on.
func (a *analyzerService) publish(ctx context.Context, id uuid.UUID, action models.Action, status models.EventStatus, message string) {
	event := models.WorkspaceEvent{
		ID:        id.String(),
		Action:    action,
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	}

	if err := a.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("⚠️  Failed to publish %s event for %s: %v\n", status, action, err)
	}
}
