package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
	"alfredoptarigan/ats-resume-analyzer/internal/repositories"
	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer  services.AnalyzerService
	workspace repositories.WorkspaceRepository
	timeout   time.Duration
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	workspace repositories.WorkspaceRepository,
	timeout time.Duration,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:  analyzer,
		workspace: workspace,
		timeout:   timeout,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return err
	}

	params, err := resolveParams(h.workspace.Settings(), req.Temperature, req.MaxTokens)
	if err != nil {
		return err
	}

	ws := h.workspace.Snapshot()
	resumeText := valueOr(req.ResumeText, ws.ResumeText)
	jobDescription := valueOr(req.JobDescription, ws.JobDescription)

	if req.ResumeText != nil {
		h.workspace.SetResumeText(resumeText)
	}
	if req.JobDescription != nil {
		h.workspace.SetJobDescription(jobDescription)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.analyzer.AnalyzeResume(ctx, resumeText, jobDescription, params)
	if err != nil {
		return err
	}

	h.workspace.SetAnalysis(result.Output)

	return c.JSON(toActionResponse(result))
}

// HandleRephrase handles POST /rephrase
func (h *AnalyzeHandler) HandleRephrase(c *fiber.Ctx) error {
	var req models.RephraseRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return err
	}

	params, err := resolveParams(h.workspace.Settings(), req.Temperature, req.MaxTokens)
	if err != nil {
		return err
	}

	text := valueOr(req.Text, h.workspace.Snapshot().TextToRephrase)
	if req.Text != nil {
		h.workspace.SetTextToRephrase(text)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.analyzer.RephraseText(ctx, text, params)
	if err != nil {
		return err
	}

	h.workspace.SetRephrasedText(result.Output)

	return c.JSON(toActionResponse(result))
}

func valueOr(value *string, fallback string) string {
	if value != nil {
		return *value
	}
	return fallback
}

// parseOptionalBody leaves out untouched when the request has no body.
func parseOptionalBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	return nil
}

// resolveParams overlays request values on the shared settings and rejects
// anything outside the settings panel bounds.
func resolveParams(base models.GenerationParams, temperature *float32, maxTokens *int32) (models.GenerationParams, error) {
	params := base
	if temperature != nil {
		params.Temperature = *temperature
	}
	if maxTokens != nil {
		params.MaxTokens = *maxTokens
	}

	if params.Temperature < models.MinTemperature || params.Temperature > models.MaxTemperature {
		return params, fiber.NewError(fiber.StatusBadRequest, "temperature must be between 0 and 1")
	}
	if params.MaxTokens < models.MinMaxTokens || params.MaxTokens > models.MaxMaxTokens {
		return params, fiber.NewError(fiber.StatusBadRequest, "max_tokens must be between 50 and 1024")
	}

	return params, nil
}

func toActionResponse(result *services.ActionResult) models.ActionResponse {
	return models.ActionResponse{
		ID:       result.ID.String(),
		Action:   string(result.Action),
		Markdown: result.Output,
		Params:   result.Params,
	}
}
