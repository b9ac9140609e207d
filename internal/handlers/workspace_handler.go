package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
	"alfredoptarigan/ats-resume-analyzer/internal/repositories"
)

type WorkspaceHandler struct {
	workspace repositories.WorkspaceRepository
}

func NewWorkspaceHandler(workspace repositories.WorkspaceRepository) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspace: workspace,
	}
}

// HandleGetWorkspace handles GET /workspace
func (h *WorkspaceHandler) HandleGetWorkspace(c *fiber.Ctx) error {
	return c.JSON(h.workspace.Snapshot())
}

// HandleClearWorkspace handles DELETE /workspace
func (h *WorkspaceHandler) HandleClearWorkspace(c *fiber.Ctx) error {
	h.workspace.Clear()
	return c.JSON(h.workspace.Snapshot())
}

// HandleGetSettings handles GET /settings
func (h *WorkspaceHandler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.workspace.Settings())
}

// HandleUpdateSettings handles PUT /settings
func (h *WorkspaceHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var req models.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	params, err := resolveParams(h.workspace.Settings(), req.Temperature, req.MaxTokens)
	if err != nil {
		return err
	}

	h.workspace.UpdateSettings(params)

	return c.JSON(params)
}
