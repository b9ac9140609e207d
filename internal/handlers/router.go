package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

func RegisterRoutes(
	api fiber.Router,
	uploadHandler *UploadHandler,
	analyzeHandler *AnalyzeHandler,
	workspaceHandler *WorkspaceHandler,
) {
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/resume", uploadHandler.HandleUpload)
	api.Post("/resume/import", uploadHandler.HandleImport)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/rephrase", analyzeHandler.HandleRephrase)
	api.Get("/workspace", workspaceHandler.HandleGetWorkspace)
	api.Delete("/workspace", workspaceHandler.HandleClearWorkspace)
	api.Get("/settings", workspaceHandler.HandleGetSettings)
	api.Put("/settings", workspaceHandler.HandleUpdateSettings)
}

// ErrorHandler renders every failure as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v\n", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func statusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fiber.StatusGatewayTimeout
	}

	var extractionErr *services.ExtractionError
	if errors.As(err, &extractionErr) {
		return fiber.StatusUnprocessableEntity
	}

	var configErr *services.ConfigurationError
	if errors.As(err, &configErr) {
		return fiber.StatusServiceUnavailable
	}

	var upstreamErr *services.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.RateLimited {
			return fiber.StatusTooManyRequests
		}
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
