package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-analyzer/internal/models"
	"alfredoptarigan/ats-resume-analyzer/internal/repositories"
	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

type UploadHandler struct {
	analyzer       services.AnalyzerService
	workspace      repositories.WorkspaceRepository
	storageService services.StorageService
	maxFileSize    int64
}

// NewUploadHandler accepts a nil storageService when bucket import is disabled.
func NewUploadHandler(
	analyzer services.AnalyzerService,
	workspace repositories.WorkspaceRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		analyzer:       analyzer,
		workspace:      workspace,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resume
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	if file.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return h.extractAndStore(c, file.Filename, data)
}

// HandleImport handles POST /resume/import
func (h *UploadHandler) HandleImport(c *fiber.Ctx) error {
	if h.storageService == nil {
		return &services.ConfigurationError{Setting: "R2_BUCKET", Err: services.ErrStorageDisabled}
	}

	var req models.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if strings.TrimSpace(req.ObjectKey) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "object_key is required")
	}

	data, err := h.storageService.Download(c.UserContext(), req.ObjectKey)
	if err != nil {
		log.Printf("❌ Failed to download %s from bucket %s: %v\n", req.ObjectKey, h.storageService.Bucket(), err)

		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("object %s not found", req.ObjectKey))
		}
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("failed to download %s", req.ObjectKey))
	}

	if int64(len(data)) > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	return h.extractAndStore(c, filepath.Base(req.ObjectKey), data)
}

func (h *UploadHandler) extractAndStore(c *fiber.Ctx, fileName string, data []byte) error {
	text, err := h.analyzer.ExtractResume(c.UserContext(), fileName, data)
	if err != nil {
		return err
	}

	h.workspace.SetResumeText(text)

	return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
		Filename:   fileName,
		FileType:   string(services.DocumentTypeOf(fileName)),
		ResumeText: text,
	})
}
