package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
	exportPath   string
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository, exportPath string) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
		exportPath:   exportPath,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid analysis result ID")
	}

	result, err := h.analysisRepo.FindDetailByID(int64(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Analysis result not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}

// HandleHistory lists analyses for ?user_id=. Without a user id it lists anonymous analyses.
func (h *ResultHandler) HandleHistory(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Query("user_id"))
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	history, err := h.analysisRepo.ListHistoryByUser(userID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"history": history,
	})
}

// HandleExport writes the improved CV to the export directory and sends it as an attachment.
func (h *ResultHandler) HandleExport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid analysis result ID")
	}

	format := c.Query("format", "txt")

	export, err := h.analysisRepo.FindExportByID(int64(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Analysis result not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if format != "txt" {
		return errorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Export format '%s' not supported yet", format))
	}

	downloadName := exportFileName(export.FileName)
	filePath := filepath.Join(h.exportPath, downloadName)
	if err := os.WriteFile(filePath, []byte(export.ImprovedCV), 0644); err != nil {
		log.Printf("❌ Failed to write export %s: %v\n", filePath, err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Download(filePath, downloadName)
}

// exportFileName turns "resume.pdf" into "resume_improved.txt".
func exportFileName(cvName string) string {
	base := cvName
	if idx := strings.LastIndex(cvName, "."); idx >= 0 {
		base = cvName[:idx]
	}
	return fmt.Sprintf("%s_improved.txt", base)
}
