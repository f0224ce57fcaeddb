package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

const previewLength = 200

type UploadHandler struct {
	cvRepo            repositories.CVRepository
	storageService    services.StorageService
	extractor         services.TextExtractor
	allowedExtensions []string
}

func NewUploadHandler(
	cvRepo repositories.CVRepository,
	storageService services.StorageService,
	extractor services.TextExtractor,
	allowedExtensions []string,
) *UploadHandler {
	return &UploadHandler{
		cvRepo:            cvRepo,
		storageService:    storageService,
		extractor:         extractor,
		allowedExtensions: allowedExtensions,
	}
}

// HandleUpload stores the "cv" file, extracts its text and records it.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "No file part")
	}

	cvFiles := form.File["cv"]
	if len(cvFiles) == 0 {
		// A part with an empty filename arrives as a plain form value.
		if _, exists := form.Value["cv"]; exists {
			return errorResponse(c, fiber.StatusBadRequest, "No selected file")
		}
		return errorResponse(c, fiber.StatusBadRequest, "No file part")
	}

	cvFile := cvFiles[0]
	if cvFile.Filename == "" {
		return errorResponse(c, fiber.StatusBadRequest, "No selected file")
	}

	if !h.storageService.IsAllowed(cvFile.Filename) {
		return errorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("File type not allowed. Supported types: %s", strings.Join(h.allowedExtensions, ", ")))
	}

	userID, ok := parseUserID(c.FormValue("user_id"))
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	stored, err := h.storageService.SaveFile(c.UserContext(), cvFile)
	if err != nil {
		if errors.Is(err, services.ErrFileTypeNotAllowed) {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("❌ Failed to save upload: %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to save CV file: %v", err))
	}
	log.Printf("📄 File saved: %s\n", stored.Path)

	cvText := h.extractor.ExtractText(stored.Path, stored.Ext)

	cv := models.CV{
		UserID:   userID,
		FileName: stored.FileName,
		FilePath: stored.Path,
		Content:  cvText,
	}

	cvID, err := h.cvRepo.Create(&cv)
	if err != nil {
		log.Printf("❌ Database error: %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, fmt.Sprintf("Database insertion failed: %v", err))
	}

	log.Printf("✅ CV %d stored (%s): %s\n", cvID, stored.FileName, preview(cvText))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Upload OK",
	})
}

// HandleListUserCVs lists the CVs uploaded by ?user_id=, newest first.
func (h *UploadHandler) HandleListUserCVs(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Query("user_id"))
	if !ok || userID == nil {
		return errorResponse(c, fiber.StatusBadRequest, "User ID is required")
	}

	cvs, err := h.cvRepo.ListByUser(*userID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cvs":     cvs,
	})
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLength {
		return string(runes[:previewLength]) + "..."
	}
	return text
}
