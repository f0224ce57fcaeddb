package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
)

type JobDescriptionHandler struct {
	jdRepo repositories.JobDescriptionRepository
}

func NewJobDescriptionHandler(jdRepo repositories.JobDescriptionRepository) *JobDescriptionHandler {
	return &JobDescriptionHandler{
		jdRepo: jdRepo,
	}
}

func (h *JobDescriptionHandler) HandleCreate(c *fiber.Ctx) error {
	body, ok := parseJSONObject(c)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "No data provided")
	}

	req := models.JobDescriptionRequest{
		Title:   body.Get("title").String(),
		Content: body.Get("content").String(),
		UserID:  optionalID(body.Get("user_id")),
	}

	if req.Title == "" || req.Content == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title and content are required")
	}

	jd := models.JobDescription{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
	}

	id, err := h.jdRepo.Create(&jd)
	if err != nil {
		log.Printf("❌ Failed to save job description: %v\n", err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.JobDescriptionResponse{
		Success:          true,
		JobDescriptionID: id,
		Title:            req.Title,
	})
}

func (h *JobDescriptionHandler) HandleListByUser(c *fiber.Ctx) error {
	userID, ok := parseUserID(c.Query("user_id"))
	if !ok || userID == nil {
		return errorResponse(c, fiber.StatusBadRequest, "User ID is required")
	}

	jds, err := h.jdRepo.ListByUser(*userID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"job_descriptions": jds,
	})
}
