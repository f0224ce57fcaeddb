package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

type AnalyzeHandler struct {
	cvRepo       repositories.CVRepository
	jdRepo       repositories.JobDescriptionRepository
	analysisRepo repositories.AnalysisRepository
	analyzer     services.AnalyzerService
}

func NewAnalyzeHandler(
	cvRepo repositories.CVRepository,
	jdRepo repositories.JobDescriptionRepository,
	analysisRepo repositories.AnalysisRepository,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cvRepo:       cvRepo,
		jdRepo:       jdRepo,
		analysisRepo: analysisRepo,
		analyzer:     analyzer,
	}
}

// HandleAnalyze compares a stored CV with a stored job description and saves the outcome.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	body, ok := parseJSONObject(c)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "No data provided")
	}

	req := models.AnalyzeRequest{
		CVID:             body.Get("cv_id").Int(),
		JobDescriptionID: body.Get("job_description_id").Int(),
		UserID:           optionalID(body.Get("user_id")),
	}

	if req.CVID == 0 || req.JobDescriptionID == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "CV ID and Job Description ID are required")
	}

	cvText, err := h.cvRepo.FindContentByID(req.CVID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "CV not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	jobDescription, err := h.jdRepo.FindContentByID(req.JobDescriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Job description not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	analysis := h.analyzer.Analyze(c.UserContext(), cvText, jobDescription)
	if analysis.Degraded {
		log.Printf("⚠️  Analysis of CV %d against job description %d degraded: %v\n",
			req.CVID, req.JobDescriptionID, analysis.Err)
	}

	resultID := h.analysisRepo.Save(&models.AnalysisResult{
		UserID:           req.UserID,
		CVID:             req.CVID,
		JobDescriptionID: req.JobDescriptionID,
		Score:            analysis.Result.Score,
		Feedback:         analysis.Result.Feedback,
		Suggestions:      analysis.Result.Suggestions,
		ImprovedCV:       analysis.Result.ImprovedCV,
	})

	return c.JSON(models.AnalyzeResponse{
		Success:  true,
		ResultID: resultID,
		Analysis: analysis.Result,
	})
}
