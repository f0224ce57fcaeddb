package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/models"
)

// sampleJobs stands in for a real job board integration.
var sampleJobs = []models.JobPosting{
	{
		ID:          1,
		Title:       "Software Engineer",
		Company:     "TechCorp",
		Location:    "Athens, Greece",
		Description: "Looking for a skilled software engineer...",
		URL:         "https://example.com/jobs/1",
	},
	{
		ID:          2,
		Title:       "Data Scientist",
		Company:     "DataWorks",
		Location:    "Thessaloniki, Greece",
		Description: "Data scientist position available...",
		URL:         "https://example.com/jobs/2",
	},
	{
		ID:          3,
		Title:       "Frontend Developer",
		Company:     "WebSolutions",
		Location:    "Remote",
		Description: "Frontend developer needed for...",
		URL:         "https://example.com/jobs/3",
	},
}

type JobHandler struct{}

func NewJobHandler() *JobHandler {
	return &JobHandler{}
}

// HandleJobSearch returns the sample postings regardless of the search terms.
func (h *JobHandler) HandleJobSearch(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":  true,
		"jobs":     sampleJobs,
		"query":    c.Query("query"),
		"location": c.Query("location"),
	})
}

// HandleSendApplication acknowledges an application without sending anything.
func (h *JobHandler) HandleSendApplication(c *fiber.Ctx) error {
	body, ok := parseJSONObject(c)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "No data provided")
	}

	req := models.SendApplicationRequest{
		JobID:       body.Get("job_id").Int(),
		CVID:        body.Get("cv_id").Int(),
		UserID:      optionalID(body.Get("user_id")),
		CoverLetter: body.Get("cover_letter").String(),
	}

	if req.JobID == 0 || req.CVID == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Job ID and CV ID are required")
	}

	log.Printf("📨 Simulated application for job %d with CV %d\n", req.JobID, req.CVID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application sent successfully (simulation)",
		"job_id":  req.JobID,
		"cv_id":   req.CVID,
	})
}
