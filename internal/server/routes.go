package server

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-matcher/internal/config"
	"alfredoptarigan/cv-matcher/internal/handlers"
)

func registerRoutes(app *fiber.App, cfg *config.Config, deps Dependencies) {
	uploadHandler := handlers.NewUploadHandler(
		deps.CVRepo,
		deps.Storage,
		deps.Extractor,
		cfg.Storage.AllowedExtensions,
	)
	jobDescriptionHandler := handlers.NewJobDescriptionHandler(deps.JobDescriptionRepo)
	analyzeHandler := handlers.NewAnalyzeHandler(
		deps.CVRepo,
		deps.JobDescriptionRepo,
		deps.AnalysisRepo,
		deps.Analyzer,
	)
	resultHandler := handlers.NewResultHandler(deps.AnalysisRepo, cfg.Storage.ExportPath)
	authHandler := handlers.NewAuthHandler(deps.UserRepo)
	jobHandler := handlers.NewJobHandler()

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": cfg.Server.Version,
		})
	})

	api.Post("/upload-cv", uploadHandler.HandleUpload)
	api.Get("/user-cvs", uploadHandler.HandleListUserCVs)

	api.Post("/job-description", jobDescriptionHandler.HandleCreate)
	api.Get("/user-job-descriptions", jobDescriptionHandler.HandleListByUser)

	if limit := rateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window); limit != nil {
		api.Post("/analyze", limit, analyzeHandler.HandleAnalyze)
	} else {
		api.Post("/analyze", analyzeHandler.HandleAnalyze)
	}

	api.Get("/analysis-history", resultHandler.HandleHistory)
	api.Get("/analysis-result/:id<int>", resultHandler.HandleGetResult)
	api.Get("/export-cv/:id<int>", resultHandler.HandleExport)

	api.Post("/register", authHandler.HandleRegister)
	api.Post("/login", authHandler.HandleLogin)

	api.Get("/job-search", jobHandler.HandleJobSearch)
	api.Post("/send-application", jobHandler.HandleSendApplication)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Matcher API",
			"version": cfg.Server.Version,
			"endpoints": []string{
				"GET /api/health",
				"POST /api/upload-cv",
				"POST /api/job-description",
				"POST /api/analyze",
				"GET /api/analysis-history",
				"GET /api/analysis-result/:id",
				"POST /api/register",
				"POST /api/login",
				"GET /api/job-search",
				"POST /api/send-application",
				"GET /api/export-cv/:id",
				"GET /api/user-cvs",
				"GET /api/user-job-descriptions",
			},
		})
	})
}
