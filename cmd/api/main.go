package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/cv-matcher/internal/config"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/server"
	"alfredoptarigan/cv-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	cvRepo := repositories.NewCVRepository(db)
	jdRepo := repositories.NewJobDescriptionRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	var mirror services.FileMirror
	if cfg.Mirror.Enabled() {
		s3Mirror, err := services.NewS3Mirror(context.Background(), cfg.Mirror)
		if err != nil {
			log.Fatalf("❌ Failed to initialize upload mirror: %v", err)
		}
		mirror = s3Mirror
		log.Printf("✅ Uploads mirrored to bucket %s\n", cfg.Mirror.Bucket)
	}

	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.AllowedExtensions, mirror)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	if err := os.MkdirAll(cfg.Storage.ExportPath, 0755); err != nil {
		log.Fatalf("❌ Failed to create export directory: %v", err)
	}

	// Initialize the language model
	generator, err := services.NewTextGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s: %v", cfg.LLM.Provider, err)
	}
	log.Printf("✅ %s text generator initialized\n", cfg.LLM.Provider)

	app := server.New(cfg, server.Dependencies{
		UserRepo:           userRepo,
		CVRepo:             cvRepo,
		JobDescriptionRepo: jdRepo,
		AnalysisRepo:       analysisRepo,
		Storage:            storageService,
		Extractor:          services.NewTextExtractor(),
		Analyzer:           services.NewAnalyzerService(generator),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
