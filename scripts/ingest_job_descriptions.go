package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/cv-matcher/internal/config"
	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

func main() {
	dir := flag.String("dir", "./reference_docs", "directory holding .txt, .pdf or .docx job descriptions")
	userID := flag.Int64("user-id", 0, "owner of the imported job descriptions (0 for none)")
	flag.Parse()

	log.Println("🚀 Starting job description ingestion...")

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jdRepo := repositories.NewJobDescriptionRepository(db)
	extractor := services.NewTextExtractor()

	var owner *int64
	if *userID > 0 {
		owner = userID
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", *dir, err)
	}

	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(*dir, entry.Name())
		ext := services.NormalizeExt(filepath.Ext(entry.Name()))

		var content string
		switch ext {
		case "txt":
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("   ❌ Failed to read %s: %v", path, err)
				failCount++
				continue
			}
			content = string(data)
		case "pdf", "docx":
			content = extractor.ExtractText(path, ext)
		default:
			continue
		}

		log.Printf("\n📄 Processing: %s", entry.Name())

		if strings.TrimSpace(content) == "" {
			log.Printf("   ⚠️  No text extracted, skipping...")
			failCount++
			continue
		}

		id, err := jdRepo.Create(&models.JobDescription{
			UserID:  owner,
			Title:   titleFromFileName(entry.Name()),
			Content: content,
		})
		if err != nil {
			log.Printf("   ❌ Failed to store job description: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Stored as job description %d (%d characters)", id, len(content))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some documents failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All job descriptions ingested successfully!")
}

// titleFromFileName turns "Backend_Engineer.pdf" into "Backend Engineer".
func titleFromFileName(name string) string {
	title := strings.TrimSuffix(name, filepath.Ext(name))
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	return strings.Join(strings.Fields(title), " ")
}
