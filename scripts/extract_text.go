package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/ats-resume-analyzer/internal/config"
	"alfredoptarigan/ats-resume-analyzer/internal/services"
)

// Extracts résumé text from local files, or R2 keys with -r2, and prints it.
// Usage: go run scripts/extract_text.go [-r2] <path-or-key>...
func main() {
	fromR2 := flag.Bool("r2", false, "treat arguments as R2 object keys")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("❌ Usage: extract_text [-r2] <path-or-key>...")
	}

	log.Println("🚀 Starting text extraction...")

	extractor := services.NewDocumentExtractor()
	ctx := context.Background()

	var storage services.StorageService
	if *fromR2 {
		cfg := config.Load()
		if !cfg.R2.Enabled() {
			log.Fatalf("❌ R2 settings are incomplete")
		}

		var err error
		storage, err = services.NewR2StorageService(ctx, cfg.R2.AccountID, cfg.R2.Bucket, cfg.R2.AccessKey, cfg.R2.SecretKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize R2 storage: %v", err)
		}
	}

	successCount := 0
	failCount := 0

	for _, arg := range flag.Args() {
		log.Printf("\n📄 Processing: %s", arg)

		var (
			text string
			err  error
		)
		if storage != nil {
			var data []byte
			data, err = storage.Download(ctx, arg)
			if err == nil {
				text, err = extractor.ExtractText(filepath.Base(arg), data)
			}
		} else {
			text, err = extractor.ExtractFile(arg)
		}

		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		if services.DocumentTypeOf(arg) == services.DocumentTypeUnknown {
			log.Printf("   ⚠️  Unsupported file type, nothing extracted")
		}

		log.Printf("   ✅ Extracted %d characters", len(text))
		fmt.Println(text)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Extraction Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
