package main

import (
	"context"
	"log"

	"plagiarism-detection-be/internal/bootstrap"
	"plagiarism-detection-be/internal/config"
	"plagiarism-detection-be/internal/server"
	"plagiarism-detection-be/internal/tracer"

	"github.com/fatih/color"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Embedding Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	color.Cyan("🎯 Plagiarism Detection System")
	color.Green("📊 Features: Plagiarism Detection, Text Summarization, Research FAQs")
	color.Green("❤️  Health Check: http://localhost:%s/health", cfg.App.Port)

	// 5. Run Server
	log.Fatal(srv.Run())
}
