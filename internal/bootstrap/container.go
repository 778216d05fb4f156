package bootstrap

import (
	"log"

	"plagiarism-detection-be/internal/config"
	"plagiarism-detection-be/internal/controller"
	"plagiarism-detection-be/internal/pkg/logger"
	"plagiarism-detection-be/internal/repository/memory"
	"plagiarism-detection-be/internal/service"
	"plagiarism-detection-be/pkg/embedding"
	"plagiarism-detection-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	SimilarityController controller.ISimilarityController
	DocumentController   controller.IDocumentController
	SummarizeController  controller.ISummarizeController
	FaqController        controller.IFaqController
	MetaController       controller.IMetaController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// 4. In-Memory Storage
	documentRepo := memory.NewDocumentRepository()
	embeddingCache := memory.NewEmbeddingCache()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.EmbedTopicName)
	similarityService := service.NewSimilarityService(
		documentRepo,
		embeddingProvider,
		embeddingCache,
		cfg.Engine.PlagiarismThreshold,
		sysLogger,
	)
	documentService := service.NewDocumentService(
		documentRepo,
		embeddingCache,
		publisherService,
		sysLogger,
	)
	summarizeService := service.NewSummarizeService(summarizer.Options{
		MaxLength:         cfg.Engine.SummaryMaxLength,
		MinLength:         cfg.Engine.SummaryMinLength,
		PrimarySentences:  cfg.Engine.SummaryPrimarySentences,
		FallbackSentences: cfg.Engine.SummaryFallbackSentences,
		MinLengthDivisor:  cfg.Engine.SummaryMinLengthDivisor,
		MaxLengthDivisor:  cfg.Engine.SummaryMaxLengthDivisor,
	}, sysLogger)
	faqService := service.NewFaqService()

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopicName,
		documentRepo,
		embeddingCache,
		embeddingProvider,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SimilarityController: controller.NewSimilarityController(similarityService),
		DocumentController:   controller.NewDocumentController(documentService, similarityService),
		SummarizeController:  controller.NewSummarizeController(summarizeService),
		FaqController:        controller.NewFaqController(faqService),
		MetaController:       controller.NewMetaController(cfg),
		ConsumerService:      consumerService,
		Logger:               sysLogger,
	}
}
