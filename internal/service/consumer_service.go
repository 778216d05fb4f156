package service

import (
	"context"
	"encoding/json"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/logger"
	"plagiarism-detection-be/internal/repository/contract"
	"plagiarism-detection-be/internal/repository/memory"
	"plagiarism-detection-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService warms the embedding cache for freshly uploaded documents so
// the first batch check does not pay the full embedding cost.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	documentRepo      contract.IDocumentRepository
	embeddingCache    *memory.EmbeddingCache
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	documentRepo contract.IDocumentRepository,
	embeddingCache *memory.EmbeddingCache,
	embeddingProvider embedding.EmbeddingProvider,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		documentRepo:      documentRepo,
		embeddingCache:    embeddingCache,
		embeddingProvider: embeddingProvider,
		logger:            sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishEmbedDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal embed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	doc, found := cs.documentRepo.FindByID(payload.DocumentId)
	if !found {
		// Deleted before we got to it
		msg.Ack()
		return
	}

	if _, cached := cs.embeddingCache.Get(doc.Id); cached {
		msg.Ack()
		return
	}

	res, err := cs.embeddingProvider.Generate(doc.Text, embedTaskType)
	if err != nil {
		// Warming is best effort; the batch check re-embeds on cache miss
		cs.logger.Warn("consumer", "failed to warm embedding cache", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
		msg.Ack()
		return
	}

	cs.embeddingCache.Set(doc.Id, res.Embedding.Values)
	cs.logger.Info("consumer", "embedding cache warmed", map[string]interface{}{
		"document_id": doc.Id,
		"dimensions":  len(res.Embedding.Values),
	})
	msg.Ack()
}
