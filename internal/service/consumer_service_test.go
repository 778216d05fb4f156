package service

import (
	"context"
	"testing"
	"time"

	"plagiarism-detection-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

const testEmbedTopic = "document.embed"

func TestConsumerWarmsEmbeddingCache(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	repo := memory.NewDocumentRepository()
	cache := memory.NewEmbeddingCache()
	provider := &fakeProvider{vectors: map[string][]float32{
		"uploaded text": {0.6, 0.8},
	}}

	consumer := NewConsumerService(pubSub, testEmbedTopic, repo, cache, provider, nopLogger{})
	assert.NoError(t, consumer.Consume(context.Background()))

	docId := storeDocument(repo, "upload.txt", "uploaded text")

	publisher := NewPublisherService(pubSub, testEmbedTopic)
	assert.NoError(t, publisher.Publish(context.Background(), []byte(`{"document_id":"`+docId.String()+`"}`)))

	assert.Eventually(t, func() bool {
		values, found := cache.Get(docId)
		return found && len(values) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConsumerIgnoresMalformedMessages(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	repo := memory.NewDocumentRepository()
	cache := memory.NewEmbeddingCache()
	provider := &fakeProvider{vectors: map[string][]float32{
		"valid text": {1, 0},
	}}

	consumer := NewConsumerService(pubSub, testEmbedTopic, repo, cache, provider, nopLogger{})
	assert.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService(pubSub, testEmbedTopic)
	assert.NoError(t, publisher.Publish(context.Background(), []byte(`not json`)))

	// A valid message after the bad one still gets processed
	docId := storeDocument(repo, "valid.txt", "valid text")
	assert.NoError(t, publisher.Publish(context.Background(), []byte(`{"document_id":"`+docId.String()+`"}`)))

	assert.Eventually(t, func() bool {
		_, found := cache.Get(docId)
		return found
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConsumerSkipsDeletedDocuments(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	repo := memory.NewDocumentRepository()
	cache := memory.NewEmbeddingCache()
	provider := &fakeProvider{vectors: map[string][]float32{}}

	consumer := NewConsumerService(pubSub, testEmbedTopic, repo, cache, provider, nopLogger{})
	assert.NoError(t, consumer.Consume(context.Background()))

	docId := storeDocument(repo, "gone.txt", "short lived")
	repo.Delete(docId)

	publisher := NewPublisherService(pubSub, testEmbedTopic)
	assert.NoError(t, publisher.Publish(context.Background(), []byte(`{"document_id":"`+docId.String()+`"}`)))

	assert.Never(t, func() bool {
		_, found := cache.Get(docId)
		return found
	}, 200*time.Millisecond, 20*time.Millisecond)
}
