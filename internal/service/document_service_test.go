package service

import (
	"context"
	"encoding/json"
	"testing"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakePublisher records published payloads.
type fakePublisher struct {
	published [][]byte
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

func TestDocumentUpload(t *testing.T) {
	repo := memory.NewDocumentRepository()
	publisher := &fakePublisher{}
	svc := NewDocumentService(repo, memory.NewEmbeddingCache(), publisher, nopLogger{})

	res, err := svc.Upload(context.Background(), "essay.txt", []byte("héllo wörld"))

	assert.NoError(t, err)
	assert.Equal(t, "essay.txt", res.Filename)
	assert.Equal(t, 11, res.Size) // runes, not bytes
	assert.Equal(t, "Document uploaded successfully", res.Message)
	assert.NotEqual(t, uuid.Nil, res.DocumentId)

	doc, found := repo.FindByID(res.DocumentId)
	assert.True(t, found)
	assert.Equal(t, "héllo wörld", doc.Text)

	// Upload publishes an embed event for the new document
	assert.Len(t, publisher.published, 1)
	var msg dto.PublishEmbedDocumentMessage
	assert.NoError(t, json.Unmarshal(publisher.published[0], &msg))
	assert.Equal(t, res.DocumentId, msg.DocumentId)
}

func TestDocumentUploadRejectsInvalidUtf8(t *testing.T) {
	repo := memory.NewDocumentRepository()
	svc := NewDocumentService(repo, memory.NewEmbeddingCache(), &fakePublisher{}, nopLogger{})

	_, err := svc.Upload(context.Background(), "binary.txt", []byte{0xff, 0xfe, 0x00, 0x01})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Uploaded file must be UTF-8 encoded text", appErr.Message)
	assert.Equal(t, 0, repo.Count())
}

func TestDocumentUploadSurvivesPublishFailure(t *testing.T) {
	repo := memory.NewDocumentRepository()
	svc := NewDocumentService(repo, memory.NewEmbeddingCache(), &fakePublisher{err: assert.AnError}, nopLogger{})

	res, err := svc.Upload(context.Background(), "essay.txt", []byte("some content"))

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
	assert.Equal(t, "Document uploaded successfully", res.Message)
}

func TestDocumentList(t *testing.T) {
	repo := memory.NewDocumentRepository()
	svc := NewDocumentService(repo, memory.NewEmbeddingCache(), &fakePublisher{}, nopLogger{})

	first, _ := svc.Upload(context.Background(), "a.txt", []byte("first"))
	second, _ := svc.Upload(context.Background(), "b.txt", []byte("second"))

	res, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
	assert.Len(t, res.Documents, 2)
	assert.Equal(t, first.DocumentId, res.Documents[0].DocumentId)
	assert.Equal(t, second.DocumentId, res.Documents[1].DocumentId)
	assert.Equal(t, "a.txt", res.Documents[0].Filename)
	assert.Equal(t, 5, res.Documents[0].Size)
}

func TestDocumentListEmpty(t *testing.T) {
	svc := NewDocumentService(memory.NewDocumentRepository(), memory.NewEmbeddingCache(), &fakePublisher{}, nopLogger{})

	res, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, res.TotalCount)
	assert.NotNil(t, res.Documents)
	assert.Empty(t, res.Documents)
}

func TestDocumentDelete(t *testing.T) {
	repo := memory.NewDocumentRepository()
	cache := memory.NewEmbeddingCache()
	svc := NewDocumentService(repo, cache, &fakePublisher{}, nopLogger{})

	uploaded, _ := svc.Upload(context.Background(), "a.txt", []byte("content"))
	cache.Set(uploaded.DocumentId, []float32{1, 0})

	res, err := svc.Delete(context.Background(), uploaded.DocumentId)

	assert.NoError(t, err)
	assert.Equal(t, "Document deleted successfully", res.Message)
	assert.Equal(t, 0, repo.Count())

	// Cached embedding goes with the document
	_, found := cache.Get(uploaded.DocumentId)
	assert.False(t, found)
}

func TestDocumentDeleteUnknown(t *testing.T) {
	svc := NewDocumentService(memory.NewDocumentRepository(), memory.NewEmbeddingCache(), &fakePublisher{}, nopLogger{})

	_, err := svc.Delete(context.Background(), uuid.New())

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Document not found", appErr.Message)
}
