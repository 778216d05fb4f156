package memory

import (
	"sync"

	"plagiarism-detection-be/internal/entity"
	"plagiarism-detection-be/internal/repository/contract"

	"github.com/google/uuid"
)

// DocumentRepository keeps uploaded documents in a mutex-guarded map. Requests
// run concurrently, so every read and write takes the lock. An ordered id
// slice keeps listing deterministic.
type DocumentRepository struct {
	mu    sync.RWMutex
	docs  map[uuid.UUID]*entity.Document
	order []uuid.UUID
}

func NewDocumentRepository() contract.IDocumentRepository {
	return &DocumentRepository{
		docs: make(map[uuid.UUID]*entity.Document),
	}
}

func (r *DocumentRepository) Save(doc *entity.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[doc.Id]; !exists {
		r.order = append(r.order, doc.Id)
	}
	r.docs[doc.Id] = doc
}

func (r *DocumentRepository) FindByID(id uuid.UUID) (*entity.Document, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, found := r.docs[id]
	return doc, found
}

func (r *DocumentRepository) FindAll() []*entity.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]*entity.Document, 0, len(r.order))
	for _, id := range r.order {
		docs = append(docs, r.docs[id])
	}
	return docs
}

func (r *DocumentRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.docs[id]; !found {
		return false
	}
	delete(r.docs, id)
	for i, orderedId := range r.order {
		if orderedId == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *DocumentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.docs)
}
