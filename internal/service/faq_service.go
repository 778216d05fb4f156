package service

import (
	"context"
	"strings"
	"sync"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/entity"
)

type IFaqService interface {
	List(ctx context.Context, category string) (*dto.ListFaqsResponse, error)
	Add(ctx context.Context, req *dto.AddFaqRequest) (*dto.AddFaqResponse, error)
}

// faqService serves the static research FAQ list. Add mutates it, so reads
// and writes share a lock.
type faqService struct {
	mu   sync.RWMutex
	faqs []entity.FAQ
}

func NewFaqService() IFaqService {
	return &faqService{
		faqs: seedFaqs(),
	}
}

func (s *faqService) List(ctx context.Context, category string) (*dto.ListFaqsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := category != "" && !strings.EqualFold(category, "all")

	faqs := []entity.FAQ{}
	for _, faq := range s.faqs {
		if filtered && !strings.EqualFold(faq.Category, category) {
			continue
		}
		faqs = append(faqs, faq)
	}

	res := &dto.ListFaqsResponse{
		Faqs:       faqs,
		Total:      len(faqs),
		Categories: categoriesOf(faqs),
	}
	if filtered {
		res.Category = category
	}
	return res, nil
}

func (s *faqService) Add(ctx context.Context, req *dto.AddFaqRequest) (*dto.AddFaqResponse, error) {
	category := req.Category
	if category == "" {
		category = "General"
	}
	faq := entity.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: category,
	}

	s.mu.Lock()
	s.faqs = append(s.faqs, faq)
	total := len(s.faqs)
	s.mu.Unlock()

	return &dto.AddFaqResponse{
		Message: "FAQ added successfully",
		Total:   total,
		Faq:     faq,
	}, nil
}

// categoriesOf lists the distinct categories in first-seen order.
func categoriesOf(faqs []entity.FAQ) []string {
	seen := map[string]struct{}{}
	categories := []string{}
	for _, faq := range faqs {
		if _, ok := seen[faq.Category]; ok {
			continue
		}
		seen[faq.Category] = struct{}{}
		categories = append(categories, faq.Category)
	}
	return categories
}

func seedFaqs() []entity.FAQ {
	return []entity.FAQ{
		{
			Question: "What is the research objective?",
			Answer:   "To compare text similarity methods (TF-IDF vs Sentence-BERT) for duplicate document detection across multiple domains.",
			Category: "Research",
		},
		{
			Question: "What datasets were used?",
			Answer:   "Stack Overflow Q&A pairs, Quora duplicate questions, and academic abstract pairs.",
			Category: "Data",
		},
		{
			Question: "What were the key findings?",
			Answer:   "Sentence-BERT achieved 218.3% improvement on Stack Overflow and 155.2% improvement on academic texts compared to TF-IDF.",
			Category: "Results",
		},
		{
			Question: "What is Sentence-BERT?",
			Answer:   "Sentence-BERT (SBERT) is a modification of BERT that uses siamese networks to generate semantically meaningful sentence embeddings.",
			Category: "Technology",
		},
		{
			Question: "What is TF-IDF?",
			Answer:   "Term Frequency-Inverse Document Frequency is a statistical measure for evaluating word importance in documents.",
			Category: "Technology",
		},
		{
			Question: "How does the plagiarism detection work?",
			Answer:   "It uses Sentence-BERT to convert texts into semantic vectors and calculates cosine similarity between them.",
			Category: "System",
		},
		{
			Question: "What similarity threshold indicates plagiarism?",
			Answer:   "Similarity scores above 0.8 (80%) are flagged as potential plagiarism based on research findings.",
			Category: "System",
		},
		{
			Question: "How does text summarization work?",
			Answer:   "The system uses extractive summarization based on sentence importance scoring and TF-IDF.",
			Category: "Features",
		},
	}
}
