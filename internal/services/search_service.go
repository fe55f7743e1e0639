// Package services – SearchService
//
// This file implements SearchService, free-text lookup over medications
// and their descriptions (name, route, side effects, pill imprint, colour
// and so on). The index is rebuilt from the joined view on every query;
// the catalog is small and this keeps results consistent with the store
// without any invalidation.
package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-medtrack-backend/internal/domain"
	"github.com/tbourn/go-medtrack-backend/internal/search"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SearchHit is one ranked search result.
type SearchHit struct {
	domain.MedicationWithDescription
	Score float64 `json:"score"`
}

// SearchService ranks medications against a free-text query.
type SearchService struct {
	DB   *gorm.DB
	Repo MedicationRepo

	// MaxQueryRunes rejects longer queries; 0 disables the check.
	MaxQueryRunes int
	// MaxResults caps the limit a caller may request.
	MaxResults int
	// Options are passed to search.NewIndex.
	Options []search.Option

	mu *sync.RWMutex
}

// NewSearchService constructs a SearchService with default limits.
func NewSearchService(db *gorm.DB, r MedicationRepo, mu *sync.RWMutex) *SearchService {
	return &SearchService{
		DB:            db,
		Repo:          r,
		MaxQueryRunes: 200,
		MaxResults:    50,
		mu:            orNew(mu),
	}
}

// Search returns up to limit medications matching query, best first.
// limit <= 0 means 10.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.Int("query.runes", utf8.RuneCountInString(query)),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if s.MaxQueryRunes > 0 && utf8.RuneCountInString(query) > s.MaxQueryRunes {
		return nil, ErrQueryTooLong
	}
	if limit <= 0 {
		limit = 10
	}
	if s.MaxResults > 0 && limit > s.MaxResults {
		limit = s.MaxResults
	}

	s.mu.RLock()
	items, err := s.Repo.ListMedicationsWithDescriptions(ctx, s.DB)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.MedicationWithDescription, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	idx := search.NewIndex(search.MedicationDocuments(items), s.Options...)
	results := idx.TopK(query, limit)

	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		if it, ok := byID[r.ID]; ok {
			hits = append(hits, SearchHit{MedicationWithDescription: it, Score: r.Score})
		}
	}
	span.SetAttributes(attribute.Int("result.count", len(hits)))
	return hits, nil
}
