package memory

import (
	"sync"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.ExportHistory = (*HistoryStore)(nil)

// HistoryStore keeps the exports of the running session.
type HistoryStore struct {
	mu      sync.RWMutex
	results []domain.ExportResult
}

// NewHistoryStore creates an empty history.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record appends a completed export.
func (s *HistoryStore) Record(result domain.ExportResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

// List returns exports oldest first.
func (s *HistoryStore) List() []domain.ExportResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ExportResult, len(s.results))
	copy(out, s.results)
	return out
}

// Last returns the most recent export, if any.
func (s *HistoryStore) Last() (domain.ExportResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.results) == 0 {
		return domain.ExportResult{}, false
	}
	return s.results[len(s.results)-1], true
}
