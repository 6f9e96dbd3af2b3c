package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driving"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// Ensure FormService implements the interface.
var _ driving.FormService = (*FormService)(nil)

// FormService holds the entries of the list being edited.
// Edits come from the UI loop; snapshots may be read from export commands.
type FormService struct {
	mu      sync.RWMutex
	state   *domain.FormState
	decoder driven.FormDecoder
}

// NewFormService creates a form service with every entry empty.
// The decoder may be nil, in which case Import is unavailable.
func NewFormService(decoder driven.FormDecoder) *FormService {
	return &FormService{
		state:   domain.NewFormState(),
		decoder: decoder,
	}
}

// SetEntry replaces one entry.
func (s *FormService) SetEntry(id domain.CategoryID, index int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetEntry(id, index, value)
}

// Entry returns one entry.
func (s *FormService) Entry(id domain.CategoryID, index int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Entry(id, index)
}

// Snapshot returns an independent copy of every entry.
func (s *FormService) Snapshot() domain.FormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Snapshot()
}

// Load replaces every entry with the snapshot's.
func (s *FormService) Load(state domain.FormState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.state = state
}

// Clear empties every entry.
func (s *FormService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Clear()
}

// Import replaces every entry with the content of a text export.
func (s *FormService) Import(data []byte, enc domain.TextEncoding, placeholder string) error {
	if s.decoder == nil {
		return fmt.Errorf("%w: import not configured", domain.ErrUnsupportedFormat)
	}

	state, err := s.decoder.Decode(data, enc, placeholder)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	s.Load(state)
	logger.Debug("form imported", "bytes", len(data), "entries", state.FilledCount(domain.BlankEmpty))
	return nil
}
