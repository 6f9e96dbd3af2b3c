package driven

import "github.com/custodia-labs/bucketlist/internal/core/domain"

// ExportHistory records completed exports for the running session.
// Nothing is persisted across sessions.
type ExportHistory interface {
	// Record appends a completed export.
	Record(result domain.ExportResult)

	// List returns exports oldest first.
	List() []domain.ExportResult

	// Last returns the most recent export, if any.
	Last() (domain.ExportResult, bool)
}
