package driving

import (
	"context"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

// ExportService turns a form snapshot into a saved document.
type ExportService interface {
	// Export renders and saves the snapshot. On failure nothing is saved.
	Export(
		ctx context.Context, state domain.FormState, opts domain.ExportOptions,
	) (*domain.ExportResult, error)

	// Preview renders the snapshot without saving it.
	Preview(state domain.FormState, opts domain.ExportOptions) ([]byte, error)

	// History returns the exports made during this session, oldest first.
	History() []domain.ExportResult
}
