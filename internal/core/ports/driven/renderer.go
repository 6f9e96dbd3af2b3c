package driven

import "github.com/custodia-labs/bucketlist/internal/core/domain"

// Renderer transforms an export document into a file body.
// Each renderer handles exactly one export format.
type Renderer interface {
	// Format returns the export format this renderer produces.
	Format() domain.ExportFormat

	// MIMEType returns the content type of the produced bytes.
	MIMEType(opts domain.ExportOptions) string

	// Render produces the file body. It must not panic for any entry text;
	// content that cannot be represented is reported as an error.
	Render(doc domain.Document, opts domain.ExportOptions) ([]byte, error)
}
