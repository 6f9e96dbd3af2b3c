package driven

import "context"

// FileSaver persists a rendered export.
// Implementations must not leave a partial file behind when Save fails.
type FileSaver interface {
	// Save writes data into dir under name and returns the final path.
	// The final name may differ from the suggestion to avoid overwriting.
	Save(ctx context.Context, dir, name string, data []byte) (string, error)
}
