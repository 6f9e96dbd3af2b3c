package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCategory indicates a category identifier outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")

	// Export Errors.

	// ErrUnsupportedFormat indicates an export format with no renderer.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrUnsupportedEncoding indicates a text encoding that cannot be produced.
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")

	// ErrEncodingFailed indicates content could not be represented in the chosen encoding.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrRenderFailed indicates a renderer could not produce a document.
	ErrRenderFailed = errors.New("render failed")

	// ErrSaveFailed indicates the rendered document could not be written.
	ErrSaveFailed = errors.New("save failed")

	// ErrExportThrottled indicates an export was requested too soon after the previous one.
	ErrExportThrottled = errors.New("export throttled")
)
