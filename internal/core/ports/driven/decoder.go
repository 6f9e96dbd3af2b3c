package driven

import "github.com/custodia-labs/bucketlist/internal/core/domain"

// FormDecoder reads a previously exported document back into a form.
type FormDecoder interface {
	// Decode parses data. A byte order mark in data overrides enc.
	// Content that is not a valid export returns domain.ErrInvalidInput.
	Decode(data []byte, enc domain.TextEncoding, placeholder string) (domain.FormState, error)
}
