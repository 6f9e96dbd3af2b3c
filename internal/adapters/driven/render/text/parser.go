package text

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
)

var itemPattern = regexp.MustCompile(`^(\d+)\. (.*)$`)

// Parse reads a text export back into a form. A byte order mark, when
// present, overrides enc. Items fill positions from 0 in file order; the
// placeholder line marks a category with no items.
func Parse(data []byte, enc domain.TextEncoding, placeholder string) (domain.FormState, error) {
	var state domain.FormState

	fallback, err := lookupEncoding(enc)
	if err != nil {
		return state, err
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(fallback.NewDecoder()), data)
	if err != nil {
		return state, fmt.Errorf("%w: decoding %s: %v", domain.ErrInvalidInput, enc, err)
	}

	if placeholder == "" {
		placeholder = domain.DefaultPlaceholder
	}

	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	seen := make(map[domain.CategoryID]bool)

	var current domain.CategoryID
	next := 0
	for n, line := range strings.Split(text, "\n") {
		lineNo := n + 1

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, headerOpen) && strings.HasSuffix(line, headerClose):
			name := strings.TrimSuffix(strings.TrimPrefix(line, headerOpen), headerClose)
			c, ok := domain.LookupCategoryByName(name)
			if !ok {
				return state, fmt.Errorf("%w: line %d: %w %q", domain.ErrInvalidInput, lineNo, domain.ErrUnknownCategory, name)
			}
			if seen[c.ID] {
				return state, fmt.Errorf("%w: line %d: category %q repeated", domain.ErrInvalidInput, lineNo, name)
			}
			seen[c.ID] = true
			current = c.ID
			next = 0

		case current == "":
			return state, fmt.Errorf("%w: line %d: content before first category header", domain.ErrInvalidInput, lineNo)

		case line == placeholder && next == 0:
			continue

		default:
			m := itemPattern.FindStringSubmatch(line)
			if m == nil {
				return state, fmt.Errorf("%w: line %d: not a numbered item: %q", domain.ErrInvalidInput, lineNo, line)
			}
			if next >= domain.ItemsPerCategory {
				return state, fmt.Errorf("%w: line %d: more than %d items in %q",
					domain.ErrInvalidInput, lineNo, domain.ItemsPerCategory, current)
			}
			state.SetEntry(current, next, m[2])
			next++
		}
	}

	return state, nil
}

// Ensure Decoder implements the interface.
var _ driven.FormDecoder = (*Decoder)(nil)

// Decoder adapts Parse to driven.FormDecoder.
type Decoder struct{}

// NewDecoder creates a new text decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses a text export.
func (d *Decoder) Decode(data []byte, enc domain.TextEncoding, placeholder string) (domain.FormState, error) {
	return Parse(data, enc, placeholder)
}
