// Package text renders exports as plain text and parses them back.
//
// A document renders as one block per category:
//
//	【仕事】
//	1. Ship a product
//	2. Learn Japanese
//
//	【家庭】
//	なし
//
// Blocks are separated by a blank line and there is no trailing newline.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Header brackets around a category name.
const (
	headerOpen  = "【"
	headerClose = "】"
)

// Renderer produces text exports.
type Renderer struct{}

// New creates a new text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format returns domain.ExportFormatText.
func (r *Renderer) Format() domain.ExportFormat {
	return domain.ExportFormatText
}

// MIMEType returns text/plain with the charset of the configured encoding.
func (r *Renderer) MIMEType(opts domain.ExportOptions) string {
	charset := opts.Encoding.String()
	if charset == "" {
		charset = domain.EncodingUTF8.String()
	}
	return "text/plain;charset=" + charset
}

// Render composes the document and encodes it.
func (r *Renderer) Render(doc domain.Document, opts domain.ExportOptions) ([]byte, error) {
	return Encode(Compose(doc, opts.LineEnding), opts.Encoding)
}

// Header returns the header line of a category block.
func Header(name string) string {
	return headerOpen + name + headerClose
}

// ItemLine returns the line of one numbered item.
func ItemLine(item domain.Item) string {
	return strconv.Itoa(item.Number) + ". " + item.Text
}

// Compose lays out the document as text, before encoding.
func Compose(doc domain.Document, eol domain.LineEnding) string {
	nl := eol.Separator()
	placeholder := doc.Placeholder
	if placeholder == "" {
		placeholder = domain.DefaultPlaceholder
	}

	blocks := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		var b strings.Builder
		b.WriteString(Header(s.Category.Name))
		if s.Empty() {
			b.WriteString(nl)
			b.WriteString(placeholder)
		}
		for _, item := range s.Items {
			b.WriteString(nl)
			b.WriteString(ItemLine(item))
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, nl+nl)
}

// Encode converts composed text to bytes in the given encoding.
// UTF-8 and UTF-16 output start with a byte order mark.
func Encode(body string, enc domain.TextEncoding) ([]byte, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}

	out, err := e.NewEncoder().Bytes([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrEncodingFailed, enc, err)
	}
	return out, nil
}

func lookupEncoding(enc domain.TextEncoding) (encoding.Encoding, error) {
	switch enc {
	case "", domain.EncodingUTF8:
		return unicode.UTF8BOM, nil
	case domain.EncodingShiftJIS:
		return japanese.ShiftJIS, nil
	case domain.EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, enc)
	}
}
