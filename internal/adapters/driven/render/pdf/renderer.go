// Package pdf renders exports as paginated A4 PDF documents using fpdf.
//
// Japanese text needs an embedded TrueType font. The renderer uses the
// configured font when there is one, then the first readable font from a
// list of well-known system locations, and finally the core Helvetica
// font, which cannot show CJK characters and substitutes them.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// MIMEType is the media type of PDF exports.
const MIMEType = "application/pdf"

// Font sizes in points.
const (
	titleSize  = 18
	headerSize = 14
	itemSize   = 11
)

const embeddedFamily = "bucketlist"

// DefaultFontCandidates are TrueType fonts with Japanese coverage that are
// commonly installed. TrueType collections (.ttc) are not supported by fpdf.
var DefaultFontCandidates = []string{
	"/usr/share/fonts/truetype/fonts-japanese-gothic.ttf",
	"/usr/share/fonts/opentype/ipaexfont-gothic/ipaexg.ttf",
	"/usr/share/fonts/truetype/takao-gothic/TakaoGothic.ttf",
	"/usr/share/fonts/ipa-gothic/ipag.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
}

// Renderer produces PDF exports.
type Renderer struct {
	layout     Layout
	candidates []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout replaces the A4 page geometry.
func WithLayout(l Layout) Option {
	return func(r *Renderer) {
		r.layout = l
	}
}

// WithFontCandidates replaces the system font locations probed when no
// font is configured. No candidates means the core font is always used.
func WithFontCandidates(paths ...string) Option {
	return func(r *Renderer) {
		r.candidates = paths
	}
}

// New creates a new PDF renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		layout:     A4(),
		candidates: DefaultFontCandidates,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format returns domain.ExportFormatPDF.
func (r *Renderer) Format() domain.ExportFormat {
	return domain.ExportFormatPDF
}

// MIMEType returns application/pdf.
func (r *Renderer) MIMEType(_ domain.ExportOptions) string {
	return MIMEType
}

// Render lays out the document and writes it as PDF.
func (r *Renderer) Render(doc domain.Document, opts domain.ExportOptions) ([]byte, error) {
	l := r.layout

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(l.Margin, l.Margin, l.Margin)
	pdf.SetAutoPageBreak(false, l.Margin)
	pdf.SetCellMargin(0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("bucketlist", true)

	f, err := r.loadFace(pdf, opts.FontPath)
	if err != nil {
		return nil, err
	}

	f.use(pdf, LineItem)
	lines := l.Place(doc, func(s string) float64 {
		return pdf.GetStringWidth(f.encode(s))
	})

	page := 0
	for _, ln := range lines {
		for page < ln.Page {
			pdf.AddPage()
			page++
		}

		align := "L"
		if ln.Kind == LineTitle {
			align = "C"
		}

		f.use(pdf, ln.Kind)
		pdf.SetXY(l.Margin+ln.Indent, ln.Y)
		pdf.CellFormat(l.ContentWidth()-ln.Indent, l.LineHeight, f.encode(ln.Text), "", 0, align, false, 0, "")
	}
	if page == 0 {
		pdf.AddPage()
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	logger.Debug("pdf rendered", "pages", pdf.PageCount(), "lines", len(lines), "font", f.source)
	return buf.Bytes(), nil
}

// face is the font every line is drawn with.
type face struct {
	family string
	utf8   bool
	source string
	encode func(string) string
}

func (f face) use(pdf *fpdf.Fpdf, kind LineKind) {
	style := ""
	if !f.utf8 && kind != LineItem {
		style = "B"
	}

	switch kind {
	case LineTitle:
		pdf.SetFont(f.family, style, titleSize)
	case LineHeader:
		pdf.SetFont(f.family, style, headerSize)
	default:
		pdf.SetFont(f.family, style, itemSize)
	}
}

// loadFace registers the configured font, or the first usable candidate.
// A configured font that cannot be used is an error.
func (r *Renderer) loadFace(pdf *fpdf.Fpdf, configured string) (face, error) {
	if configured != "" {
		f, err := registerFont(pdf, configured)
		if err != nil {
			return face{}, fmt.Errorf("%w: font %s: %v", domain.ErrRenderFailed, configured, err)
		}
		return f, nil
	}

	for _, path := range r.candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := registerFont(pdf, path)
		if err != nil {
			logger.Debug("skipping font", "path", path, "error", err)
			pdf.ClearError()
			continue
		}
		return f, nil
	}

	logger.Warn("no Japanese font found, falling back to Helvetica")
	return face{
		family: "Helvetica",
		source: "core",
		encode: pdf.UnicodeTranslatorFromDescriptor(""),
	}, nil
}

func registerFont(pdf *fpdf.Fpdf, path string) (f face, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return face{}, err
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("parse font: %v", p)
		}
	}()

	if !isTrueType(data) {
		return face{}, errors.New("not a TrueType font")
	}

	pdf.AddUTF8FontFromBytes(embeddedFamily, "", data)
	pdf.SetFont(embeddedFamily, "", itemSize)
	if pdf.Err() {
		return face{}, pdf.Error()
	}

	return face{
		family: embeddedFamily,
		utf8:   true,
		source: path,
		encode: basicPlane,
	}, nil
}

// isTrueType checks the sfnt version tag of a font file.
func isTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	tag := string(data[:4])
	return tag == "\x00\x01\x00\x00" || tag == "true"
}

// basicPlane replaces characters outside the Basic Multilingual Plane,
// which embedded fonts do not map, and drops control characters.
func basicPlane(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r > 0xFFFF:
			return '?'
		case r < 0x20 || r == 0x7F:
			return -1
		default:
			return r
		}
	}, s)
}
