package pdf

import (
	"strings"

	"github.com/custodia-labs/bucketlist/internal/adapters/driven/render/text"
	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

// LineKind selects the style a placed line is drawn with.
type LineKind int

// Line kinds.
const (
	LineTitle LineKind = iota
	LineHeader
	LineItem
)

// Line is one line of text at its final position. Y is the top of the
// line in millimetres from the top edge of the page.
type Line struct {
	Page   int
	Y      float64
	Indent float64
	Kind   LineKind
	Text   string
}

// Layout describes the page geometry, in millimetres.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	LineHeight float64
	TitleGap   float64
	SectionGap float64
	ItemIndent float64
}

// A4 returns the layout of an A4 portrait page with 20 mm margins.
func A4() Layout {
	return Layout{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     20,
		LineHeight: 8,
		TitleGap:   6,
		SectionGap: 4,
		ItemIndent: 5,
	}
}

// ContentWidth returns the width between the side margins.
func (l Layout) ContentWidth() float64 {
	return l.PageWidth - 2*l.Margin
}

// Bottom returns the lowest y a line may end at.
func (l Layout) Bottom() float64 {
	return l.PageHeight - l.Margin
}

// Place positions every line of the document. A new page starts whenever
// the next line would cross the bottom margin. Item lines wider than the
// content area are wrapped using measure, which returns the drawn width of
// a string in millimetres, with a hanging indent after the item number.
func (l Layout) Place(doc domain.Document, measure func(string) float64) []Line {
	c := cursor{layout: l, page: 1, y: l.Margin}

	if doc.Title != "" {
		c.put(LineTitle, 0, doc.Title)
		c.y += l.TitleGap
	}

	placeholder := doc.Placeholder
	if placeholder == "" {
		placeholder = domain.DefaultPlaceholder
	}

	itemWidth := l.ContentWidth() - l.ItemIndent
	for i, s := range doc.Sections {
		if i > 0 {
			c.y += l.SectionGap
		}
		c.put(LineHeader, 0, text.Header(s.Category.Name))

		if s.Empty() {
			c.put(LineItem, l.ItemIndent, placeholder)
			continue
		}
		for _, item := range s.Items {
			// Continuation lines hang under the item text, clear of the number.
			prefix := text.ItemLine(domain.Item{Number: item.Number})
			hang := measure(prefix)
			for j, part := range wrap(item.Text, itemWidth-hang, measure) {
				if j == 0 {
					c.put(LineItem, l.ItemIndent, prefix+part)
					continue
				}
				c.put(LineItem, l.ItemIndent+hang, part)
			}
		}
	}

	return c.lines
}

type cursor struct {
	layout Layout
	page   int
	y      float64
	lines  []Line
}

func (c *cursor) put(kind LineKind, indent float64, s string) {
	if c.y+c.layout.LineHeight > c.layout.Bottom() {
		c.page++
		c.y = c.layout.Margin
	}
	c.lines = append(c.lines, Line{Page: c.page, Y: c.y, Indent: indent, Kind: kind, Text: s})
	c.y += c.layout.LineHeight
}

// wrap breaks s into lines no wider than width. It prefers breaking after
// a space and falls back to breaking between any two runes, which is how
// text without spaces (Japanese) wraps. Every line holds at least one rune.
func wrap(s string, width float64, measure func(string) float64) []string {
	if width <= 0 || measure(s) <= width {
		return []string{s}
	}

	var lines []string
	runes := []rune(s)
	for len(runes) > 0 {
		n := 1
		for n < len(runes) && measure(string(runes[:n+1])) <= width {
			n++
		}
		if n < len(runes) {
			if sp := lastSpace(runes[:n]); sp > 0 {
				n = sp + 1
			}
		}

		lines = append(lines, strings.TrimRight(string(runes[:n]), " "))
		runes = runes[n:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}

	return lines
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
