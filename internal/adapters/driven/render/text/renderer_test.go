package text

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketlist/internal/core/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func sampleState() domain.FormState {
	var state domain.FormState
	state.SetEntry(domain.CategoryWork, 0, "Ship a product")
	state.SetEntry(domain.CategoryWork, 1, "")
	state.SetEntry(domain.CategoryWork, 2, "Learn Japanese")
	return state
}

func sampleDocument() domain.Document {
	return domain.BuildDocument(sampleState(), domain.BlankWhitespace, domain.DefaultTitle, domain.DefaultPlaceholder)
}

const sampleText = "【仕事】\n1. Ship a product\n2. Learn Japanese\n\n" +
	"【家庭】\nなし\n\n" +
	"【教養】\nなし\n\n" +
	"【財産】\nなし\n\n" +
	"【健康】\nなし\n\n" +
	"【趣味】\nなし"

func TestRenderer_Format(t *testing.T) {
	r := New()
	assert.Equal(t, domain.ExportFormatText, r.Format())
}

func TestRenderer_MIMEType(t *testing.T) {
	r := New()

	assert.Equal(t, "text/plain;charset=utf-8", r.MIMEType(domain.ExportOptions{}))
	assert.Equal(t, "text/plain;charset=shift_jis", r.MIMEType(domain.ExportOptions{Encoding: domain.EncodingShiftJIS}))
}

func TestCompose_Example(t *testing.T) {
	assert.Equal(t, sampleText, Compose(sampleDocument(), domain.LineEndingLF))
}

func TestCompose_CRLF(t *testing.T) {
	got := Compose(sampleDocument(), domain.LineEndingCRLF)

	assert.Equal(t, strings.ReplaceAll(sampleText, "\n", "\r\n"), got)
	assert.False(t, strings.HasSuffix(got, "\r\n"))
}

func TestCompose_HeadersInDeclarationOrder(t *testing.T) {
	got := Compose(sampleDocument(), domain.LineEndingLF)

	last := -1
	for _, c := range domain.Categories() {
		idx := strings.Index(got, Header(c.Name))
		require.GreaterOrEqual(t, idx, 0, "missing header for %s", c.ID)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestCompose_EmptyPlaceholderUsesDefault(t *testing.T) {
	doc := sampleDocument()
	doc.Placeholder = ""

	got := Compose(doc, domain.LineEndingLF)

	assert.Contains(t, got, "【家庭】\nなし")
}

func TestCompose_CustomPlaceholder(t *testing.T) {
	doc := domain.BuildDocument(domain.FormState{}, domain.BlankWhitespace, "", "none")

	got := Compose(doc, domain.LineEndingLF)

	assert.Equal(t, 6, strings.Count(got, "\nnone"))
	assert.NotContains(t, got, "なし")
}

func TestRenderer_Render_UTF8HasBOM(t *testing.T) {
	r := New()

	data, err := r.Render(sampleDocument(), domain.ExportOptions{Encoding: domain.EncodingUTF8})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, utf8BOM))
	assert.Equal(t, sampleText, string(data[len(utf8BOM):]))
}

func TestRenderer_Render_DefaultEncodingIsUTF8(t *testing.T) {
	r := New()

	data, err := r.Render(sampleDocument(), domain.ExportOptions{})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, utf8BOM))
}

func TestRenderer_Render_UTF16LE(t *testing.T) {
	r := New()

	data, err := r.Render(sampleDocument(), domain.ExportOptions{Encoding: domain.EncodingUTF16LE})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xFF, 0xFE}))
	// 【 is U+3010.
	assert.Equal(t, []byte{0x10, 0x30}, data[2:4])
}

func TestRenderer_Render_ShiftJIS(t *testing.T) {
	r := New()

	data, err := r.Render(sampleDocument(), domain.ExportOptions{Encoding: domain.EncodingShiftJIS})
	require.NoError(t, err)

	assert.False(t, bytes.HasPrefix(data, utf8BOM))
	// 【 is 0x81 0x79 in Shift_JIS.
	assert.Equal(t, []byte{0x81, 0x79}, data[:2])
}

func TestRenderer_Render_ShiftJISUnencodable(t *testing.T) {
	var state domain.FormState
	state.SetEntry(domain.CategoryHobby, 0, "Climb 🏔")
	doc := domain.BuildDocument(state, domain.BlankWhitespace, "", domain.DefaultPlaceholder)

	_, err := New().Render(doc, domain.ExportOptions{Encoding: domain.EncodingShiftJIS})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEncodingFailed))
}

func TestRenderer_Render_UnknownEncoding(t *testing.T) {
	_, err := New().Render(sampleDocument(), domain.ExportOptions{Encoding: "latin-9"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedEncoding)
}

func TestRenderer_Render_ArbitraryContent(t *testing.T) {
	inputs := []string{
		"【仕事】",
		"1. already numbered",
		"tab\tseparated",
		"  leading and trailing  ",
		strings.Repeat("長", 500),
		"<script>alert(1)</script>",
	}

	var state domain.FormState
	for i, in := range inputs {
		state.SetEntry(domain.CategoryFamily, i, in)
	}
	doc := domain.BuildDocument(state, domain.BlankWhitespace, "", domain.DefaultPlaceholder)

	for _, enc := range domain.AllTextEncodings() {
		t.Run(enc.String(), func(t *testing.T) {
			data, err := New().Render(doc, domain.ExportOptions{Encoding: enc})
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}
