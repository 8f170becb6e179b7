package htmldoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

func extract(t *testing.T, content string) domain.Outcome {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return New().Extract(context.Background(), path)
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, "html", extractor.Name())
	assert.Equal(t, domain.FormatHTML, extractor.Format())
}

func TestExtract_UnclosedTags(t *testing.T) {
	out := extract(t, `<p class="intro">Hola<br>mundo<p>Adiós`)

	require.True(t, out.IsOK())
	// Text after <br> is kept as its own line.
	assert.Equal(t, "Hola\nintro\nmundo\nAdiós", out.Text)
}

func TestExtract_EntitiesDecoded(t *testing.T) {
	out := extract(t, `<div>caf&eacute;&nbsp;con&nbsp;leche</div>`)

	require.True(t, out.IsOK())
	assert.Equal(t, "café\u00a0con\u00a0leche", out.Text)
}

func TestExtract_ScriptAndStyleKept(t *testing.T) {
	out := extract(t, `<html><head><title>Título</title><style>p{color:red}</style>`+
		`<script>var x = 1;</script></head><body><p>texto</p></body></html>`)

	require.True(t, out.IsOK())
	assert.Equal(t, "Título\np{color:red}\nvar x = 1;\ntexto", out.Text)
}

func TestExtract_TextAfterInlineTags(t *testing.T) {
	out := extract(t, `<p>Hola<br>mundo <script>alerta</script>`)

	require.True(t, out.IsOK())
	assert.Equal(t, "Hola\nmundo\nalerta", out.Text)
}

func TestExtract_TailTextBetweenSiblings(t *testing.T) {
	out := extract(t, `<div>uno <b>dos</b> tres <i>cuatro</i> cinco</div>`)

	require.True(t, out.IsOK())
	assert.Equal(t, "uno\ndos\ntres\ncuatro\ncinco", out.Text)
}

func TestExtract_AttributesInOrder(t *testing.T) {
	out := extract(t, `<a href="https://example.com" title="enlace">ver</a>`)

	require.True(t, out.IsOK())
	assert.Equal(t, "ver\nhttps://example.com\nenlace", out.Text)
}

func TestExtract_EmptyDocument(t *testing.T) {
	out := extract(t, "")

	require.True(t, out.IsOK())
	assert.Empty(t, out.Text)
}

func TestExtract_MissingFile(t *testing.T) {
	out := New().Extract(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
	assert.Equal(t, domain.OutcomeFailed, out.Kind)
}
