package spreadsheet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

func buildWorkbook(t *testing.T, sheets map[string][][]any, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, value))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.Equal(t, "spreadsheet", extractor.Name())
	assert.Equal(t, domain.FormatSpreadsheet, extractor.Format())
}

func TestExtract_SingleSheet(t *testing.T) {
	path := buildWorkbook(t, map[string][][]any{
		"Datos": {
			{"nombre", "ciudad"},
			{"Ana", "Sevilla"},
			{"Luis", "Bilbao"},
		},
	}, []string{"Datos"})

	out := New().Extract(context.Background(), path)

	require.True(t, out.IsOK(), "reason: %v", out.Reason)
	assert.Equal(t, "nombre ciudad\nAna Sevilla\nLuis Bilbao", out.Text)
}

func TestExtract_SheetsInWorkbookOrder(t *testing.T) {
	path := buildWorkbook(t, map[string][][]any{
		"Primera": {{"uno"}},
		"Segunda": {{"dos"}, {"tres"}},
	}, []string{"Primera", "Segunda"})

	out := New().Extract(context.Background(), path)

	require.True(t, out.IsOK(), "reason: %v", out.Reason)
	assert.Equal(t, "uno\ndos\ntres", out.Text)
}

func TestExtract_NumbersRendered(t *testing.T) {
	path := buildWorkbook(t, map[string][][]any{
		"Hoja": {{"total", 42}},
	}, []string{"Hoja"})

	out := New().Extract(context.Background(), path)

	require.True(t, out.IsOK(), "reason: %v", out.Reason)
	assert.Equal(t, "total 42", out.Text)
}

func TestExtract_LegacyWorkbookNotApplicable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.xls")
	content := append(append([]byte{}, oleSignature...), make([]byte, 64)...)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	out := New().Extract(context.Background(), path)

	assert.Equal(t, domain.OutcomeNotApplicable, out.Kind)
}

func TestExtract_CorruptWorkbookFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3"), 0o600))

	out := New().Extract(context.Background(), path)

	assert.Equal(t, domain.OutcomeFailed, out.Kind)
	assert.ErrorIs(t, out.Reason, domain.ErrExtractorFailed)
}

func TestExtract_MissingFile(t *testing.T) {
	out := New().Extract(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Equal(t, domain.OutcomeFailed, out.Kind)
}

func TestRenderRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected string
	}{
		{"empty", nil, ""},
		{"one row", [][]string{{"a", "b"}}, "a b"},
		{"gap cell kept", [][]string{{"a", "", "c"}}, "a  c"},
		{"empty row kept", [][]string{{"a"}, {}, {"b"}}, "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderRows(tt.rows))
		})
	}
}
