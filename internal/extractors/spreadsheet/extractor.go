// Package spreadsheet provides an Extractor for Excel workbooks.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/tecy/internal/core/domain"
	"github.com/custodia-labs/tecy/internal/core/ports/driven"
	"github.com/custodia-labs/tecy/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// oleSignature marks a legacy compound-file workbook (.xls).
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// CellSeparator separates the cells of a rendered row.
const CellSeparator = " "

// Extractor renders every sheet of a workbook as text.
type Extractor struct{}

// New creates a new spreadsheet extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "spreadsheet"
}

// Format returns the format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatSpreadsheet
}

// Extract opens the workbook and renders each sheet as a block of rows,
// header row included. Sheets are joined with "\n". Legacy binary
// workbooks are not applicable and fall through to plain text.
func (e *Extractor) Extract(ctx context.Context, path string) domain.Outcome {
	if err := ctx.Err(); err != nil {
		return domain.Failed(err)
	}

	legacy, err := isLegacyWorkbook(path)
	if err != nil {
		return domain.Failed(fmt.Errorf("reading file: %w", err))
	}
	if legacy {
		logger.Debug("%s is a legacy binary workbook", path)
		return domain.NotApplicable()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Failedf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	blocks := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return domain.Failedf("reading sheet %q: %v", sheet, err)
		}
		blocks = append(blocks, RenderRows(rows))
	}

	logger.Debug("read %d sheets from %s", len(blocks), path)
	return domain.Ok(strings.Join(blocks, "\n"))
}

// RenderRows renders rows as lines of space-separated cells. Empty cells
// keep their position so columns stay aligned by count.
func RenderRows(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, CellSeparator)
	}
	return strings.Join(lines, "\n")
}

// isLegacyWorkbook reports whether the file starts with the OLE signature.
func isLegacyWorkbook(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(oleSignature))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return n == len(oleSignature) && bytes.Equal(head, oleSignature), nil
}
