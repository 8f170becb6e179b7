package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CleanFileInput is the input schema for the clean_file tool.
type CleanFileInput struct {
	Path string `json:"path" jsonschema:"absolute path of the file to clean"`
}

// CleanFileOutput is the output schema for the clean_file tool.
type CleanFileOutput struct {
	RunID        string   `json:"run_id"`
	OutputPath   string   `json:"output_path"`
	Format       string   `json:"format"`
	Extractor    string   `json:"extractor"`
	Encoding     string   `json:"encoding,omitempty"`
	RawLines     int      `json:"raw_lines"`
	CleanedLines int      `json:"cleaned_lines"`
	Advisories   []string `json:"advisories,omitempty"`
}

// CleanTextInput is the input schema for the clean_text tool.
type CleanTextInput struct {
	Text string `json:"text" jsonschema:"text to clean, one or more lines"`
}

// CleanTextOutput is the output schema for the clean_text tool.
type CleanTextOutput struct {
	Cleaned      string `json:"cleaned"`
	SourceLines  int    `json:"source_lines"`
	CleanedLines int    `json:"cleaned_lines"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_file",
		Description: "Extract the text of a file and write its cleaned form to the tecy output directory",
	}, s.handleCleanFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_text",
		Description: "Clean text line by line: drop URLs, digits and punctuation, join words with ':'",
	}, s.handleCleanText)
}

// handleCleanFile handles the clean_file tool invocation.
func (s *Server) handleCleanFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CleanFileInput,
) (*mcp.CallToolResult, CleanFileOutput, error) {
	run, err := s.ports.Cleaner.Process(ctx, input.Path)
	if err != nil {
		return nil, CleanFileOutput{}, err
	}

	return nil, CleanFileOutput{
		RunID:        run.ID,
		OutputPath:   run.OutputPath,
		Format:       run.Format.String(),
		Extractor:    run.Extractor,
		Encoding:     run.Encoding,
		RawLines:     run.RawLines,
		CleanedLines: run.CleanedLines,
		Advisories:   run.Advisories,
	}, nil
}

// handleCleanText handles the clean_text tool invocation.
func (s *Server) handleCleanText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CleanTextInput,
) (*mcp.CallToolResult, CleanTextOutput, error) {
	doc := s.ports.Cleaner.CleanText(input.Text)
	return nil, CleanTextOutput{
		Cleaned:      doc.String(),
		SourceLines:  doc.SourceLines,
		CleanedLines: doc.Len(),
	}, nil
}
