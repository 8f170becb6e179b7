package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tecy/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for tecy resources.
	uriScheme = "tecy://"

	// recentRuns is how many runs the runs resource lists.
	recentRuns = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Recognised file formats, their extensions and availability",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Most recent cleaning runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "A single recorded cleaning run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

type formatInfo struct {
	Format     string   `json:"format"`
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Enabled    bool     `json:"enabled"`
}

type runInfo struct {
	ID           string    `json:"id"`
	InputPath    string    `json:"input_path"`
	OutputPath   string    `json:"output_path,omitempty"`
	Format       string    `json:"format"`
	Extractor    string    `json:"extractor,omitempty"`
	Status       string    `json:"status"`
	Error        string    `json:"error,omitempty"`
	CleanedLines int       `json:"cleaned_lines"`
	StartedAt    time.Time `json:"started_at"`
}

func toRunInfo(run domain.Run) runInfo {
	return runInfo{
		ID:           run.ID,
		InputPath:    run.InputPath,
		OutputPath:   run.OutputPath,
		Format:       run.Format.String(),
		Extractor:    run.Extractor,
		Status:       string(run.Status),
		Error:        run.Error,
		CleanedLines: run.CleanedLines,
		StartedAt:    run.StartedAt,
	}
}

// handleFormatsResource lists every format and whether its extractor is on.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	caps := domain.DefaultCapabilities()
	if s.ports.Settings != nil {
		caps = s.ports.Settings.Capabilities()
	}

	formats := domain.SupportedFormats()
	infos := make([]formatInfo, len(formats))
	for i, f := range formats {
		infos[i] = formatInfo{
			Format:     f.Format.String(),
			Name:       f.Name,
			Extensions: f.Extensions,
			Enabled:    caps.Enabled(f.Format),
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleRunsResource lists the most recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResult(req.Params.URI, []runInfo{})
	}

	runs, err := s.ports.History.Recent(ctx, recentRuns)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, len(runs))
	for i := range runs {
		infos[i] = toRunInfo(runs[i])
	}
	return jsonResult(req.Params.URI, infos)
}

// handleRunResource returns a single run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.History.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return jsonResult(req.Params.URI, toRunInfo(*run))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like tecy://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
