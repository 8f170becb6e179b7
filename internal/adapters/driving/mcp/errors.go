// Package mcp provides an MCP (Model Context Protocol) server adapter for tecy.
// It lets AI assistants clean files and text through the same pipeline as
// the command line.
package mcp

import "errors"

// ErrMissingCleanerService is returned when the cleaner service is not provided.
var ErrMissingCleanerService = errors.New("mcp: cleaner service is required")
