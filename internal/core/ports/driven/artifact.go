package driven

import "context"

// ArtifactWriter persists cleaned output.
// Each write fully replaces any previous artifact with the same name.
type ArtifactWriter interface {
	// Write stores content under name inside the output directory,
	// creating the directory if needed. Returns the full artifact path.
	Write(ctx context.Context, name string, content []byte) (string, error)

	// Dir returns the output directory.
	Dir() string
}
