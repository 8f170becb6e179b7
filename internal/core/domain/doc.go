// Package domain defines the core business entities for tecy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Text lines pulled out of an input file by an extractor
//   - CleanedLine: A line reduced to letter-only tokens
//   - CleanedDocument: The ordered set of cleaned lines written to disk
//   - Outcome: The tagged result of a single extraction attempt
//   - Run: A recorded invocation of the cleaning pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
