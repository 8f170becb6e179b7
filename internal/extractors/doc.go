// Package extractors provides implementations of the Extractor interface
// for the formats tecy understands. Each extractor knows how to pull raw
// text out of one format and reports a tagged outcome instead of an error.
//
// Extractors are wired into the dispatcher at startup; the plaintext
// extractor is the fallback that always runs last.
package extractors
