// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The extraction dispatcher and the cleaning pipeline live here; the
// format-specific work is delegated to driven.Extractor implementations.
package services
