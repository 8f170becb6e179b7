// Package memory provides in-memory implementations of the driven ports.
// They back tests and runs where nothing should touch the user's home
// directory.
package memory
