// Package connectors holds adapters that connect tecy to sources of change
// outside the process. The filesystem connector watches an input file so it
// can be cleaned again whenever it is saved.
package connectors
