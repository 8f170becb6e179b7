// Package file provides the file-based configuration store. Settings live in
// ~/.tecy/config.toml as TOML tables and are exposed as dot-notation keys,
// so the table
//
//	[extractors]
//	pdf = false
//
// is read and written through the key "extractors.pdf".
package file
