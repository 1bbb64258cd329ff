// SPDX-License-Identifier: MPL-2.0

// Package envfile loads environment variables from TOML files.
//
// A file is a flat TOML table whose fields all carry scalar values (string,
// integer, float, boolean, or one of TOML's date-time types). Each field
// becomes one environment variable, with the value coerced to its canonical
// string form by Stringify.
//
// Loading is atomic per file: a file either contributes every one of its
// fields or, on any failure (unreadable, invalid TOML, non-table top level,
// unrepresentable value), contributes nothing at all.
package envfile
