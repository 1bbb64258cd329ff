// SPDX-License-Identifier: MPL-2.0

// Package config loads optional launcher defaults from a per-user config
// file.
//
// The file lives at <config dir>/envf/config.toml, where the directory
// follows platform conventions (%APPDATA% on Windows, ~/Library/Application
// Support on macOS, $XDG_CONFIG_HOME or ~/.config elsewhere). A missing
// file is not an error: every default applies. A file that exists but
// cannot be parsed is reported so the caller can warn and continue with
// defaults — launcher defaults are a convenience and never abort a run.
package config
