// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newDiagLogger returns the diagnostics logger for w (normally stderr).
// Warnings are per-file "{path} ignored: {reason}" lines and errors are
// fatal, so the default level labels are replaced with the literal
// "WARNING:" and "ERROR:" forms those messages use. On a plain stream the
// styles degrade to the bare labels.
func newDiagLogger(w io.Writer) *log.Logger {
	logger := log.New(w)

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = WarningStyle.SetString("WARNING:")
	styles.Levels[log.ErrorLevel] = ErrorStyle.SetString("ERROR:")
	logger.SetStyles(styles)

	return logger
}
