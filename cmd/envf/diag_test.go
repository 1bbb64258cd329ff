// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagLogger_WarningForm(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newDiagLogger(&buf)

	logger.Warnf("%s ignored: %s", "a.toml", "could not read contents")

	got := buf.String()
	if !strings.HasPrefix(got, "WARNING: a.toml ignored: could not read contents") {
		t.Errorf("warning output = %q, want WARNING: prefix form", got)
	}
}

func TestDiagLogger_ErrorForm(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newDiagLogger(&buf)

	logger.Error("trailing -f")

	got := buf.String()
	if !strings.HasPrefix(got, "ERROR: trailing -f") {
		t.Errorf("error output = %q, want ERROR: prefix form", got)
	}
}
