// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"
	"testing"
)

func TestParseArgs_Config(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		files   []string
		silent  bool
		command []string
	}{
		{
			name:    "bare command",
			args:    []string{"echo", "hi"},
			command: []string{"echo", "hi"},
		},
		{
			name:    "silent flag",
			args:    []string{"-s", "echo", "hi"},
			silent:  true,
			command: []string{"echo", "hi"},
		},
		{
			name:    "separate file flag",
			args:    []string{"-f", "a.toml", "env"},
			files:   []string{"a.toml"},
			command: []string{"env"},
		},
		{
			name:    "inline file flag",
			args:    []string{"-f=a.toml", "env"},
			files:   []string{"a.toml"},
			command: []string{"env"},
		},
		{
			name:    "mixed file flag forms",
			args:    []string{"-f", "a.toml", "-f=b.toml", "-f", "c.toml", "env"},
			files:   []string{"a.toml", "b.toml", "c.toml"},
			command: []string{"env"},
		},
		{
			name:    "flags after command start are command arguments",
			args:    []string{"echo", "-s", "-f", "x.toml", "-h"},
			command: []string{"echo", "-s", "-f", "x.toml", "-h"},
		},
		{
			name:    "unrecognized dash token starts the command",
			args:    []string{"-x", "echo"},
			command: []string{"-x", "echo"},
		},
		{
			name:    "double dash ends flag scanning",
			args:    []string{"-s", "--", "-f", "a.toml"},
			silent:  true,
			command: []string{"-f", "a.toml"},
		},
		{
			name:    "command literally named -s",
			args:    []string{"--", "-s"},
			command: []string{"-s"},
		},
		{
			name:    "inline file flag with empty path",
			args:    []string{"-f=", "env"},
			files:   []string{""},
			command: []string{"env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !slices.Equal(inv.files, tt.files) {
				t.Errorf("files = %q, want %q", inv.files, tt.files)
			}
			if inv.silent != tt.silent {
				t.Errorf("silent = %v, want %v", inv.silent, tt.silent)
			}
			if !slices.Equal(inv.command, tt.command) {
				t.Errorf("command = %q, want %q", inv.command, tt.command)
			}
		})
	}
}

func TestParseArgs_HelpPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "short form alone", args: []string{"-h"}},
		{name: "long form alone", args: []string{"--help"}},
		{name: "after other flags", args: []string{"-s", "-f", "a.toml", "--help"}},
		{name: "before a command", args: []string{"-f=a.toml", "-h", "echo", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseArgs(tt.args)
			if !errors.Is(err, errHelpRequested) {
				t.Fatalf("expected help outcome, got %v", err)
			}
		})
	}
}

func TestParseArgs_Version(t *testing.T) {
	t.Parallel()

	_, err := parseArgs([]string{"-s", "--version", "echo"})
	if !errors.Is(err, errVersionRequested) {
		t.Fatalf("expected version outcome, got %v", err)
	}

	// Once the command has started, --version is just an argument.
	inv, err := parseArgs([]string{"mytool", "--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(inv.command, []string{"mytool", "--version"}) {
		t.Errorf("command = %q, want [mytool --version]", inv.command)
	}
}

func TestParseArgs_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "empty argument vector", args: nil, msg: "no command to execute was provided"},
		{name: "only flags", args: []string{"-s", "-f=a.toml"}, msg: "no command to execute was provided"},
		{name: "double dash with nothing after", args: []string{"-s", "--"}, msg: "no command to execute was provided"},
		{name: "trailing -f alone", args: []string{"-f"}, msg: "trailing -f"},
		{name: "trailing -f after flags", args: []string{"-s", "-f=a.toml", "-f"}, msg: "trailing -f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseArgs(tt.args)
			var usageErr *usageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected usage error, got %v", err)
			}
			if usageErr.msg != tt.msg {
				t.Errorf("message = %q, want %q", usageErr.msg, tt.msg)
			}
		})
	}
}
