// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
)

// invocation is a parsed envf command line. The command vector is never
// empty: an invocation without a command is a usage error, not a valid
// invocation.
type invocation struct {
	files   []string
	silent  bool
	command []string
}

// Sentinel outcomes of parseArgs that short-circuit a normal run.
var (
	errHelpRequested    = errors.New("help requested")
	errVersionRequested = errors.New("version requested")
)

// usageError marks a malformed invocation. It is always fatal and always
// printed together with the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// scanState is the state of the argument scan: recognizing launcher flags,
// or collecting the target command verbatim.
type scanState int

const (
	scanningFlags scanState = iota
	collectingCommand
)

// parseArgs scans the raw argument vector. Launcher flags are recognized
// only while in the scanningFlags state; the first argument that is not a
// recognized flag (or a bare "--") switches the scan to collectingCommand,
// and every remaining argument is taken verbatim as the command vector with
// no further flag interpretation. -h/--help and --version take absolute
// precedence over everything parsed before them, but only while still
// scanning flags.
func parseArgs(args []string) (*invocation, error) {
	inv := &invocation{}
	state := scanningFlags

	i := 0
	for i < len(args) && state == scanningFlags {
		switch arg := args[i]; {
		case arg == "-h" || arg == "--help":
			return nil, errHelpRequested
		case arg == "--version":
			return nil, errVersionRequested
		case arg == "-s":
			inv.silent = true
			i++
		case arg == "-f":
			if i+1 >= len(args) {
				return nil, &usageError{msg: "trailing -f"}
			}
			inv.files = append(inv.files, args[i+1])
			i += 2
		case strings.HasPrefix(arg, "-f="):
			inv.files = append(inv.files, strings.TrimPrefix(arg, "-f="))
			i++
		case arg == "--":
			// Explicit end of flags: consumed, everything after it is
			// the command even if it looks like a flag.
			i++
			state = collectingCommand
		default:
			// Not consumed: this argument is command[0].
			state = collectingCommand
		}
	}

	inv.command = args[i:]
	if len(inv.command) == 0 {
		return nil, &usageError{msg: "no command to execute was provided"}
	}

	return inv, nil
}
