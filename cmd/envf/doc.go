// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI layer for envf.
//
// The command line has an unusual shape for a cobra program: launcher flags
// are recognized only as a strict prefix of the argument vector, and the
// first argument that is not a recognized flag starts the target command,
// which is taken verbatim from there on — even tokens that look like -s or
// -f. Standard flag parsing cannot express that, so the root command
// disables it and args.go owns the scan with an explicit two-state machine.
package cmd
