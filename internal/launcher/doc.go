// SPDX-License-Identifier: MPL-2.0

// Package launcher merges environment files and replaces the current
// process image with the target command.
//
// Merging follows the order the files were supplied: a key present in a
// later file overwrites the same key from an earlier file, and a file that
// fails to load is reported as a single warning and skipped, never aborting
// the run. The final environment handed to the command is the host
// environment overlaid with the merged entries.
//
// Process replacement is a one-way primitive: on success nothing after it
// runs. It is abstracted as an ExecFunc so tests can record the argv and
// environment instead of replacing the test process.
package launcher
