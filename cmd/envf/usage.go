// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
)

const usageText = `Usage: envf [(-f FILE) ...] [-f=FILE ...] [-s] COMMAND [ARGS...]

Run COMMAND in an environment augmented with the variables listed in each FILE.

Options:
  -f FILE     Add values read from FILE to the environment in which COMMAND
              is run. FILE is a TOML (https://toml.io) table of scalar
              values. Repeatable; later files override earlier ones on key
              collision.
  -f=FILE     Same as -f FILE.
  -s          Silence warnings about unprocessable files.
  -h, --help  Display this message.
  --version   Display version information.

The first argument that is not one of the options above starts COMMAND, and
everything after it is passed to COMMAND verbatim. A bare -- ends option
scanning explicitly.
`

// printUsage writes the usage text to w (normally stderr, the diagnostic
// stream — stdout belongs to the launched command).
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
