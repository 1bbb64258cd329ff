// SPDX-License-Identifier: MPL-2.0

// envf runs a command in an environment augmented with the scalar values
// read from TOML files.
package main

import (
	cmd "envf/cmd/envf"
)

func main() {
	cmd.Execute()
}
