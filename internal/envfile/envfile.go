// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Load reads the TOML file at path and converts every top-level field into
// an environment variable entry. On success the returned map holds one entry
// per field. On any failure the file contributes nothing and the error
// describes the first problem encountered, in this precedence: the file
// could not be read, the contents are not valid TOML, the top level is not a
// table, or some field's value cannot be represented as a string.
//
// Fields are folded in sorted name order, so when several fields are
// unrepresentable the reported one is deterministic.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read contents: %w", err)
	}

	var doc any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	table, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected format: top level is not a table")
	}

	env := make(map[string]string, len(table))
	for _, name := range slices.Sorted(maps.Keys(table)) {
		value, ok := Stringify(table[name])
		if !ok {
			return nil, fmt.Errorf("value for %s (%#v) can't be converted into a string", name, table[name])
		}
		env[name] = value
	}

	return env, nil
}
