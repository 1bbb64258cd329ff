// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Stringify converts a decoded TOML value into its canonical string form.
// The second return value reports whether the value is representable as an
// environment variable at all: composite values (arrays, tables) and nil
// are not, and that outcome is a normal result rather than an error.
//
// The type switch covers exactly the value domain go-toml produces when
// decoding into an untyped map: strings pass through unmodified, integers
// and floats use their default decimal rendering, booleans become the
// literals "true"/"false", and date-times use the canonical textual form of
// their TOML type (RFC 3339 for offset date-times).
func Stringify(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		return x.Format(time.RFC3339Nano), true
	case toml.LocalDate:
		return x.String(), true
	case toml.LocalTime:
		return x.String(), true
	case toml.LocalDateTime:
		return x.String(), true
	default:
		return "", false
	}
}
