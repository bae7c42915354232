// Package format holds small display formatting helpers shared by the CLI
// and TUI layers.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration formats a time.Duration for display: microseconds below a
// millisecond, milliseconds below a second, the default representation
// otherwise.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Level formats a difficulty level for display, trimming trailing zeros so
// whole scores read as integers. Infinity renders as "∞".
func Level(value float64) string {
	if math.IsInf(value, 1) {
		return "∞"
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
