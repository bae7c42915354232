package difficulty

import (
	"strconv"
	"strings"

	"github.com/pencalc/pencalc/internal/recency"
)

// Step keys canonically identify elementary sub-steps across the four models.
// Keys are tagged with the operation kind so a column addition performed
// inside long multiplication and one performed inside a plain sum recognize
// each other, while never colliding with subtraction or trial steps.

// addStepKey identifies a single-column addition: the addend digits plus the
// carry coming in.
func addStepKey(digits []int, carryIn int) recency.Key {
	var b strings.Builder
	b.WriteString("add:")
	for i, d := range digits {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(carryIn))
	return recency.Key(b.String())
}

// subStepKey identifies a single-column subtraction with its borrow-in.
func subStepKey(a, b, borrowIn int) recency.Key {
	return recency.Key("sub:" + strconv.Itoa(a) + "," + strconv.Itoa(b) + "|" + strconv.Itoa(borrowIn))
}

// mulStepKey identifies one digit-times-digit grid cell.
func mulStepKey(a, b int) recency.Key {
	return recency.Key("mul:" + strconv.Itoa(a) + "," + strconv.Itoa(b))
}

// divStepKey identifies one quotient-digit trial against a remainder buffer.
func divStepKey(buffer, denominator uint64, q int) recency.Key {
	return recency.Key("div:" + strconv.FormatUint(buffer, 10) + "/" +
		strconv.FormatUint(denominator, 10) + "?" + strconv.Itoa(q))
}
