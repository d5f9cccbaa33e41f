package radio

import (
	"strconv"
	"strings"
)

// Parse reads a frequency in "LLL.RRR" form. Segments need not be padded,
// may carry leading zeros and may start with a single '+'. Anything after a
// second dot is ignored, so "120.905.1" parses as 120.905.
func Parse(s string) (Frequency, error) {
	first, rest, found := strings.Cut(s, ".")

	left, err := parseSegment(first)
	if err != nil {
		return Frequency{}, err
	}

	if !found {
		return Frequency{}, ErrNotEnoughParts
	}
	second, _, _ := strings.Cut(rest, ".")

	right, err := parseSegment(second)
	if err != nil {
		return Frequency{}, err
	}

	return New(left, right)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Frequency {
	f, err := Parse(s)
	if err != nil {
		panic("radio: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return f
}

func parseSegment(segment string) (uint16, error) {
	digits := segment
	if len(digits) > 1 && digits[0] == '+' {
		digits = digits[1:]
	}
	v, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, &ParseError{Segment: segment, Err: err}
	}
	return uint16(v), nil
}
