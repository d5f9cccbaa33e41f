package radio

import (
	"cmp"
	"fmt"
	"slices"
)

// Band limits of the civil aviation VHF band, in MHz.
const (
	MinLeft uint16 = 118
	MaxLeft uint16 = 137
)

var validChannels = [16]uint16{0, 5, 10, 15, 25, 30, 35, 40, 50, 55, 60, 65, 75, 80, 85, 90}

var (
	validChannel [100]bool
	channel25kHz [100]bool
)

func init() {
	for _, c := range validChannels {
		validChannel[c] = true
	}
	for _, c := range [4]uint16{0, 25, 50, 75} {
		channel25kHz[c] = true
	}
}

// ValidChannels returns every accepted value of right%100 in ascending order.
// The slice is a copy.
func ValidChannels() []uint16 {
	return slices.Clone(validChannels[:])
}

// Spacing is the channel plan a frequency belongs to. The zero value is
// SpacingUnknown.
type Spacing uint8

const (
	SpacingUnknown Spacing = iota
	Spacing833kHz
	Spacing25kHz
)

func (s Spacing) String() string {
	switch s {
	case SpacingUnknown:
		return "unknown"
	case Spacing25kHz:
		return "25kHz"
	case Spacing833kHz:
		return "8.33kHz"
	default:
		return fmt.Sprintf("Spacing(%d)", uint8(s))
	}
}

// Frequency is a validated aviation VHF frequency. The zero value is not a
// valid frequency.
type Frequency struct {
	left    uint16
	right   uint16
	is25kHz bool
}

// New validates left and right and returns the frequency they describe. The
// left part is checked first; either violation yields ErrInvalidFrequency.
func New(left, right uint16) (Frequency, error) {
	if left < MinLeft || left > MaxLeft {
		return Frequency{}, ErrInvalidFrequency
	}

	last := right % 100
	if !validChannel[last] {
		return Frequency{}, ErrInvalidFrequency
	}

	return Frequency{
		left:    left,
		right:   right,
		is25kHz: channel25kHz[last],
	}, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(left, right uint16) Frequency {
	f, err := New(left, right)
	if err != nil {
		panic(fmt.Sprintf("radio: MustNew(%d, %d): %v", left, right, err))
	}
	return f
}

// Is25kHzSpaced reports whether the channel belongs to the 25 kHz plan.
func (f Frequency) Is25kHzSpaced() bool {
	return f.is25kHz
}

// Is833kHzSpaced reports whether the channel belongs to the 8.33 kHz plan.
func (f Frequency) Is833kHzSpaced() bool {
	return !f.is25kHz
}

// Spacing returns SpacingUnknown for the zero Frequency.
func (f Frequency) Spacing() Spacing {
	switch {
	case f.IsZero():
		return SpacingUnknown
	case f.is25kHz:
		return Spacing25kHz
	default:
		return Spacing833kHz
	}
}

// Parts returns the left and right parts unchanged.
func (f Frequency) Parts() (left, right uint16) {
	return f.left, f.right
}

func (f Frequency) Left() uint16 {
	return f.left
}

func (f Frequency) Right() uint16 {
	return f.right
}

// IsZero reports whether f is the zero value, which no constructor returns.
func (f Frequency) IsZero() bool {
	return f == Frequency{}
}

// String formats f as "LLL.RRR". Both parts are zero-padded to at least three
// digits; a right part above 999 is printed in full.
func (f Frequency) String() string {
	return fmt.Sprintf("%03d.%03d", f.left, f.right)
}

// Compare orders frequencies by left part, then right part, then spacing
// (8.33 kHz before 25 kHz). It returns -1, 0 or +1 and fits slices.SortFunc.
func Compare(a, b Frequency) int {
	if c := cmp.Compare(a.left, b.left); c != 0 {
		return c
	}
	if c := cmp.Compare(a.right, b.right); c != 0 {
		return c
	}
	switch {
	case a.is25kHz == b.is25kHz:
		return 0
	case b.is25kHz:
		return -1
	default:
		return 1
	}
}

// Compare is the method form of Compare.
func (f Frequency) Compare(other Frequency) int {
	return Compare(f, other)
}

func (f Frequency) Less(other Frequency) bool {
	return Compare(f, other) < 0
}
