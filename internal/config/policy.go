package config

import (
	"errors"
	"fmt"
	"slices"

	radio "github.com/caspianmerlin/aviation-radio"
)

// Spacing policy values.
const (
	SpacingAny    = "any"
	Spacing25kHz  = "25kHz"
	Spacing833kHz = "8.33kHz"
)

// Policy rejections.
var (
	ErrSpacingMismatch = errors.New("spacing not allowed")
	ErrReserved        = errors.New("reserved frequency")
)

// Check applies the policy to a frequency that already passed radio validation.
func (p PolicyConfig) Check(f radio.Frequency) error {
	if p.Spacing != "" && p.Spacing != SpacingAny && f.Spacing().String() != p.Spacing {
		return fmt.Errorf("%w: %s channel under %s policy", ErrSpacingMismatch, f.Spacing(), p.Spacing)
	}

	if slices.Contains(p.Reserved, f) {
		return ErrReserved
	}

	return nil
}
