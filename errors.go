package radio

import (
	"errors"
)

// Sentinel errors returned by New and Parse.
var (
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrNotEnoughParts   = errors.New("not enough parts")
	ErrIntParse         = errors.New("int parse error")
)

// ParseError reports a dot-separated segment that is not an unsigned 16-bit
// integer. Err is the *strconv.NumError from the integer parser.
type ParseError struct {
	Segment string
	Err     error
}

func (e *ParseError) Error() string {
	return ErrIntParse.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrIntParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrIntParse
}
