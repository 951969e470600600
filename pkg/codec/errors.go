package codec

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated    = errors.New("missing terminator")
	ErrTruncated       = errors.New("truncated group")
	ErrBadTag          = errors.New("unknown tag")
	ErrBadPlaceholder  = errors.New("absent half must carry the placeholder value")
	ErrOddPairs        = errors.New("odd number of indices, edges come in pairs")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSelfConflict    = errors.New("colour conflicts with itself")
	ErrZeroLightness   = errors.New("lightness 0 collides with the terminator")
	ErrUnknownColor    = errors.New("unknown colour")
)

// DecodeError is returned for any malformed input. Decoding never hands out a
// partially decoded input together with it.
type DecodeError struct {
	Format string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: byte %d: %v", e.Format, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(format string, offset int, err error) error {
	return &DecodeError{Format: format, Offset: offset, Err: err}
}
