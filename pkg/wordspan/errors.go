package wordspan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOffset is returned when an offset falls outside [0, n].
	ErrInvalidOffset = errors.New("wordspan: invalid offset")

	// ErrUnknownStrategy is returned by StrategyByName for unregistered names.
	ErrUnknownStrategy = errors.New("wordspan: unknown strategy")
)

// OffsetError describes an out-of-range offset.
//
// It matches ErrInvalidOffset under errors.Is.
type OffsetError struct {
	Offset int
	Length int
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("wordspan: offset %d out of range [0, %d]", e.Offset, e.Length)
}

func (e *OffsetError) Unwrap() error { return ErrInvalidOffset }

// CheckOffset returns an *OffsetError when offset is not a valid rune
// offset into text.
func CheckOffset(text string, offset int) error {
	n := runeCount(text)
	if offset < 0 || offset > n {
		return &OffsetError{Offset: offset, Length: n}
	}
	return nil
}
