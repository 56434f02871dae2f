package seq

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrEmpty      = errors.New("sequence is empty")
)

// OutOfRangeError reports the index as the caller passed it, before negative normalization.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [%d:%d]", e.Index, -e.Len, e.Len)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
