package dollcode

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors returned by conversion operations.
var (
	// ErrNumericOverflow is returned when a decoded or parsed value
	// would exceed the 64-bit unsigned range.
	ErrNumericOverflow = errors.New("dollcode: value exceeds 64-bit range")

	// ErrHexPrefix is returned when hex input lacks the 0x prefix.
	ErrHexPrefix = errors.New("dollcode: hex input must start with 0x")

	// ErrEmptyInput is returned when an operation requires non-empty input.
	ErrEmptyInput = errors.New("dollcode: empty input")
)

// InvalidCharError reports a character that is not valid for the
// requested conversion. Pos is the 0-based rune index of the offender.
type InvalidCharError struct {
	Rune rune
	Pos  int
}

func (e *InvalidCharError) Error() string {
	if e.Rune > unicode.MaxASCII {
		return fmt.Sprintf("dollcode: invalid character %q at position %d (outside ASCII range)", e.Rune, e.Pos)
	}
	return fmt.Sprintf("dollcode: invalid character %q at position %d", e.Rune, e.Pos)
}

// SegmentError reports a text-form segment whose decoded value falls
// outside the printable ASCII range. Seg is the 0-based segment index.
type SegmentError struct {
	Seg   int
	Value uint64
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("dollcode: segment %d decodes to %d, outside printable range [%d,%d]",
		e.Seg, e.Value, minPrintable, maxPrintable)
}

// LengthError reports input that exceeds the length limit for its mode.
type LengthError struct {
	Limit  int
	Actual int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("dollcode: input length %d exceeds limit %d", e.Actual, e.Limit)
}

// BufferOverflowError reports output that would exceed a fixed buffer
// capacity. Conversions abort before any out-of-bounds write.
type BufferOverflowError struct {
	Limit int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("dollcode: output would exceed %d bytes", e.Limit)
}
