package dollcode

import (
	"math"
	"unicode/utf8"
)

// MaxDigits is the longest numeric dollcode sequence: 41 bijective
// base-3 digits are sufficient for every 64-bit unsigned value.
const MaxDigits = 41

// utf8 bytes per digit glyph; all three glyphs are 3-byte runes.
const glyphBytes = 3

// Sequence is a fixed-capacity run of trinary digits, most-significant
// digit first. It is a value type: a Sequence lives on the caller's
// stack and is discarded at call return, so conversions never touch
// the heap.
type Sequence struct {
	digits [MaxDigits]Digit
	n      int
}

// Len returns the number of digits in the sequence.
func (s *Sequence) Len() int { return s.n }

// IsEmpty reports whether the sequence holds no digits. The empty
// sequence is the defined encoding of zero.
func (s *Sequence) IsEmpty() bool { return s.n == 0 }

// Digits returns a view of the valid digits, most-significant first.
// The slice aliases the sequence's fixed buffer; it is valid for as
// long as the Sequence itself.
func (s *Sequence) Digits() []Digit { return s.digits[:s.n] }

// push appends one digit with an explicit bounds check.
func (s *Sequence) push(d Digit) error {
	if s.n >= MaxDigits {
		return &BufferOverflowError{Limit: MaxDigits}
	}
	s.digits[s.n] = d
	s.n++
	return nil
}

// AppendTo appends the sequence's glyph rendering to dst and returns
// the extended slice. With a dst of sufficient capacity no allocation
// occurs.
func (s *Sequence) AppendTo(dst []byte) []byte {
	for i := 0; i < s.n; i++ {
		dst = utf8.AppendRune(dst, s.digits[i].Rune())
	}
	return dst
}

// String renders the sequence as a string of digit glyphs. The empty
// sequence renders as "".
func (s *Sequence) String() string {
	var buf [MaxDigits * glyphBytes]byte
	return string(s.AppendTo(buf[:0]))
}

// Encode converts n to its bijective base-3 digit sequence. Zero
// encodes to the empty sequence. The loop is guaranteed to terminate
// within MaxDigits for any 64-bit value; the bounds check guards the
// buffer regardless.
func Encode(n uint64) (Sequence, error) {
	var seq Sequence
	if n == 0 {
		return seq, nil
	}

	// Collect digits least-significant first. A remainder of 0 means
	// the digit weight is 3 and the quotient drops by one.
	var lsb [MaxDigits]Digit
	count := 0
	for n > 0 {
		if count >= MaxDigits {
			return Sequence{}, &BufferOverflowError{Limit: MaxDigits}
		}
		rem := (n - 1) % 3
		lsb[count] = Digit(rem + 1)
		n = (n - 1 - rem) / 3
		count++
	}

	// Reverse into most-significant-first order.
	for i := count - 1; i >= 0; i-- {
		if err := seq.push(lsb[i]); err != nil {
			return Sequence{}, err
		}
	}
	return seq, nil
}

// Decode folds a most-significant-first digit run back into a uint64.
// The empty run decodes to zero. Arithmetic is overflow-checked; a
// value past the 64-bit maximum fails with ErrNumericOverflow rather
// than wrapping.
func Decode(digits []Digit) (uint64, error) {
	var value uint64
	for i, d := range digits {
		if !d.Valid() {
			return 0, &InvalidCharError{Rune: rune(d), Pos: i}
		}
		w := uint64(d)
		if value > (math.MaxUint64-w)/3 {
			return 0, ErrNumericOverflow
		}
		value = value*3 + w
	}
	return value, nil
}

// ParseSequence parses a string of digit glyphs into a Sequence. Any
// rune outside the three-glyph alphabet fails with an InvalidCharError
// at its 0-based rune index; more than MaxDigits glyphs fail with a
// LengthError.
func ParseSequence(s string) (Sequence, error) {
	var seq Sequence
	i := 0
	for _, r := range s {
		d, ok := DigitFromRune(r)
		if !ok {
			return Sequence{}, &InvalidCharError{Rune: r, Pos: i}
		}
		if seq.n >= MaxDigits {
			return Sequence{}, &LengthError{Limit: MaxDigits, Actual: utf8.RuneCountInString(s)}
		}
		if err := seq.push(d); err != nil {
			return Sequence{}, err
		}
		i++
	}
	return seq, nil
}

// Value decodes the sequence back to its integer value.
func (s *Sequence) Value() (uint64, error) {
	return Decode(s.Digits())
}
