// Package dollcode implements dollcode, a trinary text codec built from
// three box-drawing glyphs.
//
// Dollcode is designed to be:
//   - Bijective: every uint64 has exactly one representation
//   - Allocation-free: conversions run in fixed, call-scoped buffers
//   - Strict: malformed input is rejected with position-tagged errors
//   - Stateless: every call is a complete request-response
//
// # Numeral System
//
// Numbers are encoded in bijective base-3 using digit weights 1-3
// instead of 0-2, mapped to glyphs:
//
//	▖ = 1
//	▘ = 2
//	▌ = 3
//
// Because there is no zero digit, representations are unique and carry
// no leading-zero ambiguity:
//
//	1  → ▖      (1)
//	4  → ▖▖     (1×3 + 1)
//	13 → ▖▖▖    (1×9 + 1×3 + 1)
//	42 → ▖▖▖▌   (1×27 + 1×9 + 1×3 + 3)
//
// Zero encodes to the empty sequence, and the empty sequence decodes
// to zero.
//
// # Text Form
//
// ASCII-printable text (codes 32-126) is encoded one character per
// segment: the character code in bijective base-3 (3-5 digits) followed
// by a zero-width joiner as segment delimiter, segments concatenated in
// input order. Numeric dollcode never contains the delimiter, so the
// two forms are distinguishable by inspection.
//
//	"Hi!" → ▘▖▘▌‍▌▘▖▌‍▌▖▌‍
//
// # Conversion Surface
//
// Four entry points cover the mode-specific conversions:
//
//	ConvertDecimal("42")    → "▖▖▖▌"
//	ConvertHex("0xff")      → "▘▘▌▌▌"
//	ConvertText("hey :]")   → delimiter-terminated segments
//	ConvertDollcode("▖▖▖▌") → "42"
//
// Convert classifies arbitrary input once (dollcode, hex, decimal, or
// text) and dispatches to the matching codec.
//
// # Errors
//
// All failures are returned as typed errors that callers can match with
// errors.Is and errors.As: InvalidCharError and SegmentError carry the
// 0-based position of the offense; LengthError and BufferOverflowError
// carry the violated limit. No operation writes past a buffer bound or
// silently truncates.
package dollcode
