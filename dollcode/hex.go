package dollcode

import "strconv"

// Hex input limits: a mandatory 0x prefix followed by 1-16 hex digits.
const (
	hexPrefixLen = 2
	MaxHexDigits = 16
	MaxHexLen    = hexPrefixLen + MaxHexDigits
)

// ParseHex parses a 0x-prefixed hexadecimal string into a uint64. The
// prefix is mandatory (ErrHexPrefix), digits are case-insensitive, and
// any non-hex rune fails with its 0-based position in the full input.
func ParseHex(s string) (uint64, error) {
	if len(s) < hexPrefixLen || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		if s == "" {
			return 0, ErrEmptyInput
		}
		return 0, ErrHexPrefix
	}
	digits := s[hexPrefixLen:]
	if digits == "" {
		return 0, ErrEmptyInput
	}
	if len(s) > MaxHexLen {
		return 0, &LengthError{Limit: MaxHexLen, Actual: len(s)}
	}

	var value uint64
	for i := 0; i < len(digits); i++ {
		v, ok := hexVal(digits[i])
		if !ok {
			return 0, &InvalidCharError{Rune: rune(digits[i]), Pos: hexPrefixLen + i}
		}
		// 16 digits cannot overflow, but the shift is guarded anyway.
		if value > (1<<60)-1 {
			return 0, ErrNumericOverflow
		}
		value = value<<4 | uint64(v)
	}
	return value, nil
}

// FormatHex renders v as lowercase hex with a 0x prefix and no padding.
func FormatHex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
