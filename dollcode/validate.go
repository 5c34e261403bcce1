package dollcode

import (
	"strings"
	"unicode/utf8"
)

// MaxDecimalLen bounds decimal input: the 64-bit maximum has 20 digits.
const MaxDecimalLen = 20

// Mode classifies input for the conversion surface. Classification is a
// single closed step evaluated once, before any codec runs.
type Mode uint8

const (
	ModeDecimal Mode = iota
	ModeHex
	ModeText
	ModeDollcode
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "decimal"
	case ModeHex:
		return "hex"
	case ModeText:
		return "text"
	case ModeDollcode:
		return "dollcode"
	default:
		return "unknown"
	}
}

// DetectMode classifies s. Dollcode glyphs win over everything, a 0x
// prefix marks hex, an all-digit string is decimal, and anything else
// is treated as text. Empty input classifies as text.
func DetectMode(s string) Mode {
	for _, r := range s {
		if IsGlyph(r) || r == Delimiter {
			return ModeDollcode
		}
	}
	if len(s) >= hexPrefixLen && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return ModeHex
	}
	if s != "" && isAllDecimal(s) {
		return ModeDecimal
	}
	return ModeText
}

func isAllDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateDecimal checks decimal input: non-empty, at most MaxDecimalLen
// runes, decimal digits only. The first offending rune is reported at
// its 0-based index.
func ValidateDecimal(s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	if len(s) > MaxDecimalLen {
		return &LengthError{Limit: MaxDecimalLen, Actual: utf8.RuneCountInString(s)}
	}
	for i, r := range s {
		if r < '0' || r > '9' {
			return &InvalidCharError{Rune: r, Pos: i}
		}
	}
	return nil
}

// ValidateHex checks hex input shape without parsing the value: the
// mandatory 0x prefix, the total length bound, and hex-digit membership
// with positions counted across the full input including the prefix.
func ValidateHex(s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	if len(s) < hexPrefixLen || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return ErrHexPrefix
	}
	if len(s) == hexPrefixLen {
		return ErrEmptyInput
	}
	if len(s) > MaxHexLen {
		return &LengthError{Limit: MaxHexLen, Actual: len(s)}
	}
	for i := hexPrefixLen; i < len(s); i++ {
		if _, ok := hexVal(s[i]); !ok {
			return &InvalidCharError{Rune: rune(s[i]), Pos: i}
		}
	}
	return nil
}

// ValidateText checks text input: at most MaxTextLen characters, every
// one a printable ASCII code in [32,126]. Multi-byte runes are rejected
// with the same position precision; their error message identifies the
// outside-ASCII case for diagnostics.
func ValidateText(s string) error {
	count := 0
	for _, r := range s {
		if r < minPrintable || r > maxPrintable {
			return &InvalidCharError{Rune: r, Pos: count}
		}
		count++
		if count > MaxTextLen {
			return &LengthError{Limit: MaxTextLen, Actual: utf8.RuneCountInString(s)}
		}
	}
	return nil
}

// ValidateDollcode checks that s contains only digit glyphs, plus the
// delimiter when allowDelimiter is set. Numeric-form input (no
// delimiter) is additionally bounded at MaxDigits glyphs.
func ValidateDollcode(s string, allowDelimiter bool) error {
	digits := 0
	pos := 0
	for _, r := range s {
		switch {
		case IsGlyph(r):
			digits++
		case r == Delimiter && allowDelimiter:
			// segment boundary; resets nothing here, length bounds for
			// text form are enforced during decoding
		default:
			return &InvalidCharError{Rune: r, Pos: pos}
		}
		pos++
	}
	if !allowDelimiter && digits > MaxDigits {
		return &LengthError{Limit: MaxDigits, Actual: digits}
	}
	return nil
}

// HasDelimiter reports whether s contains the text-form delimiter,
// which is what distinguishes the two dollcode sub-forms.
func HasDelimiter(s string) bool {
	return strings.ContainsRune(s, Delimiter)
}
