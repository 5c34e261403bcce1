package dollcode

// Digit is a single trinary digit with weight 1, 2, or 3. There is no
// zero digit; that is what makes the numeral system bijective rather
// than standard positional base-3.
type Digit uint8

// The three digit values in weight order.
const (
	DigitOne   Digit = 1 // ▖
	DigitTwo   Digit = 2 // ▘
	DigitThree Digit = 3 // ▌
)

// Digit glyphs and the text-form segment delimiter.
const (
	GlyphOne   = '▖' // ▖ QUADRANT LOWER LEFT
	GlyphTwo   = '▘' // ▘ QUADRANT UPPER LEFT
	GlyphThree = '▌' // ▌ LEFT HALF BLOCK
	Delimiter  = '‍' // zero-width joiner, terminates each text segment
)

// glyphs maps digit weight minus one to its rendering glyph.
var glyphs = [3]rune{GlyphOne, GlyphTwo, GlyphThree}

// Valid reports whether d carries a legal weight.
func (d Digit) Valid() bool {
	return d >= DigitOne && d <= DigitThree
}

// Rune returns the glyph rendering d, or the Unicode replacement
// character for an invalid digit.
func (d Digit) Rune() rune {
	if !d.Valid() {
		return '�'
	}
	return glyphs[d-1]
}

// DigitFromRune maps a glyph to its digit. The second result is false
// for any rune outside the three-glyph alphabet.
func DigitFromRune(r rune) (Digit, bool) {
	switch r {
	case GlyphOne:
		return DigitOne, true
	case GlyphTwo:
		return DigitTwo, true
	case GlyphThree:
		return DigitThree, true
	default:
		return 0, false
	}
}

// IsGlyph reports whether r is one of the three digit glyphs.
func IsGlyph(r rune) bool {
	_, ok := DigitFromRune(r)
	return ok
}
