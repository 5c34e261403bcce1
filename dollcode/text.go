package dollcode

import "unicode/utf8"

// Text-form limits. Every printable ASCII code fits in 5 bijective
// base-3 digits, so a segment is at most 5 glyphs plus the delimiter,
// each a 3-byte rune.
const (
	MaxTextLen      = 100
	maxSegmentBytes = 18
	MaxEncodedBytes = MaxTextLen * maxSegmentBytes

	minPrintable = 32
	maxPrintable = 126

	// maxSegmentDigits bounds one text segment; codes 32-126 need at
	// most 5 digits, anything longer is out of range by construction.
	maxSegmentDigits = 5
)

// EncodeText converts ASCII-printable text to text-form dollcode: one
// delimiter-terminated segment per character, segments concatenated in
// input order. Input is validated up front; encoding itself writes into
// a fixed buffer with a defensive capacity check before every segment.
func EncodeText(s string) (string, error) {
	if err := ValidateText(s); err != nil {
		return "", err
	}

	var out [MaxEncodedBytes]byte
	n := 0
	for _, r := range s {
		seq, err := Encode(uint64(r))
		if err != nil {
			return "", err
		}
		need := seq.Len()*glyphBytes + utf8.RuneLen(Delimiter)
		if n+need > MaxEncodedBytes {
			return "", &BufferOverflowError{Limit: MaxEncodedBytes}
		}
		n += len(seq.AppendTo(out[n:n]))
		n += len(utf8.AppendRune(out[n:n], Delimiter))
	}
	return string(out[:n]), nil
}

// DecodeText converts text-form dollcode back to the original string.
// The input is split on the delimiter glyph; each segment must contain
// only digit glyphs and decode to a printable ASCII code. Empty
// segments (a trailing delimiter, or an input of delimiters only)
// contribute no characters.
func DecodeText(s string) (string, error) {
	var out [MaxTextLen]byte
	outN := 0

	var segDigits [maxSegmentDigits + 1]Digit
	segLen := 0
	segOverflow := false
	seg := 0

	pos := 0
	for _, r := range s {
		switch {
		case r == Delimiter:
			if segLen > 0 || segOverflow {
				if segOverflow {
					// Too many digits for any printable code; decode
					// what we kept just to report the value class.
					return "", &SegmentError{Seg: seg, Value: segValueFloor(segLen)}
				}
				value, err := Decode(segDigits[:segLen])
				if err != nil {
					return "", err
				}
				if value < minPrintable || value > maxPrintable {
					return "", &SegmentError{Seg: seg, Value: value}
				}
				if outN >= MaxTextLen {
					return "", &BufferOverflowError{Limit: MaxTextLen}
				}
				out[outN] = byte(value)
				outN++
				segLen = 0
			}
			seg++
		default:
			d, ok := DigitFromRune(r)
			if !ok {
				return "", &InvalidCharError{Rune: r, Pos: pos}
			}
			if segLen < len(segDigits) {
				segDigits[segLen] = d
				segLen++
			} else {
				segOverflow = true
			}
		}
		pos++
	}

	// A final segment without its delimiter still decodes; the original
	// front end tolerates a clipped trailing delimiter.
	if segLen > 0 || segOverflow {
		if segOverflow {
			return "", &SegmentError{Seg: seg, Value: segValueFloor(segLen)}
		}
		value, err := Decode(segDigits[:segLen])
		if err != nil {
			return "", err
		}
		if value < minPrintable || value > maxPrintable {
			return "", &SegmentError{Seg: seg, Value: value}
		}
		if outN >= MaxTextLen {
			return "", &BufferOverflowError{Limit: MaxTextLen}
		}
		out[outN] = byte(value)
		outN++
	}

	return string(out[:outN]), nil
}

// segValueFloor is the smallest value representable with n bijective
// base-3 digits: a run of n ones. Used to report the magnitude class of
// an oversized segment without decoding arbitrarily long digit runs.
func segValueFloor(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = v*3 + 1
	}
	return v
}
