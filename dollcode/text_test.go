package dollcode

import (
	"errors"
	"strings"
	"testing"
)

const zwj = "‍"

func TestEncodeText_Known(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hi!", "▘▖▘▌" + zwj + "▌▘▖▌" + zwj + "▌▖▌" + zwj},
		{"hey :]", "▌▘▖▘" + zwj + "▌▖▌▘" + zwj + "▖▖▖▖▖" + zwj + "▌▖▘" + zwj + "▖▌▖▖" + zwj + "▘▌▌▌" + zwj},
		{" ", "▌▖▘" + zwj},
		{"~", "▖▖▖▘▌" + zwj},
	}

	for _, tt := range tests {
		got, err := EncodeText(tt.input)
		if err != nil {
			t.Fatalf("EncodeText(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("EncodeText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEncodeText_SegmentShape(t *testing.T) {
	// One delimiter-terminated segment per character, in input order,
	// each segment 3-5 digit glyphs.
	input := "hey :]"
	out, err := EncodeText(input)
	if err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}

	segs := strings.Split(out, zwj)
	if segs[len(segs)-1] != "" {
		t.Fatalf("output does not end with a delimiter: %q", out)
	}
	segs = segs[:len(segs)-1]
	if len(segs) != len(input) {
		t.Fatalf("got %d segments for %d characters", len(segs), len(input))
	}

	for i, seg := range segs {
		n := 0
		for _, r := range seg {
			if !IsGlyph(r) {
				t.Errorf("segment %d contains non-glyph %q", i, r)
			}
			n++
		}
		if n < 3 || n > 5 {
			t.Errorf("segment %d has %d digits, want 3-5", i, n)
		}
		want, err := Encode(uint64(input[i]))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if seg != want.String() {
			t.Errorf("segment %d = %q, want %q (code %d)", i, seg, want.String(), input[i])
		}
	}
}

func TestText_RoundTrip_AllPrintable(t *testing.T) {
	for c := minPrintable; c <= maxPrintable; c++ {
		in := string(rune(c))
		enc, err := EncodeText(in)
		if err != nil {
			t.Fatalf("EncodeText(%q) failed: %v", in, err)
		}
		dec, err := DecodeText(enc)
		if err != nil {
			t.Fatalf("DecodeText(%q) failed: %v", enc, err)
		}
		if dec != in {
			t.Errorf("round-trip of code %d: got %q", c, dec)
		}
	}
}

func TestText_RoundTrip_Strings(t *testing.T) {
	tests := []string{
		"Hello, World!",
		"123-456-789",
		"UPPER lower 12345",
		"!@#$%^&*()",
		"Mixed_Case_With_Numbers_123",
		"AAAAA",
		"     ",
		"12321",
		"aA1!@",
		"The quick brown fox jumps over the lazy dog",
		strings.Repeat("x", MaxTextLen),
	}

	for _, in := range tests {
		enc, err := EncodeText(in)
		if err != nil {
			t.Fatalf("EncodeText(%q) failed: %v", in, err)
		}
		dec, err := DecodeText(enc)
		if err != nil {
			t.Fatalf("DecodeText failed for %q: %v", in, err)
		}
		if dec != in {
			t.Errorf("round-trip mismatch: %q -> %q", in, dec)
		}
	}
}

func TestEncodeText_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
	}{
		{"newline", "ab\ncd", 2},
		{"tab", "\tx", 0},
		{"del", "ok\x7f", 2},
		{"emoji", "hi🎉there", 2},
		{"multibyte", "café", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeText(tt.input)
			var ice *InvalidCharError
			if !errors.As(err, &ice) {
				t.Fatalf("EncodeText(%q) error = %v, want InvalidCharError", tt.input, err)
			}
			if ice.Pos != tt.pos {
				t.Errorf("position = %d, want %d", ice.Pos, tt.pos)
			}
		})
	}
}

func TestEncodeText_LengthLimit(t *testing.T) {
	ok := strings.Repeat("a", MaxTextLen)
	if _, err := EncodeText(ok); err != nil {
		t.Fatalf("EncodeText(100 chars) failed: %v", err)
	}

	long := strings.Repeat("a", MaxTextLen+1)
	_, err := EncodeText(long)
	var le *LengthError
	if !errors.As(err, &le) {
		t.Fatalf("EncodeText(101 chars) error = %v, want LengthError", err)
	}
	if le.Limit != MaxTextLen || le.Actual != MaxTextLen+1 {
		t.Errorf("LengthError = {%d %d}, want {%d %d}", le.Limit, le.Actual, MaxTextLen, MaxTextLen+1)
	}
}

func TestEncodeText_MaxOutputBound(t *testing.T) {
	// The widest printable codes need 5 digits; 100 of them must still
	// fit the fixed output buffer.
	in := strings.Repeat("~", MaxTextLen)
	out, err := EncodeText(in)
	if err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}
	if len(out) > MaxEncodedBytes {
		t.Errorf("encoded %d bytes, bound is %d", len(out), MaxEncodedBytes)
	}
}

func TestDecodeText_EmptyForms(t *testing.T) {
	for _, in := range []string{"", zwj, zwj + zwj + zwj} {
		got, err := DecodeText(in)
		if err != nil {
			t.Fatalf("DecodeText(%q) failed: %v", in, err)
		}
		if got != "" {
			t.Errorf("DecodeText(%q) = %q, want empty", in, got)
		}
	}
}

func TestDecodeText_Rejections(t *testing.T) {
	hSeg := "▌▘▖▘" // 104 = 'h'

	t.Run("non-glyph in segment", func(t *testing.T) {
		_, err := DecodeText(hSeg + zwj + "▖a▖" + zwj)
		var ice *InvalidCharError
		if !errors.As(err, &ice) {
			t.Fatalf("error = %v, want InvalidCharError", err)
		}
		if ice.Pos != 6 {
			t.Errorf("position = %d, want 6", ice.Pos)
		}
	})

	t.Run("segment below printable range", func(t *testing.T) {
		// ▖ alone decodes to 1.
		_, err := DecodeText("▖" + zwj)
		var se *SegmentError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want SegmentError", err)
		}
		if se.Seg != 0 || se.Value != 1 {
			t.Errorf("SegmentError = {%d %d}, want {0 1}", se.Seg, se.Value)
		}
	})

	t.Run("segment above printable range", func(t *testing.T) {
		// Six threes decode to 1092, past the printable window.
		_, err := DecodeText(hSeg + zwj + strings.Repeat("▌", 6) + zwj)
		var se *SegmentError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want SegmentError", err)
		}
		if se.Seg != 1 {
			t.Errorf("segment index = %d, want 1", se.Seg)
		}
	})

	t.Run("oversized segment", func(t *testing.T) {
		_, err := DecodeText(strings.Repeat("▖", 50) + zwj)
		var se *SegmentError
		if !errors.As(err, &se) {
			t.Fatalf("error = %v, want SegmentError", err)
		}
	})
}

func TestDecodeText_TrailingSegmentWithoutDelimiter(t *testing.T) {
	// A clipped final delimiter still decodes the last segment.
	enc, err := EncodeText("hi")
	if err != nil {
		t.Fatalf("EncodeText failed: %v", err)
	}
	clipped := strings.TrimSuffix(enc, zwj)
	got, err := DecodeText(clipped)
	if err != nil {
		t.Fatalf("DecodeText(clipped) failed: %v", err)
	}
	if got != "hi" {
		t.Errorf("DecodeText(clipped) = %q, want %q", got, "hi")
	}
}
