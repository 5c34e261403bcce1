package dollcode

import "strconv"

// Result is the outcome of the auto-detecting Convert entry point. Mode
// records how the input was classified; Output holds the converted
// string. When numeric dollcode was decoded, Numeric is set and Value
// holds the integer so callers can render decimal and hex side by side.
type Result struct {
	Mode    Mode
	Output  string
	Numeric bool
	Value   uint64
}

// ConvertDecimal converts a decimal string to numeric dollcode.
func ConvertDecimal(input string) (string, error) {
	if err := ValidateDecimal(input); err != nil {
		return "", err
	}
	n, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		// Validation leaves range as the only failure.
		return "", ErrNumericOverflow
	}
	seq, err := Encode(n)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// ConvertHex converts a 0x-prefixed hex string to numeric dollcode.
func ConvertHex(input string) (string, error) {
	if err := ValidateHex(input); err != nil {
		return "", err
	}
	n, err := ParseHex(input)
	if err != nil {
		return "", err
	}
	seq, err := Encode(n)
	if err != nil {
		return "", err
	}
	return seq.String(), nil
}

// ConvertText converts ASCII-printable text to text-form dollcode.
func ConvertText(input string) (string, error) {
	if input == "" {
		return "", ErrEmptyInput
	}
	return EncodeText(input)
}

// ConvertDollcode decodes a dollcode string, auto-detecting the form by
// delimiter presence: text form decodes to the original ASCII string,
// numeric form to its decimal rendering.
func ConvertDollcode(input string) (string, error) {
	res, err := decodeDollcode(input)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Convert classifies input once and dispatches to the matching codec.
// This is the single entry point the interactive front ends call per
// input event; it is deterministic, side-effect free, and safe to call
// from concurrent call sites because no state outlives the call.
func Convert(input string) (Result, error) {
	if input == "" {
		return Result{}, ErrEmptyInput
	}
	mode := DetectMode(input)
	switch mode {
	case ModeDollcode:
		return decodeDollcode(input)
	case ModeHex:
		out, err := ConvertHex(input)
		return Result{Mode: mode, Output: out}, err
	case ModeDecimal:
		out, err := ConvertDecimal(input)
		return Result{Mode: mode, Output: out}, err
	default:
		out, err := ConvertText(input)
		return Result{Mode: ModeText, Output: out}, err
	}
}

func decodeDollcode(input string) (Result, error) {
	if input == "" {
		return Result{}, ErrEmptyInput
	}
	if err := ValidateDollcode(input, true); err != nil {
		return Result{}, err
	}
	if HasDelimiter(input) {
		out, err := DecodeText(input)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: ModeDollcode, Output: out}, nil
	}
	seq, err := ParseSequence(input)
	if err != nil {
		return Result{}, err
	}
	n, err := seq.Value()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:    ModeDollcode,
		Output:  strconv.FormatUint(n, 10),
		Numeric: true,
		Value:   n,
	}, nil
}
