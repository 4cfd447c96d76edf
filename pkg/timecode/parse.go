package timecode

import (
	"regexp"
	"strconv"
)

// ParsedTimeCode is the structural result of the grammar stage: the four raw
// address fields and whatever rate information the string itself carried,
// before any validity or frame-count checking. Rate is the invalid sentinel
// when the string had no @rate suffix.
type ParsedTimeCode struct {
	Hour   int
	Minute int
	Second int
	Frame  int
	Rate   FrameRate
}

// Grammar: H+ SEP MM SEP SS SEP FF, each separator independently : or ;,
// with an optional @rate suffix (decimal allowed).
var timeCodePattern = regexp.MustCompile(`^(\d+)([:;])(\d{2})([:;])(\d{2})([:;])(\d{2})(?:@(\d+(?:\.\d+)?))?$`)

// ParseTimeCodeString splits a timecode string into its raw fields and
// resolves the rate suffix. This is the grammar stage only: fields are not
// checked against the rate and no frame count is computed. A ; separator
// before the frames field marks the rate as drop-frame; the only legal
// drop-frame forms are HH:MM:SS;FF and HH;MM;SS;FF.
func ParseTimeCodeString(text string) (ParsedTimeCode, error) {
	m := timeCodePattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedTimeCode{}, newSyntaxError(text)
	}
	sep1, sep2, sep3 := m[2], m[4], m[6]
	if sep3 == ";" {
		if sep1 != sep2 {
			return ParsedTimeCode{}, newAmbiguousFormatError(text)
		}
	} else if sep1 == ";" || sep2 == ";" {
		return ParsedTimeCode{}, newAmbiguousFormatError(text)
	}
	dropFrame := sep3 == ";"

	rate := InvalidFrameRate(dropFrame)
	if m[8] != "" {
		if m[8] == "29.97" {
			// The NTSC rate must stay an exact rational, not the decimal
			// approximation, or drop-frame math drifts.
			rate = NewFrameRate(30000, 1001, dropFrame)
		} else {
			f, err := strconv.ParseFloat(m[8], 64)
			if err != nil {
				return ParsedTimeCode{}, newSyntaxError(text)
			}
			rate = FrameRateFrom(f, dropFrame)
		}
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedTimeCode{}, newSyntaxError(text)
	}
	minute, _ := strconv.Atoi(m[3])
	second, _ := strconv.Atoi(m[5])
	frame, _ := strconv.Atoi(m[7])

	return ParsedTimeCode{
		Hour:   hour,
		Minute: minute,
		Second: second,
		Frame:  frame,
		Rate:   rate,
	}, nil
}

// FromString parses text into a fully validated TimeCode. A rate hint may be
// supplied for strings that carry no @rate suffix of their own; when both the
// hint and an embedded rate are present they must be equal. The hint, if
// given, must be a resolved rate.
func FromString(text string, rateHint ...FrameRate) (TimeCode, error) {
	var hint FrameRate
	hasHint := len(rateHint) > 0
	if hasHint {
		hint = rateHint[0]
		if !hint.IsValid() {
			return TimeCode{}, newInvalidRateError("frame rate hint is not resolved: pass a fully-formed rate or omit it")
		}
	}

	parsed, err := ParseTimeCodeString(text)
	if err != nil {
		return TimeCode{}, err
	}

	effective := parsed.Rate
	if hasHint {
		if parsed.Rate.IsValid() && !hint.Equal(parsed.Rate) {
			return TimeCode{}, newRateConflictError(hint, parsed.Rate)
		}
		effective = hint
	}

	return New(parsed.Hour, parsed.Minute, parsed.Second, parsed.Frame, effective)
}
