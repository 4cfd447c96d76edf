package timecode

import (
	"math"
	"strconv"
	"strings"
)

// FrameRate is an exact rational frame rate (numerator/denominator) together
// with the drop-frame counting flag. The zero value is the invalid sentinel:
// a rate whose drop-frame convention may be known but whose numeric value has
// not been resolved yet. FrameRate values are immutable and safe to share.
type FrameRate struct {
	num       float64
	den       float64
	valid     bool
	dropFrame bool
}

// Well-known frame rates. The NTSC rates are stored as exact rationals over
// 1001 so that drop-frame arithmetic and equality checks stay exact.
var (
	NTSC2398DF = FrameRate{num: 24000, den: 1001, valid: true, dropFrame: true}
	NTSC2398   = FrameRate{num: 24000, den: 1001, valid: true}
	NTSC2997DF = FrameRate{num: 30000, den: 1001, valid: true, dropFrame: true}
	NTSC2997   = FrameRate{num: 30000, den: 1001, valid: true}
	NTSC5994DF = FrameRate{num: 60000, den: 1001, valid: true, dropFrame: true}
	NTSC5994   = FrameRate{num: 60000, den: 1001, valid: true}
	FPS60      = FrameRate{num: 60, den: 1, valid: true}
	FPS30      = FrameRate{num: 30, den: 1, valid: true}
	FPS24      = FrameRate{num: 24, den: 1, valid: true}
)

// NewFrameRate creates a rate from an explicit numerator/denominator pair.
// Both must be finite and positive; anything else yields the invalid sentinel
// carrying only the drop-frame flag.
func NewFrameRate(num, den float64, dropFrame bool) FrameRate {
	if !isPositiveFinite(num) || !isPositiveFinite(den) {
		return FrameRate{dropFrame: dropFrame}
	}
	return FrameRate{num: num, den: den, valid: true, dropFrame: dropFrame}
}

// FrameRateFrom creates a rate with denominator 1. This is the general entry
// point for simple integer or decimal rates such as 25 or 23.98.
func FrameRateFrom(rate float64, dropFrame bool) FrameRate {
	return NewFrameRate(rate, 1, dropFrame)
}

// InvalidFrameRate creates the invalid sentinel carrying only the drop-frame
// flag. It marks a timecode string that supplied no rate of its own.
func InvalidFrameRate(dropFrame bool) FrameRate {
	return FrameRate{dropFrame: dropFrame}
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

// IsValid reports whether the rate has a resolved numerator and denominator.
func (r FrameRate) IsValid() bool {
	return r.valid
}

// DropFrame reports whether the rate uses drop-frame counting.
func (r FrameRate) DropFrame() bool {
	return r.dropFrame
}

// Rate returns the effective frames-per-second value. It panics when called
// on an invalid rate; callers must check IsValid first.
func (r FrameRate) Rate() float64 {
	if !r.valid {
		panic("timecode: Rate called on an invalid frame rate")
	}
	return r.num / r.den
}

// Fraction returns the exact numerator and denominator. Both are zero for the
// invalid sentinel.
func (r FrameRate) Fraction() (num, den float64) {
	return r.num, r.den
}

// Nominal returns the integer label rate used for timecode field bounds,
// e.g. 30 for 29.97 and 60 for 59.94.
func (r FrameRate) Nominal() int {
	return int(math.Round(r.Rate()))
}

// SameRate reports whether r and other advance at the same numeric rate,
// ignoring the drop-frame convention. Invalid rates never compare equal to
// anything.
func (r FrameRate) SameRate(other FrameRate) bool {
	if !r.valid || !other.valid {
		return false
	}
	return r.num/r.den == other.num/other.den
}

// Equal reports whether r and other are interchangeable: same numeric rate
// and same drop-frame convention. Two invalid rates are never equal, even
// with matching flags.
func (r FrameRate) Equal(other FrameRate) bool {
	if r.dropFrame != other.dropFrame || r.valid != other.valid {
		return false
	}
	return r.SameRate(other)
}

// String renders a human-readable label: the rate rounded to two decimals
// (prefixed with ≈ when the rounding is lossy), a DF/NDF suffix for drop or
// non-integral rates, and the exact numerator/denominator pair. The output is
// for display and is not guaranteed to re-parse.
func (r FrameRate) String() string {
	suffix := " NDF"
	if r.dropFrame {
		suffix = " DF"
	}
	if !r.valid {
		return "[Invalid]" + suffix
	}
	rate := r.num / r.den
	rounded := math.Round(rate*100) / 100
	label := strconv.FormatFloat(rounded, 'f', -1, 64)
	if rounded != rate {
		label = "≈" + label
	}
	if !r.dropFrame && rate == math.Trunc(rate) {
		suffix = ""
	}
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(suffix)
	b.WriteString(" (")
	b.WriteString(strconv.FormatFloat(r.num, 'f', -1, 64))
	b.WriteString("/")
	b.WriteString(strconv.FormatFloat(r.den, 'f', -1, 64))
	b.WriteString(")")
	return b.String()
}
