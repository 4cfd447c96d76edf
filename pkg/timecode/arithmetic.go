package timecode

// Operand is a value that can stand in for a timecode in arithmetic: a
// timecode string, an absolute frame count, or a TimeCode itself. Each
// variant converts at the receiver's frame rate, so the operand set is closed
// at compile time instead of being sorted out by runtime type inspection.
type Operand interface {
	toTimeCode(rate FrameRate) (TimeCode, error)
}

// Text is a timecode string operand. It is parsed with the target rate as the
// hint, so an embedded @rate suffix must agree with it.
type Text string

func (s Text) toTimeCode(rate FrameRate) (TimeCode, error) {
	return FromString(string(s), rate)
}

// Frames is an absolute frame count operand.
type Frames int64

func (f Frames) toTimeCode(rate FrameRate) (TimeCode, error) {
	return FromFrames(int64(f), rate)
}

func (t TimeCode) toTimeCode(rate FrameRate) (TimeCode, error) {
	if !t.rate.SameRate(rate) {
		return TimeCode{}, newRateMismatchError(t.rate, rate)
	}
	return t, nil
}

// Coerce converts an operand to a TimeCode at the given rate. TimeCode
// operands must already run at that rate; strings and frame counts are
// constructed with it.
func Coerce(op Operand, rate FrameRate) (TimeCode, error) {
	if !rate.IsValid() {
		return TimeCode{}, newInvalidRateError("a resolved frame rate is required for coercion")
	}
	return op.toTimeCode(rate)
}

// Add returns a new TimeCode advanced by the sum of the operands' frame
// counts, at the receiver's rate.
func (t TimeCode) Add(ops ...Operand) (TimeCode, error) {
	return t.combine(ops, 1)
}

// Subtract returns a new TimeCode moved back by the sum of the operands'
// frame counts, at the receiver's rate. A result before 00:00:00:00 fails.
func (t TimeCode) Subtract(ops ...Operand) (TimeCode, error) {
	return t.combine(ops, -1)
}

func (t TimeCode) combine(ops []Operand, sign int64) (TimeCode, error) {
	total := t.frameCount
	for _, op := range ops {
		other, err := Coerce(op, t.rate)
		if err != nil {
			return TimeCode{}, err
		}
		total += sign * other.frameCount
	}
	return FromFrames(total, t.rate)
}
