package timecode

import "fmt"

// TimeCode is an immutable SMPTE timecode: four address fields bound to a
// frame rate, together with the absolute frame count those fields name. The
// frame count is derived once at construction and cached; arithmetic never
// mutates a value, it produces a new one. TimeCode values are safe to share
// across goroutines.
type TimeCode struct {
	hour       int
	minute     int
	second     int
	frame      int
	rate       FrameRate
	frameCount int64
}

// New builds a TimeCode from explicit fields. The rate must be resolved,
// minute and second must be 0-59, frame must be below the nominal rate, and
// hour must be non-negative (it is otherwise unbounded). Field combinations
// that drop-frame counting skips are rejected, never normalized.
func New(hour, minute, second, frame int, rate FrameRate) (TimeCode, error) {
	if !rate.IsValid() {
		return TimeCode{}, newInvalidRateError("a resolved frame rate is required to construct a timecode")
	}
	if hour < 0 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		frame < 0 || frame >= rate.Nominal() {
		return TimeCode{}, newFieldRangeError(hour, minute, second, frame, rate)
	}
	count, err := fieldsToFrameCount(hour, minute, second, frame, rate)
	if err != nil {
		return TimeCode{}, err
	}
	return TimeCode{
		hour:       hour,
		minute:     minute,
		second:     second,
		frame:      frame,
		rate:       rate,
		frameCount: count,
	}, nil
}

// FromFrames builds the TimeCode addressed by the absolute frame count at the
// given rate. Hours wrap modulo 24, so counts beyond a day land on the
// equivalent address within one; the cached frame count then reflects the
// wrapped address.
func FromFrames(count int64, rate FrameRate) (TimeCode, error) {
	if !rate.IsValid() {
		return TimeCode{}, newInvalidRateError("a resolved frame rate is required to construct a timecode")
	}
	if count < 0 {
		return TimeCode{}, newNegativeFrameCountError(count)
	}
	hour, minute, second, frame := frameCountToFields(count, rate)
	return New(hour, minute, second, frame, rate)
}

// fieldsToFrameCount converts an address to its absolute frame count. The
// base count treats the rate as its nominal integer; drop-frame rates then
// give back the frame numbers skipped at the start of every minute not
// divisible by 10. Addresses naming a skipped frame number are rejected.
func fieldsToFrameCount(hour, minute, second, frame int, rate FrameRate) (int64, error) {
	nominal := int64(rate.Nominal())
	count := (int64(hour)*3600+int64(minute)*60+int64(second))*nominal + int64(frame)
	if rate.DropFrame() {
		dropped := int64(4)
		if rate.Rate() < 30 {
			dropped = 2
		}
		if second == 0 && minute%10 != 0 && int64(frame) < dropped {
			return 0, newSkippedFrameError(hour, minute, second, frame, rate)
		}
		totalMinutes := int64(hour)*60 + int64(minute)
		count -= dropped * (totalMinutes - totalMinutes/10)
	}
	return count, nil
}

// frameCountToFields is the inverse of fieldsToFrameCount. Drop-frame rates
// first re-inflate the count with the skipped frame numbers: 9*df per full
// 10-minute block, plus df for every elapsed dropped minute within the
// current block. A remainder below df belongs to the tail of the previous
// minute group and is bumped before the per-minute division.
func frameCountToFields(count int64, rate FrameRate) (hour, minute, second, frame int) {
	if rate.DropFrame() {
		df := int64(4)
		if rate.Rate() <= 30 {
			df = 2
		}
		per10Minutes := 17982 * df / 2
		perMinute := 1798 * df / 2
		d := count / per10Minutes
		m := count % per10Minutes
		if m < df {
			m += df
		}
		count += 9*df*d + df*((m-df)/perMinute)
	}
	nominal := int64(rate.Nominal())
	hour = int(count / (nominal * 3600) % 24)
	minute = int(count / (nominal * 60) % 60)
	second = int(count / nominal % 60)
	frame = int(count % nominal)
	return hour, minute, second, frame
}

// Hour returns the hour field.
func (t TimeCode) Hour() int { return t.hour }

// Minute returns the minute field.
func (t TimeCode) Minute() int { return t.minute }

// Second returns the second field.
func (t TimeCode) Second() int { return t.second }

// Frame returns the frame field.
func (t TimeCode) Frame() int { return t.frame }

// FrameCount returns the absolute 0-based frame index from 00:00:00:00.
func (t TimeCode) FrameCount() int64 { return t.frameCount }

// Rate returns the frame rate the timecode is bound to.
func (t TimeCode) Rate() FrameRate { return t.rate }

// Equal reports whether t and other address the same frame at interchangeable
// rates.
func (t TimeCode) Equal(other TimeCode) bool {
	return t.frameCount == other.frameCount && t.rate.Equal(other.rate)
}

// String renders the canonical form: HH:MM:SS:FF, with ; before the frames
// field for drop-frame rates. The hour is zero-padded to at least two digits
// and grows as needed.
func (t TimeCode) String() string {
	sep := ":"
	if t.rate.DropFrame() {
		sep = ";"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", t.hour, t.minute, t.second, sep, t.frame)
}
