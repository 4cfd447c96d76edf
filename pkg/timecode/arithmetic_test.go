package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeCode(t *testing.T, text string, rate FrameRate) TimeCode {
	t.Helper()
	tc, err := FromString(text, rate)
	require.NoError(t, err)
	return tc
}

func TestCoerce(t *testing.T) {
	t.Run("Text parses at the target rate", func(t *testing.T) {
		tc, err := Coerce(Text("00:00:10:00"), FrameRateFrom(25, false))
		require.NoError(t, err)
		assert.Equal(t, int64(250), tc.FrameCount())
	})

	t.Run("Frames builds from a count", func(t *testing.T) {
		tc, err := Coerce(Frames(1800), NTSC2997DF)
		require.NoError(t, err)
		assert.Equal(t, "00:01:00;02", tc.String())
	})

	t.Run("TimeCode passes through unchanged", func(t *testing.T) {
		original := mustTimeCode(t, "00:01:00;02", NTSC2997DF)
		tc, err := Coerce(original, NTSC2997DF)
		require.NoError(t, err)
		assert.Equal(t, original, tc)
	})

	t.Run("TimeCode at another rate is rejected", func(t *testing.T) {
		other := mustTimeCode(t, "00:00:10:00", FPS24)
		_, err := Coerce(other, FrameRateFrom(25, false))
		require.Error(t, err)

		tcErr, ok := GetError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeRateMismatch, tcErr.Type)
	})

	t.Run("Invalid target rate is rejected", func(t *testing.T) {
		_, err := Coerce(Frames(10), InvalidFrameRate(false))
		require.Error(t, err)

		tcErr, ok := GetError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidRate, tcErr.Type)
	})
}

func TestAdd(t *testing.T) {
	t.Run("Single frame across the drop boundary", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:59;29", NTSC2997DF)
		sum, err := tc.Add(Frames(1))
		require.NoError(t, err)
		assert.Equal(t, "00:01:00;02", sum.String())
		assert.Equal(t, int64(1800), sum.FrameCount())
	})

	t.Run("Receiver is unchanged", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:59;29", NTSC2997DF)
		_, err := tc.Add(Frames(1))
		require.NoError(t, err)
		assert.Equal(t, "00:00:59;29", tc.String())
		assert.Equal(t, int64(1799), tc.FrameCount())
	})

	t.Run("Mixed operand kinds", func(t *testing.T) {
		rate := FrameRateFrom(25, false)
		tc := mustTimeCode(t, "00:00:10:00", rate)
		other := mustTimeCode(t, "00:00:01:00", rate)

		sum, err := tc.Add(Text("00:00:05:00"), Frames(5), other)
		require.NoError(t, err)
		// 250 + 125 + 5 + 25
		assert.Equal(t, int64(405), sum.FrameCount())
		assert.Equal(t, "00:00:16:05", sum.String())
	})

	t.Run("No operands returns the same address", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:10:00", FPS24)
		sum, err := tc.Add()
		require.NoError(t, err)
		assert.True(t, tc.Equal(sum))
	})

	t.Run("Same numeric rate with different drop flag is allowed", func(t *testing.T) {
		df := mustTimeCode(t, "00:00:59;29", NTSC2997DF)
		ndf := mustTimeCode(t, "00:00:01:00", NTSC2997)

		sum, err := df.Add(ndf)
		require.NoError(t, err)
		assert.Equal(t, int64(1829), sum.FrameCount())
		assert.True(t, sum.Rate().Equal(NTSC2997DF))
	})

	t.Run("Different rate fails", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:10:00", FrameRateFrom(25, false))
		other := mustTimeCode(t, "00:00:10:00", FPS24)

		_, err := tc.Add(other)
		require.Error(t, err)

		tcErr, ok := GetError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeRateMismatch, tcErr.Type)
	})

	t.Run("Text operand with a conflicting embedded rate fails", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:10:00", FrameRateFrom(25, false))
		_, err := tc.Add(Text("00:00:01:00@24"))
		require.Error(t, err)

		tcErr, ok := GetError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeRateConflict, tcErr.Type)
	})
}

func TestSubtract(t *testing.T) {
	t.Run("Single frame back across the drop boundary", func(t *testing.T) {
		tc := mustTimeCode(t, "00:01:00;02", NTSC2997DF)
		diff, err := tc.Subtract(Frames(1))
		require.NoError(t, err)
		assert.Equal(t, "00:00:59;29", diff.String())
	})

	t.Run("Multiple operands", func(t *testing.T) {
		rate := FrameRateFrom(25, false)
		tc := mustTimeCode(t, "01:00:00:00", rate)

		diff, err := tc.Subtract(Text("00:30:00:00"), Frames(25))
		require.NoError(t, err)
		assert.Equal(t, "00:29:59:00", diff.String())
	})

	t.Run("Result before zero fails", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:01:00", FPS24)
		_, err := tc.Subtract(Frames(100))
		require.Error(t, err)

		tcErr, ok := GetError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeInvalidTimeCode, tcErr.Type)
	})

	t.Run("Subtracting to exactly zero is fine", func(t *testing.T) {
		tc := mustTimeCode(t, "00:00:01:00", FPS24)
		diff, err := tc.Subtract(Frames(24))
		require.NoError(t, err)
		assert.Equal(t, "00:00:00:00", diff.String())
		assert.Zero(t, diff.FrameCount())
	})

	t.Run("Add then subtract returns to the start", func(t *testing.T) {
		tc := mustTimeCode(t, "00:59:40;02", NTSC2997DF)
		forward, err := tc.Add(Frames(12345))
		require.NoError(t, err)
		back, err := forward.Subtract(Frames(12345))
		require.NoError(t, err)
		assert.True(t, tc.Equal(back))
	})
}
