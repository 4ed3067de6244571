package seriallink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want orientation.Sample
		ok   bool
	}{
		{"line", "Roll(10.0) Pitch(-5.5) Yaw(90.0)\n", orientation.Sample{Roll: 10, Pitch: -5.5, Yaw: 90}, true},
		{"integers", "Roll(1) Pitch(2) Yaw(3)", orientation.Sample{Roll: 1, Pitch: 2, Yaw: 3}, true},
		{"exponent and sign", "Roll(+1.5e1) Pitch(.25) Yaw(-3.)", orientation.Sample{Roll: 15, Pitch: 0.25, Yaw: -3}, true},
		{"no separator", "Roll(1)Pitch(2)Yaw(3)", orientation.Sample{Roll: 1, Pitch: 2, Yaw: 3}, true},
		{"padded numbers", "Roll( 1.0) Pitch(\t2.0)  Yaw( 3.0)", orientation.Sample{Roll: 1, Pitch: 2, Yaw: 3}, true},
		{"leading noise", "\x00\xffYaw(7) Roll(4.0) Pitch(5.0) Yaw(6.0)\r\n", orientation.Sample{Roll: 4, Pitch: 5, Yaw: 6}, true},
		{"first of two", "Roll(1) Pitch(1) Yaw(1)\nRoll(2) Pitch(2) Yaw(2)\n", orientation.Sample{Roll: 1, Pitch: 1, Yaw: 1}, true},
		{"empty", "", orientation.Sample{}, false},
		{"partial head", "Roll(10.0) Pitch(-5", orientation.Sample{}, false},
		{"partial tail", ".5) Yaw(90.0)\n", orientation.Sample{}, false},
		{"garbage", "hello world", orientation.Sample{}, false},
		{"not a number", "Roll(abc) Pitch(1) Yaw(2)", orientation.Sample{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Parse([]byte(c.in))
			require.Equal(t, c.ok, ok)
			require.Equal(t, c.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []orientation.Sample{
		{Roll: 0, Pitch: 0, Yaw: 0},
		{Roll: -179.75, Pitch: 89.5, Yaw: 359.25},
		{Roll: 0.001, Pitch: -0.001, Yaw: 12.5},
	} {
		got, ok := Parse([]byte(s.String()))
		require.True(t, ok)
		require.InDelta(t, s.Roll, got.Roll, 0.005)
		require.InDelta(t, s.Pitch, got.Pitch, 0.005)
		require.InDelta(t, s.Yaw, got.Yaw, 0.005)
	}
}

func TestParserSingleShotDropsSplitLine(t *testing.T) {
	p := NewParser(false, 256)

	_, ok := p.Feed([]byte("Roll(10.0) Pitch(-5"))
	require.False(t, ok)
	_, ok = p.Feed([]byte(".5) Yaw(90.0)\n"))
	require.False(t, ok)
	require.Zero(t, p.Pending())
}

func TestParserReassemblesSplitLine(t *testing.T) {
	p := NewParser(true, 256)

	_, ok := p.Feed([]byte("Roll(10.0) Pitch(-5"))
	require.False(t, ok)
	require.Equal(t, len("Roll(10.0) Pitch(-5"), p.Pending())

	s, ok := p.Feed([]byte(".5) Yaw(90.0)\nRoll(1"))
	require.True(t, ok)
	require.Equal(t, orientation.Sample{Roll: 10, Pitch: -5.5, Yaw: 90}, s)
	require.Equal(t, len("\nRoll(1"), p.Pending())
}

func TestParserReassemblyTakesLatest(t *testing.T) {
	p := NewParser(true, 256)
	s, ok := p.Feed([]byte("Roll(1) Pitch(1) Yaw(1)\nRoll(2) Pitch(2) Yaw(2)\n"))
	require.True(t, ok)
	require.Equal(t, orientation.Sample{Roll: 2, Pitch: 2, Yaw: 2}, s)
}

func TestParserReassemblyBoundsTail(t *testing.T) {
	p := NewParser(true, 8)
	_, ok := p.Feed([]byte("0123456789abcdef"))
	require.False(t, ok)
	require.Equal(t, 8, p.Pending())
}

func TestParseOutOfRangeSaturates(t *testing.T) {
	got, ok := Parse([]byte("Roll(1e39) Pitch(-1e39) Yaw(45)\n"))
	require.True(t, ok)
	require.True(t, math.IsInf(float64(got.Roll), 1))
	require.True(t, math.IsInf(float64(got.Pitch), -1))
	require.Equal(t, float32(45), got.Yaw)
}

func TestParserReassemblyKeepsOutOfRangeMatch(t *testing.T) {
	p := NewParser(true, 256)
	s, ok := p.Feed([]byte("Roll(1) Pitch(2) Yaw(3)\nRoll(1e39) Pitch(0) Yaw(0)\n"))
	require.True(t, ok)
	require.True(t, math.IsInf(float64(s.Roll), 1))
}
