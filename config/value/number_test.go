package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber_Valid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text  string
		float float64
	}{
		{"0", 0},
		{"-12", -12},
		{"30", 30},
		{"1.5", 1.5},
		{"2e3", 2000},
		{"-2.5E-1", -0.25},
		{"18446744073709551616", 18446744073709551616},
	}

	for _, testCase := range testCases {
		t.Run(testCase.text, func(t *testing.T) {
			t.Parallel()

			number, err := ParseNumber(testCase.text)
			require.NoError(t, err)
			assert.InDelta(t, testCase.float, number.Float64(), 1e-9)
			assert.Equal(t, testCase.text, number.String())
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "+1", "01", "1.", ".5", "1/2", "0x10", "1e", "abc", "1e99999"} {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			_, err := ParseNumber(text)
			require.ErrorIs(t, err, ErrInvalidNumber)
		})
	}
}

func TestNumber_FixedPointInt64(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		text   string
		point  uint16
		want   int64
		wantOK bool
	}{
		{name: "integer", text: "30", point: 0, want: 30, wantOK: true},
		{name: "negative", text: "-7", point: 0, want: -7, wantOK: true},
		{name: "exponent", text: "1e2", point: 0, want: 100, wantOK: true},
		{name: "trailing zero decimals", text: "4.00", point: 0, want: 4, wantOK: true},
		{name: "fraction", text: "1.5", point: 0, wantOK: false},
		{name: "fraction scaled", text: "1.5", point: 1, want: 15, wantOK: true},
		{name: "max", text: "9223372036854775807", point: 0, want: math.MaxInt64, wantOK: true},
		{name: "overflow", text: "9223372036854775808", point: 0, wantOK: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			number, err := ParseNumber(testCase.text)
			require.NoError(t, err)

			got, ok := number.FixedPointInt64(testCase.point)
			require.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestNumber_FixedPointUint64(t *testing.T) {
	t.Parallel()

	number, err := ParseNumber("18446744073709551615")
	require.NoError(t, err)

	got, ok := number.FixedPointUint64(0)
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, ok = NumberFromInt64(-1).FixedPointUint64(0)
	assert.False(t, ok, "negative numbers are not unsigned")

	_, ok = Number{}.FixedPointUint64(0)
	assert.True(t, ok, "zero Number is 0")
}

func TestNumberFrom_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-42", NumberFromInt64(-42).String())
	assert.Equal(t, "1000", NumberFromUint64(1000).String())
	assert.Equal(t, "0", Number{}.String())
}
