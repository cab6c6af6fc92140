package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"utc", "Thu Jan 1 00:00:00 1970 +0000", 0},
		{"positive offset", "Thu Jan 1 01:00:00 1970 +0100", 0},
		{"negative offset", "Thu Apr 7 15:13:13 2005 -0700", 1112911993},
		{"two digit day", "Tue Nov 14 22:13:20 2023 +0000", 1700000000},
		{"surrounding space", "  Tue Nov 14 22:13:20 2023 +0000 ", 1700000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateMismatch(t *testing.T) {
	inputs := []string{
		"",
		"2005-04-07T15:13:13-07:00",
		"Thu Apr 7 15:13:13 2005",
		"Thu Apr 7 25:13:13 2005 -0700",
	}

	for _, input := range inputs {
		_, err := ParseDate(input)
		assert.True(t, errors.Is(err, ErrDateFormat), "input %q", input)
	}
}

func TestFormatMismatch(t *testing.T) {
	msg := FormatMismatch("yesterday")
	assert.Equal(t, "The timestamp 'yesterday' does not match the expected format of 'Thu Apr 7 15:13:13 2005 -0700'", msg)

	// the example must itself parse
	ts, err := ParseDate(DateExample)
	require.NoError(t, err)
	assert.Equal(t, int64(1112911993), ts)
}
