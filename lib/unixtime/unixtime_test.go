package unixtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToMillis(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	cases := []struct {
		in       time.Time
		expected int64
	}{
		{
			in:       time.Date(2021, time.October, 4, 0, 0, 0, 0, time.UTC),
			expected: 1633305600000,
		},
		{
			// non-UTC zones are normalized before conversion
			in:       time.Date(2021, time.October, 3, 19, 0, 0, 0, est),
			expected: 1633305600000,
		},
		{
			// sub-second precision is truncated
			in:       time.Date(2021, time.October, 4, 0, 0, 0, 999_000_000, time.UTC),
			expected: 1633305600000,
		},
		{
			in:       time.Unix(0, 0),
			expected: 0,
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, ToMillis(test.in))
	}
}

func TestSecondsMillisAgree(t *testing.T) {
	instants := []time.Time{
		time.Date(2021, time.October, 4, 12, 30, 45, 123, time.UTC),
		time.Date(1999, time.January, 1, 0, 0, 0, 0, time.FixedZone("X", 3600)),
		time.Now(),
	}
	for _, instant := range instants {
		require.Equal(t, ToSeconds(instant)*1000, ToMillis(instant))
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in       string
		expected time.Time
		fails    bool
	}{
		{
			in:       "2021-10-04",
			expected: time.Date(2021, time.October, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			in:       "2021-10-04T13:45:59",
			expected: time.Date(2021, time.October, 4, 13, 45, 59, 0, time.UTC),
		},
		{
			in:    "10/04/2021",
			fails: true,
		},
		{
			in:    "2021-10-04 13:45:59",
			fails: true,
		},
	}

	for _, test := range cases {
		parsed, err := ParseDate(test.in)
		if test.fails {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.True(t, parsed.Equal(test.expected), "parsing %q", test.in)
	}
}
