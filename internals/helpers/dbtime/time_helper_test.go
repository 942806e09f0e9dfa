package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLayouts(t *testing.T) {
	for _, in := range []string{
		"2025-01-01",
		"2025-01-01 08:30:00",
		"2025-01-01T08:30:00.000000Z",
		"2025-01-01T08:30:00+07:00",
	} {
		got, ok := ParseDate(in)
		require.True(t, ok, in)
		assert.Equal(t, 2025, got.Year(), in)
	}

	_, ok := ParseDate("kemarin sore")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParseDateZones(t *testing.T) {
	d, ok := ParseDate("2025-01-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), d)

	dt, ok := ParseDate("2025-01-01 08:30:00")
	require.True(t, ok)
	assert.Equal(t, Location(), dt.Location())

	// tengah malam UTC, sembilan hari kemudian
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 9, DaysOverdue(d, now))
}

func TestDaysOverdueCeil(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, Location())
	assert.Equal(t, 9, DaysOverdue(base, base.AddDate(0, 0, 9)))
	assert.Equal(t, 1, DaysOverdue(base, base.Add(time.Hour)))
	assert.Equal(t, 3, DaysOverdue(base, base.Add(-50*time.Hour)))
	assert.Equal(t, 0, DaysOverdue(base, base))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, Location())
	cases := map[time.Duration]string{
		10 * time.Second:    "baru saja",
		5 * time.Minute:     "5 menit yang lalu",
		3 * time.Hour:       "3 jam yang lalu",
		30 * time.Hour:      "kemarin",
		4 * 24 * time.Hour:  "4 hari yang lalu",
		15 * 24 * time.Hour: "2 minggu yang lalu",
	}
	for ago, want := range cases {
		assert.Equal(t, want, RelativeTime(now.Add(-ago), now))
	}
	assert.Equal(t, "9 Jan 2025", RelativeTime(time.Date(2025, 1, 9, 10, 0, 0, 0, Location()), now))
}
