package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOrdering(t *testing.T) {
	d := NewDate(2024, time.March, 31)
	require.True(t, d.Before(NewDate(2024, time.April, 1)))
	require.True(t, NewDate(2024, time.April, 1).After(d))
	require.False(t, d.Before(d))
}

func TestDateArithmeticAcrossMonth(t *testing.T) {
	d := NewDate(2024, time.February, 29)
	require.Equal(t, NewDate(2024, time.March, 1), d.Next())
	require.Equal(t, NewDate(2024, time.February, 28), d.Prev())
	require.Equal(t, NewDate(2024, time.March, 7), d.AddDays(7))
}

func TestLastSundayOnOrBefore(t *testing.T) {
	// 2024-05-15 is a Wednesday, 2024-05-12 is the preceding Sunday.
	require.Equal(t, NewDate(2024, time.May, 12), LastSundayOnOrBefore(NewDate(2024, time.May, 15)))

	// A Sunday maps to itself.
	sunday := NewDate(2024, time.May, 12)
	require.Equal(t, sunday, LastSundayOnOrBefore(sunday))
}

func TestDateScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-05-15"))
	require.Equal(t, NewDate(2024, time.May, 15), d)

	v, err := d.Value()
	require.NoError(t, err)
	require.Equal(t, "2024-05-15", v)

	require.Error(t, d.Scan(123))
}

func TestParse(t *testing.T) {
	d, err := Parse("2023-12-31")
	require.NoError(t, err)
	require.Equal(t, 0, d.Weekday()) // a Sunday

	_, err = Parse("31/12/2023")
	require.Error(t, err)
}
