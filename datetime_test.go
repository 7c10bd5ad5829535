package jdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeValidate(t *testing.T) {
	valid := []DateTime{
		{Year: 2000, Month: 2, Day: 29},
		{Year: 1900, Month: 2, Day: 28},
		{Year: 1500, Month: 2, Day: 29},
		{Year: 1582, Month: 10, Day: 4, Hour: 23, Minute: 59, Second: 59, Millisecond: 999},
		{Year: 1582, Month: 10, Day: 15},
		{Year: 0, Month: 2, Day: 29},
		{Year: -4712, Month: 1, Day: 1},
		{Year: 2023, Month: 4, Day: 30},
	}
	for _, dt := range valid {
		assert.NoError(t, dt.Validate(), dt.String())
	}

	invalid := []DateTime{
		{Year: 2000, Month: 0, Day: 1},
		{Year: 2000, Month: 13, Day: 1},
		{Year: 2000, Month: 1, Day: 0},
		{Year: 2000, Month: 1, Day: 32},
		{Year: 2023, Month: 4, Day: 31},
		{Year: 2100, Month: 2, Day: 29},
		{Year: 1582, Month: 10, Day: 5},
		{Year: 1582, Month: 10, Day: 14},
		{Year: 2000, Month: 1, Day: 1, Hour: -1},
		{Year: 2000, Month: 1, Day: 1, Minute: 60},
		{Year: 2000, Month: 1, Day: 1, Second: 60},
		{Year: 2000, Month: 1, Day: 1, Millisecond: 1000},
	}
	for _, dt := range invalid {
		assert.ErrorIs(t, dt.Validate(), ErrInvalidArgument, dt.String())
	}
}

func TestDateTimeString(t *testing.T) {
	assert.Equal(t, "1987-04-10T19:21:00.000Z", sidereal.String())
	assert.Equal(t, "0333-01-27T12:00:00.007Z", DateTime{Year: 333, Month: 1, Day: 27, Hour: 12, Millisecond: 7}.String())
	assert.Equal(t, "-4712-01-01T12:00:00.000Z", DateTime{Year: -4712, Month: 1, Day: 1, Hour: 12}.String())
}

func TestDateOf(t *testing.T) {
	dt := DateOf(1987, 4, 10, 69660123)
	assert.Equal(t, DateTime{Year: 1987, Month: 4, Day: 10, Hour: 19, Minute: 21, Second: 0, Millisecond: 123}, dt)
	assert.Equal(t, 69660123, dt.MillisOfDay())
	assert.Equal(t, 86399999, DateOf(2000, 1, 1, 86399999).MillisOfDay())
}

func TestFromTime(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 30, 15, 999999999, time.FixedZone("UTC-2", -2*3600))
	assert.Equal(t, DateTime{Year: 2024, Month: 3, Day: 1, Hour: 1, Minute: 30, Second: 15, Millisecond: 999}, FromTime(in))
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, time.Friday, sidereal.Weekday())
	assert.Equal(t, time.Saturday, DateTime{Year: 2000, Month: 1, Day: 1}.Weekday())
	//Julian 1582-10-04 was a Thursday, the next day Gregorian 1582-10-15 a Friday
	assert.Equal(t, time.Thursday, DateTime{Year: 1582, Month: 10, Day: 4}.Weekday())
	assert.Equal(t, time.Friday, DateTime{Year: 1582, Month: 10, Day: 15}.Weekday())
	assert.Equal(t, time.Monday, DateTime{Year: -4712, Month: 1, Day: 1}.Weekday())

	for _, tm := range []time.Time{time.Now(), time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1600, 3, 1, 0, 0, 0, 0, time.UTC)} {
		assert.Equal(t, tm.UTC().Weekday(), FromTime(tm).Weekday(), tm.String())
	}
}
