package jdate

import (
	"fmt"
	"time"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

//DateTime is a UTC civil date-time with millisecond precision.
//Dates before 1582-10-15 are in the Julian calendar, later dates in the Gregorian calendar.
//Year uses astronomical numbering, year 0 is 1 BC.
type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

//FromTime returns the UTC fields of t, truncated to the millisecond.
//The fields are proleptic Gregorian, use JDate.SetTime for instants before 1582-10-15.
func FromTime(t time.Time) DateTime {
	u := t.UTC()
	return DateTime{
		Year:        u.Year(),
		Month:       int(u.Month()),
		Day:         u.Day(),
		Hour:        u.Hour(),
		Minute:      u.Minute(),
		Second:      u.Second(),
		Millisecond: u.Nanosecond() / int(time.Millisecond),
	}
}

//DateOf builds a DateTime from a date and the milliseconds elapsed since midnight
func DateOf(year, month, day, ms int) DateTime {
	return DateTime{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        ms / 3600000,
		Minute:      ms / 60000 % 60,
		Second:      ms / 1000 % 60,
		Millisecond: ms % 1000,
	}
}

//MillisOfDay returns the milliseconds elapsed since midnight
func (dt DateTime) MillisOfDay() int {
	return ((dt.Hour*60+dt.Minute)*60+dt.Second)*1000 + dt.Millisecond
}

//IsGregorian reports if dt falls in the Gregorian part of the calendar
func (dt DateTime) IsGregorian() bool {
	return jd.IsGregorian(dt.Year, dt.Month, dt.Day)
}

//Validate returns ErrInvalidArgument if any field is out of range for the calendar that
//applies to the date, including the days dropped by the Gregorian reform.
func (dt DateTime) Validate() error {
	if dt.Month < 1 || dt.Month > 12 {
		return invalidf("month %d out of range", dt.Month)
	}
	if dt.Day < 1 || dt.Day > daysIn(dt.Year, dt.Month) {
		return invalidf("day %d out of range for %04d-%02d", dt.Day, dt.Year, dt.Month)
	}
	if dt.Year == 1582 && dt.Month == 10 && dt.Day > 4 && dt.Day < 15 {
		return invalidf("%s was skipped by the Gregorian reform", dt.dateString())
	}
	switch {
	case dt.Hour < 0 || dt.Hour > 23:
		return invalidf("hour %d out of range", dt.Hour)
	case dt.Minute < 0 || dt.Minute > 59:
		return invalidf("minute %d out of range", dt.Minute)
	case dt.Second < 0 || dt.Second > 59:
		return invalidf("second %d out of range", dt.Second)
	case dt.Millisecond < 0 || dt.Millisecond > 999:
		return invalidf("millisecond %d out of range", dt.Millisecond)
	}
	return nil
}

//Weekday returns the day of the week
func (dt DateTime) Weekday() time.Weekday {
	return time.Weekday((jd.DayNumber(dt.Year, dt.Month, dt.Day) + 1) % 7)
}

func (dt DateTime) dateString() string {
	if dt.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -dt.Year, dt.Month, dt.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
}

//String formats dt as 2006-01-02T15:04:05.000Z
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d.%03dZ", dt.dateString(), dt.Hour, dt.Minute, dt.Second, dt.Millisecond)
}

func daysIn(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	}
	return 31
}

func isLeap(year int) bool {
	if year%4 != 0 {
		return false
	}
	if !jd.IsGregorian(year, 2, 1) {
		return true
	}
	return year%100 != 0 || year%400 == 0
}
