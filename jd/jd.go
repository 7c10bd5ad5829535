//Package jd holds the numeric Julian day algorithms.
//
//Calendar dates are in the hybrid calendar used by astronomers: Julian calendar up to
//1582-10-04, Gregorian calendar from 1582-10-15 on. Years use astronomical numbering
//(year 0 is 1 BC).
package jd

import (
	"math"

	usno "github.com/carlosjhr64/jd"
)

const (
	//MillisPerDay is the number of milliseconds in a (leap second free) day
	MillisPerDay = 86400000

	//GregorianStart is 1582-10-15 encoded as year*372 + month*31 + day
	GregorianStart = 588829

	//GregorianDayNumber is the Julian day number of 1582-10-15
	GregorianDayNumber = 2299161
)

//IsGregorian reports if the date is on or after the Gregorian reform.
//Dates in the 1582-10-05..14 gap report false.
func IsGregorian(year, month, day int) bool {
	return year*372+month*31+day >= GregorianStart
}

//FromCalendar converts a civil date plus the milliseconds elapsed since midnight to a
//Julian day. The result is only meaningful for dates on or after -4712-01-01.
func FromCalendar(year, month, day, ms int) float64 {
	//January and February count as months 13 and 14 of the previous year.
	//The shift keeps year*372 + month*31 unchanged, so the reform test is unaffected.
	if month <= 2 {
		month += 12
		year--
	}

	c := 0.0
	if IsGregorian(year, month, day) {
		a := math.Floor(float64(year) / 100)
		c = 2 - a + math.Floor(a/4)
	}

	d := float64(day) + float64(ms)/MillisPerDay
	return math.Floor(365.2500001*float64(year+4716)) + math.Floor(30.6*float64(month+1)) + d + c - 1524.5
}

//ToCalendar converts a Julian day (>= 0) to a civil date plus the milliseconds elapsed
//since midnight.
func ToCalendar(jd float64) (year, month, day, ms int) {
	//Move the day boundary from noon to midnight.
	jd += 0.5
	z := math.Floor(jd)

	ms, carry := splitDay(jd - z)
	if carry {
		z++
	}
	year, month, day = YMD(int(z))
	return year, month, day, ms
}

//splitDay turns a day fraction into milliseconds since midnight. Hours, minutes and
//seconds are truncated in turn, the milliseconds get half a unit added against
//underflow and overflow is carried upward. carry is set when the result rolls into
//the next day.
func splitDay(f float64) (ms int, carry bool) {
	x := f * 24
	hours := int(x)
	x = (x - float64(hours)) * 60
	minutes := int(x)
	x = (x - float64(minutes)) * 60
	seconds := int(x)
	millis := int((x-float64(seconds))*1000 + 0.5)

	if millis >= 1000 {
		millis -= 1000
		seconds++
	}
	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		hours++
	}
	if hours >= 24 {
		hours -= 24
		carry = true
	}
	return ((hours*60+minutes)*60+seconds)*1000 + millis, carry
}

//YMD converts a Julian day number to a civil year, month and day (Meeus, chapter 7)
// y, m, d := jd.YMD(2299160)
// y==1582 && m==10 && d==4 //=> true
func YMD(n int) (year, month, day int) {
	a := float64(n)
	if n >= GregorianDayNumber {
		alpha := math.Floor((a - 1867216.25) / 36524.25)
		a += 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

//DayNumber converts a civil date to its Julian day number, the Julian day at noon.
//Valid for years from -4800 on.
// jd.DayNumber(2006, 1, 2) == 2453738 //=> true
func DayNumber(year, month, day int) int {
	if IsGregorian(year, month, day) {
		return usno.YMD2J(year, month, day)
	}
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

//J2YMD converts a Julian day number to a proleptic Gregorian year, month and day
// y, m, d := jd.J2YMD(2453738);
// y==2006 && m==1 && d==2 //=> true
func J2YMD(d int) (int, int, int) {
	l := d + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	k := l - 2447*j/80
	l = j / 11
	j = j + 2 - 12*l
	i = 100*(n-49) + i + l
	return i, j, k
}
