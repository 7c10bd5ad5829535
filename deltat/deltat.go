//Package deltat estimates ΔT, the difference between dynamical time (TD) and universal
//time (UT), by piecewise cubic interpolation over a fixed historical and projected table.
package deltat

import (
	"github.com/apex/log"
)

const (
	//MinYear is the first year covered by the table (exclusive)
	MinYear = -4000
	//MaxYear is the last year covered by the table
	MaxYear = 6000
)

//segment starts at year and holds the cubic coefficients in t, where t runs from 0 at
//the start of the segment to 10 at the start of the next one.
type segment struct {
	year           float64
	a0, a1, a2, a3 float64
}

var table = []segment{
	{-4000, 108371.7, -13036.8, 392, 0},
	{-500, 17201, -627.82, 16.17, -0.3413},
	{-150, 12200.6, -346.41, 5.403, -0.1593},
	{150, 9113.8, -328.13, -1.647, 0.0377},
	{500, 5707.5, -391.41, 0.915, 0.3145},
	{900, 2203.4, -283.45, 13.034, -0.1778},
	{1300, 490.1, -57.35, 2.085, -0.0072},
	{1600, 120, -9.81, -1.532, 0.1403},
	{1700, 10.2, -0.91, 0.51, -0.037},
	{1800, 13.4, -0.72, 0.202, -0.0193},
	{1830, 7.8, -1.81, 0.416, -0.0247},
	{1860, 8.3, -0.13, -0.406, 0.0292},
	{1880, -5.4, 0.32, -0.183, 0.0173},
	{1900, -2.3, 2.06, 0.169, -0.0135},
	{1920, 21.2, 1.69, -0.304, 0.0167},
	{1940, 24.2, 1.22, -0.064, 0.0031},
	{1960, 33.2, 0.51, 0.231, -0.0109},
	{1980, 51, 1.29, -0.026, 0.0032},
	{2000, 64.7, -1.66, 5.224, -0.2905},
	{2150, 279.4, 732.95, 429.579, 0.0158},
	{MaxYear, 0, 0, 0, 0},
}

//Estimate returns TD - UT in seconds for a fractional year.
//Outside (MinYear, MaxYear] it logs a warning and returns 0.
func Estimate(year float64) float64 {
	//i ends on the first segment starting at or after year
	i := 0
	for i < len(table)-1 && year > table[i].year {
		i++
	}

	if i == 0 || year > MaxYear {
		log.WithFields(log.Fields{
			"year": year,
			"min":  MinYear,
			"max":  MaxYear,
		}).Warn("year outside the delta T table, assuming 0")
		return 0
	}

	prev, next := table[i-1], table[i]
	t1 := (year - prev.year) / (next.year - prev.year) * 10
	t2 := t1 * t1
	t3 := t2 * t1
	return prev.a0 + prev.a1*t1 + prev.a2*t2 + prev.a3*t3
}

//Year converts a Julian day (or Julian ephemeris day) to the fractional year Estimate
//expects.
func Year(jd float64) float64 {
	return (jd-2451545)/365.2425 + 2000
}

