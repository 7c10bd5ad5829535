//Package jdate converts between calendar date-times and the Julian day based time scales
//of positional astronomy: JD, JDE, J2000, Julian centuries and millennia, Besselian and
//Julian epochs.
//
//A JDate holds one canonical representation of an instant, either a calendar date or a
//JD, and derives the other representations on demand. Derived values are memoized until
//the next setter call replaces the instant.
//
//A JDate is not safe for concurrent use. Callers sharing one must serialize the whole
//set-then-get sequence.
package jdate

import (
	"fmt"
	"math"
	"time"

	"github.com/SebastiaanKlippert/go-jdate/deltat"
	"github.com/SebastiaanKlippert/go-jdate/jd"
)

const (
	J2000Epoch        = 2451545.0     //JDE of J2000.0, 2000-01-01 12:00 TD
	B1900Epoch        = 2415020.31352 //JD of B1900.0
	UnixEpoch         = 2440587.5     //JD of 1970-01-01 00:00 UTC
	DaysPerCentury    = 36525.0
	DaysPerMillennium = 365250.0
	JulianYear        = 365.25
	TropicalYear      = 365.242198781 //Besselian year in days, after Lieske
	SecondsPerDay     = 86400.0
)

//canonical tags which representation was given last
type canonical uint8

const (
	fromNone canonical = iota
	fromDate
	fromJD
)

//field flags the values present in a cache record
type field uint16

const (
	hasDate field = 1 << iota
	hasJD
	hasJDE
	hasJ2000
	hasJDEC
	hasJDET
	hasBEpoch
	hasJEpoch
)

//cache is replaced as a whole by every setter
type cache struct {
	has    field
	date   DateTime
	jd     float64
	jde    float64
	j2000  float64
	jdec   float64
	jdet   float64
	bepoch float64
	jepoch float64
}

//JDate is an instant with lazily derived astronomical time scales.
//Use one of the constructors, the zero value holds no instant and panics when read.
type JDate struct {
	source canonical
	cache  cache
	cfg    config
}

//New returns a JDate set to the current time.
//It panics if a clock given by WithClock reports an instant before JD 0.
func New(opts ...Option) *JDate {
	j := &JDate{cfg: newConfig(opts)}
	if err := j.SetTime(j.cfg.now()); err != nil {
		panic(err)
	}
	return j
}

//NewFromDate returns a JDate set to a calendar date-time
func NewFromDate(dt DateTime, opts ...Option) (*JDate, error) {
	j := &JDate{cfg: newConfig(opts)}
	if err := j.SetDate(dt); err != nil {
		return nil, err
	}
	return j, nil
}

//NewFromTime returns a JDate set to the instant t
func NewFromTime(t time.Time, opts ...Option) (*JDate, error) {
	j := &JDate{cfg: newConfig(opts)}
	if err := j.SetTime(t); err != nil {
		return nil, err
	}
	return j, nil
}

//NewWithScale returns a JDate set to v read in scale s.
//ScaleDate has no numeric form and returns ErrInvalidArgument.
func NewWithScale(v float64, s Scale, opts ...Option) (*JDate, error) {
	j := &JDate{cfg: newConfig(opts)}
	if err := j.SetScale(s, v); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *JDate) has(f field) bool {
	return j.cache.has&f != 0
}

func (j *JDate) mustBeSet() {
	if j.source == fromNone {
		panic(fmt.Errorf("%w: use one of the jdate constructors", ErrPrecondition))
	}
}

//deltaT returns TD - UT in seconds, estimated at Julian day x
func (j *JDate) deltaT(x float64) float64 {
	f := j.cfg.deltaT
	if f == nil {
		f = deltat.Estimate
	}
	return f(deltat.Year(x))
}

//utDelay is deltaT in days
func (j *JDate) utDelay(x float64) float64 {
	return j.deltaT(x) / SecondsPerDay
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidf("%s must be a finite number, have %v", name, v)
	}
	return nil
}

//Date returns the calendar date-time
func (j *JDate) Date() DateTime {
	if !j.has(hasDate) {
		j.mustBeSet()
		y, m, d, ms := jd.ToCalendar(j.JD())
		j.cache.date = DateOf(y, m, d, ms)
		j.cache.has |= hasDate
	}
	return j.cache.date
}

//SetDate sets the instant to a calendar date-time.
//Malformed dates and dates before JD 0 (-4712-01-01 12:00) return ErrInvalidArgument.
func (j *JDate) SetDate(dt DateTime) error {
	if err := dt.Validate(); err != nil {
		return err
	}
	v := jd.FromCalendar(dt.Year, dt.Month, dt.Day, dt.MillisOfDay())
	if v < 0 {
		return invalidf("%s precedes JD 0", dt)
	}
	j.source = fromDate
	j.cache = cache{has: hasDate | hasJD, date: dt, jd: v}
	return nil
}

//Time returns the instant as a UTC time.Time
func (j *JDate) Time() time.Time {
	dt := j.Date()
	if dt.IsGregorian() {
		return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Millisecond*int(time.Millisecond), time.UTC)
	}
	//time.Time is proleptic Gregorian, go through the day count instead
	ms := math.Round((j.JD() - UnixEpoch) * jd.MillisPerDay)
	return time.UnixMilli(int64(ms)).UTC()
}

//SetTime sets the instant to t, truncated to the millisecond
func (j *JDate) SetTime(t time.Time) error {
	dt := FromTime(t)
	if dt.IsGregorian() {
		return j.SetDate(dt)
	}
	//Before the reform the Gregorian fields of t name a different Julian calendar date
	return j.SetJD(UnixEpoch + float64(t.UnixMilli())/jd.MillisPerDay)
}

//JD returns the Julian Day (universal time)
func (j *JDate) JD() float64 {
	if !j.has(hasJD) {
		j.mustBeSet()
		dt := j.cache.date
		j.cache.jd = jd.FromCalendar(dt.Year, dt.Month, dt.Day, dt.MillisOfDay())
		j.cache.has |= hasJD
	}
	return j.cache.jd
}

//SetJD sets the instant to a Julian Day (universal time).
//Negative or non finite values return ErrInvalidArgument.
func (j *JDate) SetJD(v float64) error {
	if err := checkFinite("JD", v); err != nil {
		return err
	}
	if v < 0 {
		return invalidf("JD must be >= 0, have %v", v)
	}
	j.source = fromJD
	j.cache = cache{has: hasJD, jd: v}
	return nil
}

//JDE returns the Julian Ephemeris Day (dynamical time)
func (j *JDate) JDE() float64 {
	if !j.has(hasJDE) {
		v := j.JD()
		j.cache.jde = v + j.utDelay(v)
		j.cache.has |= hasJDE
	}
	return j.cache.jde
}

//SetJDE sets the instant to a Julian Ephemeris Day (dynamical time).
//ΔT is estimated at the JDE itself.
func (j *JDate) SetJDE(v float64) error {
	if err := checkFinite("JDE", v); err != nil {
		return err
	}
	if err := j.SetJD(v - j.utDelay(v)); err != nil {
		return err
	}
	j.cache.jde = v
	j.cache.has |= hasJDE
	return nil
}

//J2000 returns the days since J2000.0 (dynamical time)
func (j *JDate) J2000() float64 {
	if !j.has(hasJ2000) {
		j.cache.j2000 = j.JDE() - J2000Epoch
		j.cache.has |= hasJ2000
	}
	return j.cache.j2000
}

//SetJ2000 sets the instant to a number of days since J2000.0
func (j *JDate) SetJ2000(v float64) error {
	if err := checkFinite("J2000", v); err != nil {
		return err
	}
	if err := j.SetJDE(v + J2000Epoch); err != nil {
		return err
	}
	j.cache.j2000 = v
	j.cache.has |= hasJ2000
	return nil
}

//JDEC returns the Julian centuries since J2000.0
func (j *JDate) JDEC() float64 {
	if !j.has(hasJDEC) {
		j.cache.jdec = j.J2000() / DaysPerCentury
		j.cache.has |= hasJDEC
	}
	return j.cache.jdec
}

//SetJDEC sets the instant to a number of Julian centuries since J2000.0
func (j *JDate) SetJDEC(v float64) error {
	if err := checkFinite("JDEC", v); err != nil {
		return err
	}
	if err := j.SetJ2000(v * DaysPerCentury); err != nil {
		return err
	}
	j.cache.jdec = v
	j.cache.has |= hasJDEC
	return nil
}

//JDET returns the Julian millennia since J2000.0
func (j *JDate) JDET() float64 {
	if !j.has(hasJDET) {
		j.cache.jdet = j.J2000() / DaysPerMillennium
		j.cache.has |= hasJDET
	}
	return j.cache.jdet
}

//SetJDET sets the instant to a number of Julian millennia since J2000.0
func (j *JDate) SetJDET(v float64) error {
	if err := checkFinite("JDET", v); err != nil {
		return err
	}
	if err := j.SetJ2000(v * DaysPerMillennium); err != nil {
		return err
	}
	j.cache.jdet = v
	j.cache.has |= hasJDET
	return nil
}

//BEpoch returns the Besselian epoch (Lieske)
func (j *JDate) BEpoch() float64 {
	if !j.has(hasBEpoch) {
		j.cache.bepoch = 1900.0 + (j.JD()-B1900Epoch)/TropicalYear
		j.cache.has |= hasBEpoch
	}
	return j.cache.bepoch
}

//SetBEpoch sets the instant to a Besselian epoch
func (j *JDate) SetBEpoch(v float64) error {
	if err := checkFinite("BEpoch", v); err != nil {
		return err
	}
	if err := j.SetJD((v-1900.0)*TropicalYear + B1900Epoch); err != nil {
		return err
	}
	j.cache.bepoch = v
	j.cache.has |= hasBEpoch
	return nil
}

//JEpoch returns the Julian epoch
func (j *JDate) JEpoch() float64 {
	if !j.has(hasJEpoch) {
		j.cache.jepoch = j.J2000()/JulianYear + 2000.0
		j.cache.has |= hasJEpoch
	}
	return j.cache.jepoch
}

//SetJEpoch sets the instant to a Julian epoch
func (j *JDate) SetJEpoch(v float64) error {
	if err := checkFinite("JEpoch", v); err != nil {
		return err
	}
	if err := j.SetJ2000((v - 2000.0) * JulianYear); err != nil {
		return err
	}
	j.cache.jepoch = v
	j.cache.has |= hasJEpoch
	return nil
}

//DeltaT returns the estimated TD - UT in seconds at the current instant
func (j *JDate) DeltaT() float64 {
	return j.deltaT(j.JD())
}

//Scale returns the instant in a numeric scale, ScaleDate returns the JD
func (j *JDate) Scale(s Scale) float64 {
	switch s {
	case ScaleJDE:
		return j.JDE()
	case ScaleJ2000:
		return j.J2000()
	case ScaleJDEC:
		return j.JDEC()
	case ScaleJDET:
		return j.JDET()
	case ScaleBEpoch:
		return j.BEpoch()
	case ScaleJEpoch:
		return j.JEpoch()
	}
	return j.JD()
}

//SetScale sets the instant to v read in scale s
func (j *JDate) SetScale(s Scale, v float64) error {
	switch s {
	case ScaleJD:
		return j.SetJD(v)
	case ScaleJDE:
		return j.SetJDE(v)
	case ScaleJ2000:
		return j.SetJ2000(v)
	case ScaleJDEC:
		return j.SetJDEC(v)
	case ScaleJDET:
		return j.SetJDET(v)
	case ScaleBEpoch:
		return j.SetBEpoch(v)
	case ScaleJEpoch:
		return j.SetJEpoch(v)
	}
	return invalidf("scale %s has no numeric form", s)
}

func (j *JDate) String() string {
	return fmt.Sprintf("%s (JD %.6f)", j.Date(), j.JD())
}

//Source returns the scale of the canonical representation, ScaleDate or ScaleJD
func (j *JDate) Source() Scale {
	j.mustBeSet()
	if j.source == fromDate {
		return ScaleDate
	}
	return ScaleJD
}
