package jdate

import (
	"strconv"

	"golang.org/x/text/cases"
)

//Scale selects one of the representations of an instant
type Scale int

const (
	ScaleDate   Scale = iota //Calendar date-time
	ScaleJD                  //Julian Day, universal time
	ScaleJDE                 //Julian Ephemeris Day, dynamical time
	ScaleJ2000               //Days since J2000.0 (JDE - 2451545)
	ScaleJDEC                //Julian centuries since J2000.0
	ScaleJDET                //Julian millennia since J2000.0
	ScaleBEpoch              //Besselian epoch
	ScaleJEpoch              //Julian epoch
)

var scaleNames = [...]string{
	ScaleDate:   "date",
	ScaleJD:     "jd",
	ScaleJDE:    "jde",
	ScaleJ2000:  "j2000",
	ScaleJDEC:   "jdec",
	ScaleJDET:   "jdet",
	ScaleBEpoch: "bepoch",
	ScaleJEpoch: "jepoch",
}

//ParseScale returns the Scale for a name, ignoring case.
//Unknown names return ErrInvalidArgument.
func ParseScale(name string) (Scale, error) {
	//Casers keep state, so one per call
	key := cases.Fold().String(name)
	for s, n := range scaleNames {
		if n == key {
			return Scale(s), nil
		}
	}
	return 0, invalidf("unknown scale %q", name)
}

func (s Scale) valid() bool {
	return s >= ScaleDate && s <= ScaleJEpoch
}

func (s Scale) String() string {
	if !s.valid() {
		return "Scale(" + strconv.Itoa(int(s)) + ")"
	}
	return scaleNames[s]
}

//MarshalText implements encoding.TextMarshaler
func (s Scale) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, invalidf("unknown scale %d", int(s))
	}
	return []byte(scaleNames[s]), nil
}

//UnmarshalText implements encoding.TextUnmarshaler
func (s *Scale) UnmarshalText(text []byte) error {
	v, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
