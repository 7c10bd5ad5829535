package jdate

import (
	"time"
)

//This file contains the casting helpers behind From, which accepts untyped values.

//toFloat64 returns the value of any Go integer or float kind
func toFloat64(in interface{}) (float64, bool) {
	switch v := in.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

//toTime accepts time.Time and non nil *time.Time
func toTime(in interface{}) (time.Time, bool) {
	switch v := in.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

//toDateTime accepts DateTime and non nil *DateTime
func toDateTime(in interface{}) (DateTime, bool) {
	switch v := in.(type) {
	case DateTime:
		return v, true
	case *DateTime:
		if v != nil {
			return *v, true
		}
	}
	return DateTime{}, false
}

//From builds a JDate from an untyped value d read in the scale named dtype.
//
//d may be nil (now), a time.Time, a DateTime or any Go number. An empty dtype means
//"date" for time values and "jd" for numbers. Other kinds of d, unknown scale names and
//values that do not fit the scale return ErrInvalidArgument.
func From(d interface{}, dtype string, opts ...Option) (*JDate, error) {
	scale := ScaleJD
	if dtype != "" {
		var err error
		if scale, err = ParseScale(dtype); err != nil {
			return nil, err
		}
	}

	if d == nil {
		return New(opts...), nil
	}

	if f, ok := toFloat64(d); ok {
		if scale == ScaleDate {
			return nil, invalidf("scale date needs a time value, have %T", d)
		}
		return NewWithScale(f, scale, opts...)
	}

	if dtype != "" && scale != ScaleDate {
		return nil, invalidf("scale %s needs a number, have %T", scale, d)
	}
	if t, ok := toTime(d); ok {
		return NewFromTime(t, opts...)
	}
	if dt, ok := toDateTime(d); ok {
		return NewFromDate(dt, opts...)
	}
	return nil, invalidf("unsupported value of type %T", d)
}
