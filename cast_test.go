package jdate

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestToFloat64(t *testing.T) {
	for _, in := range []interface{}{123, int8(123), int16(123), int32(123), int64(123), uint(123), uint8(123), uint16(123), uint32(123), uint64(123), float32(123), 123.0} {
		f, ok := toFloat64(in)
		if !ok || f != 123 {
			t.Errorf("%T: want %f, have %f", in, 123.0, f)
		}
	}
	for _, in := range []interface{}{"123.456", true, []string{"123"}, nil} {
		if _, ok := toFloat64(in); ok {
			t.Errorf("%T: want no number", in)
		}
	}
}

func TestToTime(t *testing.T) {
	now := time.Now()
	if have, ok := toTime(now); !ok || !have.Equal(now) {
		t.Errorf("Want %v, have %v", now, have)
	}
	if have, ok := toTime(&now); !ok || !have.Equal(now) {
		t.Errorf("Want %v, have %v", now, have)
	}
	var nilTime *time.Time
	if _, ok := toTime(nilTime); ok {
		t.Error("Want nil *time.Time to be rejected")
	}
	if _, ok := toTime("123.456"); ok {
		t.Error("Want string to be rejected")
	}
}

func TestToDateTime(t *testing.T) {
	dt := DateTime{Year: 2000, Month: 1, Day: 1}
	if have, ok := toDateTime(dt); !ok || have != dt {
		t.Errorf("Want %v, have %v", dt, have)
	}
	if have, ok := toDateTime(&dt); !ok || have != dt {
		t.Errorf("Want %v, have %v", dt, have)
	}
	if _, ok := toDateTime(time.Now()); ok {
		t.Error("Want time.Time to be rejected")
	}
}

func TestFrom(t *testing.T) {
	noDelay := WithDeltaT(func(float64) float64 { return 0 })
	fixed := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	valid := []struct {
		d     interface{}
		dtype string
		jd    float64
	}{
		{d: 1223323, dtype: "", jd: 1223323},
		{d: int64(2451545), dtype: "JD", jd: 2451545},
		{d: 0.5, dtype: "JDEC", jd: 2451545 + 18262.5},
		{d: float32(100), dtype: "j2000", jd: 2451645},
		{d: 1900, dtype: "bepoch", jd: 2415020.31352},
		{d: fixed, dtype: "", jd: 2451545},
		{d: &fixed, dtype: "date", jd: 2451545},
		{d: DateTime{Year: 1957, Month: 10, Day: 4, Hour: 19, Minute: 26, Second: 24}, dtype: "Date", jd: 2436116.31},
		{d: nil, dtype: "", jd: 2451545},
		{d: nil, dtype: "jde", jd: 2451545},
	}
	for _, tt := range valid {
		j, err := From(tt.d, tt.dtype, noDelay, WithClock(func() time.Time { return fixed }))
		if err != nil {
			t.Errorf("From(%v, %q): %s", tt.d, tt.dtype, err)
			continue
		}
		if have := j.JD(); math.Abs(have-tt.jd) > 1e-6 {
			t.Errorf("From(%v, %q): want JD %f, have %f", tt.d, tt.dtype, tt.jd, have)
		}
	}

	invalid := []struct {
		d     interface{}
		dtype string
	}{
		{d: "123", dtype: ""},
		{d: []string{"123"}, dtype: ""},
		{d: false, dtype: ""},
		{d: 123, dtype: "cc"},
		{d: nil, dtype: "cc"},
		{d: fixed, dtype: "jd"},
		{d: DateTime{Year: 2000, Month: 1, Day: 1}, dtype: "jdec"},
		{d: 5.0, dtype: "date"},
		{d: -1, dtype: ""},
		{d: math.NaN(), dtype: "jde"},
		{d: DateTime{Year: 2000, Month: 2, Day: 30}, dtype: ""},
	}
	for _, tt := range invalid {
		if _, err := From(tt.d, tt.dtype); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("From(%v, %q): want ErrInvalidArgument, have %v", tt.d, tt.dtype, err)
		}
	}
}
