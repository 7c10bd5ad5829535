package jdate

import (
	"time"

	"github.com/SebastiaanKlippert/go-jdate/deltat"
)

//DeltaTFunc estimates TD - UT in seconds for a fractional year
type DeltaTFunc func(year float64) float64

//Option configures a JDate
type Option func(*config)

type config struct {
	deltaT DeltaTFunc
	now    func() time.Time
}

//WithDeltaT replaces the ΔT estimator, deltat.Estimate by default.
//A func returning 0 makes JDE equal to JD.
func WithDeltaT(f DeltaTFunc) Option {
	return func(c *config) {
		if f != nil {
			c.deltaT = f
		}
	}
}

//WithClock sets the source of "now" used by New and From(nil, ...).
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		deltaT: deltat.Estimate,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
