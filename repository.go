package jdate

import (
	"math"
)

//Repository memoizes integer powers of the Julian century, millennium and ephemeris day
//of a JDate. Series expansions in astronomical algorithms evaluate these many times per
//instant.
//
//The Repository does not own the JDate, it notices a changed instant on the next call.
type Repository struct {
	space *CacheSpace[powerKey, float64]
}

type powerKey struct {
	scale Scale
	exp   int
}

//NewRepository returns a Repository bound to j
func NewRepository(j *JDate) *Repository {
	return &Repository{space: NewCacheSpace[powerKey, float64](j)}
}

//On binds the Repository to j and drops all memoized powers
func (r *Repository) On(j *JDate) *Repository {
	r.space.On(j)
	return r
}

//JDate returns the bound JDate
func (r *Repository) JDate() *JDate {
	return r.space.JDate()
}

//CenturyPower returns JDEC^n
func (r *Repository) CenturyPower(n int) float64 {
	return r.power(ScaleJDEC, n)
}

//MillenniumPower returns JDET^n
func (r *Repository) MillenniumPower(n int) float64 {
	return r.power(ScaleJDET, n)
}

//EphemerisPower returns JDE^n
func (r *Repository) EphemerisPower(n int) float64 {
	return r.power(ScaleJDE, n)
}

//Power returns the scale value of the bound JDate raised to exp.
//exp must be integer valued and s one of ScaleJDE, ScaleJDEC or ScaleJDET, otherwise
//ErrInvalidArgument is returned.
func (r *Repository) Power(s Scale, exp float64) (float64, error) {
	if exp != math.Trunc(exp) || math.IsInf(exp, 0) {
		return 0, invalidf("exponent must be an integer, have %v", exp)
	}
	switch s {
	case ScaleJDE, ScaleJDEC, ScaleJDET:
	default:
		return 0, invalidf("no power cache for scale %s", s)
	}
	return r.power(s, int(exp)), nil
}

func (r *Repository) power(s Scale, n int) float64 {
	if n == 0 {
		return 1
	}
	key := powerKey{scale: s, exp: n}
	if v, ok := r.space.Get(key); ok {
		return v
	}
	v := math.Pow(r.JDate().Scale(s), float64(n))
	r.space.Set(key, v)
	return v
}
