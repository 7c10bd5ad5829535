package jdate

import (
	"fmt"
)

//CacheSpace is a key/value memo bound to a JDate.
//
//Every call first compares the JD of the bound JDate to the JD it saw last, and drops all
//entries when they differ. There is no notification from the JDate, so changes are only
//noticed on the next access.
type CacheSpace[K comparable, V any] struct {
	jdate *JDate
	jd    float64
	cache map[K]V
}

//NewCacheSpace returns an empty CacheSpace bound to j
func NewCacheSpace[K comparable, V any](j *JDate) *CacheSpace[K, V] {
	return new(CacheSpace[K, V]).On(j)
}

//On binds the CacheSpace to j and drops all entries, even when j is already bound.
//It panics when j is nil.
func (c *CacheSpace[K, V]) On(j *JDate) *CacheSpace[K, V] {
	if j == nil {
		panic(fmt.Errorf("%w: CacheSpace needs a JDate", ErrInvalidArgument))
	}
	c.jdate = j
	c.jd = j.JD()
	c.cache = make(map[K]V)
	return c
}

//JDate returns the bound JDate
func (c *CacheSpace[K, V]) JDate() *JDate {
	return c.jdate
}

//Set stores val under key
func (c *CacheSpace[K, V]) Set(key K, val V) {
	c.sync()
	c.cache[key] = val
}

//Get returns the value stored under key and if it was present
func (c *CacheSpace[K, V]) Get(key K) (V, bool) {
	c.sync()
	val, ok := c.cache[key]
	return val, ok
}

//Has reports if a value is stored under key
func (c *CacheSpace[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

//Len returns the number of stored values
func (c *CacheSpace[K, V]) Len() int {
	c.sync()
	return len(c.cache)
}

//Clear drops all entries
func (c *CacheSpace[K, V]) Clear() {
	c.sync()
	c.cache = make(map[K]V)
}

//sync drops the entries when the JD of the bound JDate moved
func (c *CacheSpace[K, V]) sync() {
	if cur := c.jdate.JD(); cur != c.jd {
		c.jd = cur
		c.cache = make(map[K]V)
	}
}
