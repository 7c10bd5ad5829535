//Package dbf converts FoxPro DBF date (D) and datetime (T) field data to and from JDates.
package dbf

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	jdate "github.com/SebastiaanKlippert/go-jdate"
	"github.com/SebastiaanKlippert/go-jdate/jd"
)

const (
	DateLen     = 8 //Length of a D field, YYYYMMDD
	DateTimeLen = 8 //Length of a T field, two little endian 32 bit integers
)

var (
	ErrBlank      = fmt.Errorf("Blank field")      //Returned when the field holds no date
	ErrIncomplete = fmt.Errorf("Incomplete field") //Returned when the field data has the wrong length
)

//DecodeDate converts D field data (YYYYMMDD, the calendar date at 00:00) to a JDate.
//A field of spaces returns ErrBlank.
func DecodeDate(raw []byte, opts ...jdate.Option) (*jdate.JDate, error) {
	if len(raw) != DateLen {
		return nil, ErrIncomplete
	}
	if string(raw) == strings.Repeat(" ", DateLen) {
		return nil, ErrBlank
	}
	var parts [3]int
	for i, r := range [3][2]int{{0, 4}, {4, 6}, {6, 8}} {
		n, err := strconv.Atoi(string(raw[r[0]:r[1]]))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not a YYYYMMDD date", jdate.ErrInvalidArgument, raw)
		}
		parts[i] = n
	}
	return jdate.NewFromDate(jdate.DateTime{Year: parts[0], Month: parts[1], Day: parts[2]}, opts...)
}

//EncodeDate returns the D field data for the calendar date of j.
//The time of day is dropped, years outside 0..9999 return ErrInvalidArgument.
func EncodeDate(j *jdate.JDate) ([]byte, error) {
	dt := j.Date()
	if dt.Year < 0 || dt.Year > 9999 {
		return nil, fmt.Errorf("%w: year %d does not fit a D field", jdate.ErrInvalidArgument, dt.Year)
	}
	return []byte(fmt.Sprintf("%04d%02d%02d", dt.Year, dt.Month, dt.Day)), nil
}

//DecodeDateTime converts T field data to a JDate.
//The first 4 bytes hold the Julian day number, the last 4 the milliseconds since midnight.
//A zero day number is a blank field and returns ErrBlank.
func DecodeDateTime(raw []byte, opts ...jdate.Option) (*jdate.JDate, error) {
	if len(raw) != DateTimeLen {
		return nil, ErrIncomplete
	}
	day := int32(binary.LittleEndian.Uint32(raw[:4]))
	ms := int32(binary.LittleEndian.Uint32(raw[4:]))
	if day == 0 {
		return nil, ErrBlank
	}
	if day < 0 {
		return nil, fmt.Errorf("%w: negative day number %d", jdate.ErrInvalidArgument, day)
	}
	if ms < 0 || ms >= jd.MillisPerDay {
		return nil, fmt.Errorf("%w: %d milliseconds do not fit a day", jdate.ErrInvalidArgument, ms)
	}

	//Build the date from integers, a float JD would lose the exact millisecond
	y, m, d := jd.YMD(int(day))
	return jdate.NewFromDate(jdate.DateOf(y, m, d, int(ms)), opts...)
}

//EncodeDateTime returns the T field data for j, to the millisecond
func EncodeDateTime(j *jdate.JDate) []byte {
	dt := j.Date()
	buf := make([]byte, DateTimeLen)
	binary.LittleEndian.PutUint32(buf[:4], uint32(jd.DayNumber(dt.Year, dt.Month, dt.Day)))
	binary.LittleEndian.PutUint32(buf[4:], uint32(dt.MillisOfDay()))
	return buf
}
