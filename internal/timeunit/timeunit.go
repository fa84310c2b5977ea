// Package timeunit describes the calendar truncation units a field can be
// bucketed by, the expression templates that perform the truncation in the
// rendering engine, and the canonical enumerations of the bounded units.
package timeunit

import (
	"fmt"
	"strings"
)

// Unit names a time-unit truncation such as "month" or "yearmonthdate".
type Unit string

const (
	Year         Unit = "year"
	Quarter      Unit = "quarter"
	Month        Unit = "month"
	Day          Unit = "day"
	Date         Unit = "date"
	Hours        Unit = "hours"
	Minutes      Unit = "minutes"
	Seconds      Unit = "seconds"
	Milliseconds Unit = "milliseconds"

	YearQuarter                      Unit = "yearquarter"
	YearMonth                        Unit = "yearmonth"
	YearMonthDate                    Unit = "yearmonthdate"
	YearMonthDateHours               Unit = "yearmonthdatehours"
	YearMonthDateHoursMinutes        Unit = "yearmonthdatehoursminutes"
	YearMonthDateHoursMinutesSeconds Unit = "yearmonthdatehoursminutesseconds"
	MonthDate                        Unit = "monthdate"
	HoursMinutes                     Unit = "hoursminutes"
	HoursMinutesSeconds              Unit = "hoursminutesseconds"
	MinutesSeconds                   Unit = "minutesseconds"
	SecondsMilliseconds              Unit = "secondsmilliseconds"
)

// part is a single calendar component a unit keeps when truncating.
type part uint16

const (
	partYear part = 1 << iota
	partQuarter
	partMonth
	partDay
	partDate
	partHours
	partMinutes
	partSeconds
	partMilliseconds
)

var units = map[Unit]part{
	Year:         partYear,
	Quarter:      partQuarter,
	Month:        partMonth,
	Day:          partDay,
	Date:         partDate,
	Hours:        partHours,
	Minutes:      partMinutes,
	Seconds:      partSeconds,
	Milliseconds: partMilliseconds,

	YearQuarter:                      partYear | partQuarter,
	YearMonth:                        partYear | partMonth,
	YearMonthDate:                    partYear | partMonth | partDate,
	YearMonthDateHours:               partYear | partMonth | partDate | partHours,
	YearMonthDateHoursMinutes:        partYear | partMonth | partDate | partHours | partMinutes,
	YearMonthDateHoursMinutesSeconds: partYear | partMonth | partDate | partHours | partMinutes | partSeconds,
	MonthDate:                        partMonth | partDate,
	HoursMinutes:                     partHours | partMinutes,
	HoursMinutesSeconds:              partHours | partMinutes | partSeconds,
	MinutesSeconds:                   partMinutes | partSeconds,
	SecondsMilliseconds:              partSeconds | partMilliseconds,
}

// Parse returns the Unit named by s. Names are case-insensitive.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := units[u]; !ok {
		return "", fmt.Errorf("unknown time unit %q", s)
	}
	return u, nil
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := units[u]
	return ok
}

func (u Unit) has(p part) bool {
	return units[u]&p != 0
}

// Expression returns the engine expression truncating the date referenced by
// ref (for example "datum.date") to u.
func (u Unit) Expression(ref string) string {
	return u.expression(ref, false)
}

// EnumExpression returns the expression converting an enumerated scalar,
// referenced by ref, into a date carrying only the components of u. It is
// the inverse of Domain: month 3 becomes the first of April.
func (u Unit) EnumExpression(ref string) string {
	return u.expression(ref, true)
}

func (u Unit) expression(ref string, onlyRef bool) string {
	get := func(fn string) string {
		if onlyRef {
			return ref
		}
		return fn + "(" + ref + ")"
	}

	args := make([]string, 0, 7)
	if u.has(partYear) {
		args = append(args, get("year"))
	} else {
		// 2006 starts on a Sunday, so day-of-week offsets line up with dates.
		args = append(args, "2006")
	}

	switch {
	case u.has(partMonth):
		args = append(args, get("month"))
	case u.has(partQuarter):
		if onlyRef {
			args = append(args, ref+"*3")
		} else {
			args = append(args, "floor(month("+ref+")/3)*3")
		}
	default:
		args = append(args, "0")
	}

	switch {
	case u.has(partDay):
		args = append(args, get("day")+"+1")
	case u.has(partDate):
		args = append(args, get("date"))
	default:
		args = append(args, "1")
	}

	for _, c := range []struct {
		p  part
		fn string
	}{
		{partHours, "hours"},
		{partMinutes, "minutes"},
		{partSeconds, "seconds"},
		{partMilliseconds, "milliseconds"},
	} {
		if u.has(c.p) {
			args = append(args, get(c.fn))
		} else {
			args = append(args, "0")
		}
	}

	return "datetime(" + strings.Join(args, ", ") + ")"
}

// Domain returns the canonical enumeration of a bounded calendar unit, or nil
// when u has no small fixed set of values.
func (u Unit) Domain() []int {
	switch u {
	case Seconds, Minutes:
		return span(0, 60)
	case Hours:
		return span(0, 24)
	case Day:
		return span(0, 7)
	case Date:
		return span(1, 32)
	case Month:
		return span(0, 12)
	case Quarter:
		return span(0, 4)
	}
	return nil
}

// Bounded reports whether u has a canonical enumeration.
func (u Unit) Bounded() bool {
	return u.Domain() != nil
}

func span(start, stop int) []int {
	out := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		out = append(out, i)
	}
	return out
}
