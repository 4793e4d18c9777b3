package dateformat

import (
	"fmt"
	"time"
)

// field identifies the date-time component a numeric token carries.
type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
)

// parseContext accumulates field values as capture groups are assigned
// in left-to-right order. It is seeded with the current local date so
// that a spec lacking a date component still yields a complete value.
type parseContext struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	micro  int

	// hourSet distinguishes an explicit hour from the zero value; the
	// AM/PM correction defaults to 12 when no hour was captured.
	hourSet bool
	isPM    bool

	loc *time.Location
	// localize is set when loc came from the named-timezone token and
	// must be resolved through the provider with the full date known.
	localize bool
}

func newParseContext(now time.Time) *parseContext {
	return &parseContext{
		year:  now.Year(),
		month: int(now.Month()),
		day:   now.Day(),
		loc:   time.Local,
	}
}

func (ctx *parseContext) setField(f field, v int) {
	switch f {
	case fieldYear:
		ctx.year = v
	case fieldMonth:
		ctx.month = v
	case fieldDay:
		ctx.day = v
	case fieldHour:
		ctx.hour = v
		ctx.hourSet = true
	case fieldMinute:
		ctx.minute = v
	case fieldSecond:
		ctx.second = v
	}
}

// validate enforces the legal range of every field before a time.Time
// is constructed; time.Date would silently normalize out-of-range
// values instead of failing.
func (ctx *parseContext) validate() error {
	if ctx.year < 1 || ctx.year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, ctx.year)
	}
	if ctx.month < 1 || ctx.month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, ctx.month)
	}
	if max := daysIn(time.Month(ctx.month), ctx.year); ctx.day < 1 || ctx.day > max {
		return fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidDate, ctx.day, time.Month(ctx.month), ctx.year)
	}
	if ctx.hour < 0 || ctx.hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidDate, ctx.hour)
	}
	if ctx.minute < 0 || ctx.minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidDate, ctx.minute)
	}
	if ctx.second < 0 || ctx.second > 59 {
		return fmt.Errorf("%w: second %d out of range", ErrInvalidDate, ctx.second)
	}
	if ctx.micro < 0 || ctx.micro > 999999 {
		return fmt.Errorf("%w: microsecond %d out of range", ErrInvalidDate, ctx.micro)
	}
	return nil
}

// materialize converts the accumulated fields into a time.Time.
func (ctx *parseContext) materialize(p TimezoneProvider) (time.Time, error) {
	if err := ctx.validate(); err != nil {
		return time.Time{}, err
	}
	if ctx.localize {
		return p.Localize(ctx.year, time.Month(ctx.month), ctx.day,
			ctx.hour, ctx.minute, ctx.second, ctx.micro*1000, ctx.loc), nil
	}
	return time.Date(ctx.year, time.Month(ctx.month), ctx.day,
		ctx.hour, ctx.minute, ctx.second, ctx.micro*1000, ctx.loc), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func fieldValue(t time.Time, f field) int {
	switch f {
	case fieldYear:
		return t.Year()
	case fieldMonth:
		return int(t.Month())
	case fieldDay:
		return t.Day()
	case fieldHour:
		return t.Hour()
	case fieldMinute:
		return t.Minute()
	case fieldSecond:
		return t.Second()
	}
	panic("unknown field")
}

// renderContext holds the subject value plus the derived display
// fields computed by the format chain before the render program runs.
type renderContext struct {
	t time.Time

	utcSign   string
	utcHours  int
	utcMins   int
	zoneName  string
	daySuffix string
}
