package dateformat

import (
	"fmt"
	"strings"
)

// Name lookups are case-insensitive; keys are lower case.
var monthsByName = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// Short months include the two four-letter full names, as those turn
// up in otherwise-abbreviated dates.
var monthsByAbbrev = map[string]int{
	"jan":  1,
	"feb":  2,
	"mar":  3,
	"apr":  4,
	"may":  5,
	"jun":  6,
	"june": 6,
	"jul":  7,
	"july": 7,
	"aug":  8,
	"sep":  9,
	"oct":  10,
	"nov":  11,
	"dec":  12,
}

// monthNameToken parses and renders month names through the name
// tables.
type monthNameToken struct {
	baseToken
	short bool
}

func (t *monthNameToken) assign(ctx *parseContext, value string) error {
	table := monthsByName
	if t.short {
		table = monthsByAbbrev
	}
	n, ok := table[strings.ToLower(value)]
	if !ok {
		return fmt.Errorf("%w: unknown month name %q", ErrInvalidDate, value)
	}
	ctx.month = n
	return nil
}

func (t *monthNameToken) step(*DateFormat) renderStep {
	short := t.short
	return func(ctx *renderContext, b *strings.Builder) {
		name := ctx.t.Month().String()
		if short {
			name = name[:3]
		}
		b.WriteString(name)
	}
}

// amPmToken records whether the captured value was PM; the hour itself
// is corrected in the parse chain once all raw fields are known.
type amPmToken struct {
	baseToken
}

func (t *amPmToken) assign(ctx *parseContext, value string) error {
	ctx.isPM = strings.EqualFold(value, "pm")
	return nil
}

func (t *amPmToken) installChains(f *DateFormat) {
	f.parseChain = append([]parseHandler{applyAmPm}, f.parseChain...)
}

// applyAmPm folds the captured half-day flag into the hour field. An
// absent hour defaults to 12 so that a bare "am"/"pm" spec still
// produces midnight or noon.
func applyAmPm(ctx *parseContext) error {
	hour := 12
	if ctx.hourSet {
		hour = ctx.hour
	}
	if ctx.isPM {
		if hour != 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}
	ctx.hour = hour
	ctx.hourSet = true
	return nil
}

func (t *amPmToken) step(*DateFormat) renderStep {
	spec := t.str
	return func(ctx *renderContext, b *strings.Builder) {
		b.WriteString(amPmText(spec, ctx.t.Hour() >= 12))
	}
}

// amPmText matches the case pattern of the spec token: "AM" renders
// upper case, "am" lower, "Am" capitalized.
func amPmText(spec string, pm bool) string {
	switch {
	case spec == strings.ToUpper(spec):
		if pm {
			return "PM"
		}
		return "AM"
	case spec == strings.ToLower(spec):
		if pm {
			return "pm"
		}
		return "am"
	}
	if pm {
		return "Pm"
	}
	return "Am"
}
