package dateformat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// parseInt converts digits already vetted by the matching pattern.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// numericToken parses an integer into a single date-time field and
// renders it back zero-padded. The render width is the number of
// field letters in the spec pattern ("YYYY" pads to 4).
type numericToken struct {
	baseToken
	field field
	width int
}

func newNumeric(str, re string, fld field) *numericToken {
	return &numericToken{baseToken{str, re}, fld, len(strings.Trim(str, "[]"))}
}

func (t *numericToken) assign(ctx *parseContext, value string) error {
	ctx.setField(t.field, parseInt(value))
	return nil
}

func (t *numericToken) step(*DateFormat) renderStep {
	fld, width := t.field, t.width
	return func(ctx *renderContext, b *strings.Builder) {
		fmt.Fprintf(b, "%0*d", width, fieldValue(ctx.t, fld))
	}
}

// shortYearToken handles two-digit years. Values above 69 land in the
// 1900s, the rest in the 2000s.
type shortYearToken struct {
	baseToken
}

func (t *shortYearToken) assign(ctx *parseContext, value string) error {
	year := parseInt(value)
	if year > 69 {
		year += 1900
	} else {
		year += 2000
	}
	ctx.year = year
	return nil
}

func (t *shortYearToken) step(*DateFormat) renderStep {
	return func(ctx *renderContext, b *strings.Builder) {
		fmt.Fprintf(b, "%02d", ctx.t.Year()%100)
	}
}

// hour24To12 maps a 24-hour clock reading onto a 12-hour dial.
var hour24To12 = [...]int{
	12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
	12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
}

// hourToken matches and renders the hour in the format's hour mode,
// fixed when the format is compiled.
type hourToken struct {
	baseToken
}

func (t *hourToken) inputPattern(f *DateFormat) string {
	if f.is24Hour {
		return "(" + re0to24 + ")"
	}
	return "(" + re0to12 + ")"
}

func (t *hourToken) assign(ctx *parseContext, value string) error {
	ctx.hour = parseInt(value)
	ctx.hourSet = true
	return nil
}

func (t *hourToken) step(f *DateFormat) renderStep {
	if f.is24Hour {
		return func(ctx *renderContext, b *strings.Builder) {
			fmt.Fprintf(b, "%02d", ctx.t.Hour())
		}
	}
	return func(ctx *renderContext, b *strings.Builder) {
		fmt.Fprintf(b, "%02d", hour24To12[ctx.t.Hour()])
	}
}

// microsecondsToken is a fixed-width fraction of a second; the
// multiplier scales the captured digits up to microseconds.
type microsecondsToken struct {
	baseToken
	multiplier int
}

func (t *microsecondsToken) assign(ctx *parseContext, value string) error {
	ctx.micro = parseInt(value) * t.multiplier
	return nil
}

func (t *microsecondsToken) step(*DateFormat) renderStep {
	mult, width := t.multiplier, len(t.str)
	return func(ctx *renderContext, b *strings.Builder) {
		micro := ctx.t.Nanosecond() / 1000
		v := int(math.RoundToEven(float64(micro) / float64(mult)))
		fmt.Fprintf(b, "%0*d", width, v)
	}
}

// fractionalToken is the variable-length "S" token: digits after the
// decimal point, truncated to microsecond precision.
type fractionalToken struct {
	baseToken
}

func (t *fractionalToken) assign(ctx *parseContext, value string) error {
	frac, err := strconv.ParseFloat("0."+value, 64)
	if err != nil {
		return fmt.Errorf("%w: fraction %q", ErrInvalidDate, value)
	}
	ctx.micro = int(frac * 1e6)
	return nil
}

func (t *fractionalToken) step(*DateFormat) renderStep {
	return func(ctx *renderContext, b *strings.Builder) {
		s := strings.TrimRight(fmt.Sprintf("%06d", ctx.t.Nanosecond()/1000), "0")
		if s == "" {
			s = "0"
		}
		b.WriteString(s)
	}
}

// timestampToken decomposes an elapsed-since-epoch reading into a full
// UTC date-time. The divisor selects the input unit: 1 for seconds,
// 1e3/1e6/1e9 for milli/micro/nanoseconds.
type timestampToken struct {
	baseToken
	divisor int64
}

func newTimestamp(str string, divisor int64) *timestampToken {
	digits := 10
	for d := divisor; d > 1; d /= 10 {
		digits++
	}
	return &timestampToken{baseToken{str, fmt.Sprintf(`\d{1,%d}`, digits)}, divisor}
}

func (t *timestampToken) assign(ctx *parseContext, value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: timestamp %q", ErrInvalidDate, value)
	}
	// Float seconds, deliberately: sub-microsecond digits round half to
	// even, so nanosecond input can come out one microsecond off.
	sec, frac := math.Modf(float64(n) / float64(t.divisor))
	micro := int64(math.RoundToEven(frac * 1e6))
	if micro >= 1e6 {
		sec++
		micro -= 1e6
	}
	utc := time.Unix(int64(sec), micro*1000).UTC()

	ctx.year, ctx.month, ctx.day = utc.Year(), int(utc.Month()), utc.Day()
	ctx.hour, ctx.minute, ctx.second = utc.Hour(), utc.Minute(), utc.Second()
	ctx.hourSet = true
	if t.divisor > 1 {
		ctx.micro = utc.Nanosecond() / 1000
	}
	return nil
}

func (t *timestampToken) step(*DateFormat) renderStep {
	divisor := t.divisor
	return func(ctx *renderContext, b *strings.Builder) {
		fmt.Fprintf(b, "%d", int64(elapsedSeconds(ctx.t)*float64(divisor)))
	}
}

// elapsedSeconds reports seconds since the unix epoch at microsecond
// resolution, the engine's precision limit. A time.Local value is read
// as a naive wall clock, mirroring how timestamps are parsed into
// zone-less values.
func elapsedSeconds(t time.Time) float64 {
	if t.Location() == time.Local {
		t = time.Date(t.Year(), t.Month(), t.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return float64(t.Sub(time.Unix(0, 0).UTC()).Microseconds()) / 1e6
}
