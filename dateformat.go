package dateformat

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ISO 8601 building blocks. The datetime form leaves out the
// sub-second component: its precision is undefined in iso8601, and a
// .S…S token is easy to append once the precision is known.
const (
	ISOFormatDate     = "YYYY-MM-DD"
	ISOFormatTime     = "hh:mm:ss"
	ISOFormatDateTime = ISOFormatDate + "␣" + ISOFormatTime

	ISOFormatBasicDate = "YYYY[MM][DD]"
	ISOFormatBasicTime = "hhmmss"
)

type parseHandler func(*parseContext) error

type formatHandler func(time.Time, *renderContext) error

// DateFormat is a compiled date format specification. Construction
// tokenizes the spec and compiles the matching pattern and render
// program once; the resulting value is immutable and safe for
// concurrent use.
type DateFormat struct {
	spec     string
	is24Hour bool
	provider TimezoneProvider

	tokens      []token
	re          *regexp.Regexp
	groupTokens []token
	program     renderProgram
	parseChain  []parseHandler
	formatChain []formatHandler
	needsZone   bool
}

type options struct {
	is24Hour *bool
	provider TimezoneProvider
}

// Option configures construction of a DateFormat.
type Option func(*options)

// With24Hour forces the hour mode instead of inferring it from the
// presence of an AM/PM token.
func With24Hour(v bool) Option {
	return func(o *options) { o.is24Hour = &v }
}

// WithProvider overrides the timezone provider used for named-timezone
// tokens. A nil provider removes those tokens from the catalog
// entirely.
func WithProvider(p TimezoneProvider) Option {
	return func(o *options) { o.provider = p }
}

// New compiles a format specification.
func New(spec string, opts ...Option) (*DateFormat, error) {
	o := options{provider: DefaultProvider}
	for _, opt := range opts {
		opt(&o)
	}

	f := &DateFormat{spec: spec, provider: o.provider}

	tokens, err := tokenizeSpec(newCatalog(o.provider), spec)
	if err != nil {
		return nil, err
	}
	f.tokens = tokens

	if o.is24Hour != nil {
		f.is24Hour = *o.is24Hour
	} else {
		f.is24Hour = !hasAmPm(tokens)
	}
	f.needsZone = hasZone(tokens)

	if err := compilePattern(f); err != nil {
		return nil, err
	}
	compileProgram(f)
	return f, nil
}

// MustNew is New for specifications known to be valid at compile time.
func MustNew(spec string, opts ...Option) *DateFormat {
	f, err := New(spec, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func hasAmPm(tokens []token) bool {
	for _, tok := range tokens {
		if _, ok := tok.(*amPmToken); ok {
			return true
		}
	}
	return false
}

func hasZone(tokens []token) bool {
	for _, tok := range tokens {
		switch tok.(type) {
		case *utcOffsetToken, *namedZoneToken:
			return true
		}
	}
	return false
}

// Spec returns the specification string the format was compiled from.
func (f *DateFormat) Spec() string { return f.spec }

// Is24Hour reports the hour mode fixed at compile time.
func (f *DateFormat) Is24Hour() bool { return f.is24Hour }

// Pattern returns the compiled matching pattern, for diagnostics.
func (f *DateFormat) Pattern() string { return f.re.String() }

// Tokens returns the spec text of each compiled token, in order.
func (f *DateFormat) Tokens() []string {
	out := make([]string, len(f.tokens))
	for i, tok := range f.tokens {
		out[i] = tok.specPattern()
	}
	return out
}

// Matches reports whether data conforms to the compiled pattern. It
// never fails: non-conforming input is simply false.
func (f *DateFormat) Matches(data string) bool {
	return f.re.MatchString(data)
}

// Parse extracts a date-time value from data. Input that does not
// satisfy the pattern yields ErrNoMatch; matching input whose fields
// do not form a real date yields ErrInvalidDate. Fields absent from
// the specification default to the current local date at midnight,
// and values parsed without any zone token are in time.Local.
func (f *DateFormat) Parse(data string) (time.Time, error) {
	m := f.re.FindStringSubmatch(data)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: date %q does not match format %q", ErrNoMatch, data, f.spec)
	}

	ctx := newParseContext(time.Now())
	for i, tok := range f.groupTokens {
		if err := tok.assign(ctx, m[i+1]); err != nil {
			return time.Time{}, err
		}
	}
	for _, handler := range f.parseChain {
		if err := handler(ctx); err != nil {
			return time.Time{}, err
		}
	}
	return ctx.materialize(f.provider)
}

// ParseDefault is Parse with a fallback: input that does not match the
// pattern yields def instead of ErrNoMatch. Every other parse error is
// still reported.
func (f *DateFormat) ParseDefault(data string, def time.Time) (time.Time, error) {
	t, err := f.Parse(data)
	if errors.Is(err, ErrNoMatch) {
		return def, nil
	}
	return t, err
}

// Format renders t according to the compiled specification. If the
// specification carries UTC-offset or named-timezone tokens, t must
// carry zone information: a value in time.Local is treated as
// zone-less and rejected with ErrMissingTimezone.
func (f *DateFormat) Format(t time.Time) (string, error) {
	if f.needsZone && t.Location() == time.Local {
		return "", fmt.Errorf("%w: format %q needs an explicit zone", ErrMissingTimezone, f.spec)
	}
	ctx := &renderContext{t: t}
	for _, handler := range f.formatChain {
		if err := handler(t, ctx); err != nil {
			return "", err
		}
	}
	return f.program.run(ctx), nil
}
