package dateformat

import (
	"strings"
	"time"
)

// A token is one recognized unit of a format specification. Catalog
// entries are stateless and shared between compiled formats; any
// per-format state lives on the DateFormat itself.
type token interface {
	// specPattern is the literal text that selects this token inside a
	// format specification, e.g. "YYYY".
	specPattern() string

	// inputPattern is the regular expression fragment matching this
	// token's text in an input date string. Value-bearing tokens wrap
	// the fragment in a capture group.
	inputPattern(f *DateFormat) string

	// captures reports whether inputPattern contributes a capture group.
	captures() bool

	// assign records a captured value in the parse context.
	assign(ctx *parseContext, value string) error

	// step compiles the token into a single render step.
	step(f *DateFormat) renderStep

	// installChains registers the token's parse and format chain
	// handlers, if any.
	installChains(f *DateFormat)
}

// baseToken carries the two patterns every token declares. The default
// input pattern is the value pattern wrapped in a capture group.
type baseToken struct {
	str string
	re  string
}

func (t *baseToken) specPattern() string { return t.str }

func (t *baseToken) inputPattern(*DateFormat) string { return "(" + t.re + ")" }

func (t *baseToken) captures() bool { return true }

func (t *baseToken) installChains(*DateFormat) {}

// separatorToken consumes fixed text on parse, checked for presence but
// otherwise discarded, and emits fixed text on render.
type separatorToken struct {
	baseToken
	out string
}

func newSeparator(str, re, out string) *separatorToken {
	return &separatorToken{baseToken{str, re}, out}
}

func (t *separatorToken) inputPattern(*DateFormat) string { return t.re }

func (t *separatorToken) captures() bool { return false }

func (t *separatorToken) assign(*parseContext, string) error { return nil }

func (t *separatorToken) step(*DateFormat) renderStep { return emitLiteral(t.out) }

// daySuffixToken accepts any ordinal suffix on parse and computes the
// correct one from the day of the month on render. Render-only in the
// sense that the matched text never contributes a field.
type daySuffixToken struct {
	separatorToken
}

func (t *daySuffixToken) step(*DateFormat) renderStep {
	return func(ctx *renderContext, b *strings.Builder) {
		b.WriteString(ctx.daySuffix)
	}
}

func (t *daySuffixToken) installChains(f *DateFormat) {
	f.formatChain = append(f.formatChain, func(at time.Time, ctx *renderContext) error {
		ctx.daySuffix = ordinalSuffix(at.Day())
		return nil
	})
}

func ordinalSuffix(day int) string {
	switch day {
	case 11, 12, 13:
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// weekdayToken is render-only: the matched name is consumed during
// parse but never captured.
type weekdayToken struct {
	baseToken
	short bool
}

func (t *weekdayToken) inputPattern(*DateFormat) string { return t.re }

func (t *weekdayToken) captures() bool { return false }

func (t *weekdayToken) assign(*parseContext, string) error { return nil }

func (t *weekdayToken) step(*DateFormat) renderStep {
	short := t.short
	return func(ctx *renderContext, b *strings.Builder) {
		name := ctx.t.Weekday().String()
		if short {
			name = name[:3]
		}
		b.WriteString(name)
	}
}
