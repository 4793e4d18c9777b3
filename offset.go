package dateformat

import (
	"fmt"
	"strings"
	"time"
)

// offsetLayout selects one of the three UTC offset renderings.
type offsetLayout int

const (
	offsetHHMM    offsetLayout = iota // +0100
	offsetHHcolMM                     // +01:00
	offsetHH                          // +01
)

// utcOffsetToken parses a signed hours/minutes offset into a fixed
// zone and renders the subject's own offset back in the same layout.
type utcOffsetToken struct {
	baseToken
	layout offsetLayout
}

func (t *utcOffsetToken) assign(ctx *parseContext, value string) error {
	var hours, mins int
	switch t.layout {
	case offsetHHMM:
		hours, mins = parseInt(value[1:3]), parseInt(value[3:5])
	case offsetHHcolMM:
		hours, mins = parseInt(value[1:3]), parseInt(value[4:6])
	case offsetHH:
		hours = parseInt(value[1:3])
	}
	sec := hours*3600 + mins*60
	if value[0] == '-' {
		sec = -sec
	}
	ctx.loc = time.FixedZone("", sec)
	ctx.localize = false
	return nil
}

func (t *utcOffsetToken) installChains(f *DateFormat) {
	f.formatChain = append(f.formatChain, addOffsetContext)
}

// addOffsetContext derives the display sign and magnitudes from the
// subject's zone offset. Hours truncate toward zero so that the
// remainder carries the minutes.
func addOffsetContext(at time.Time, ctx *renderContext) error {
	_, off := at.Zone()
	hours := off / 3600
	mins := (off - hours*3600) / 60
	ctx.utcSign = "+"
	if off < 0 {
		ctx.utcSign = "-"
	}
	ctx.utcHours = abs(hours)
	ctx.utcMins = abs(mins)
	return nil
}

func (t *utcOffsetToken) step(*DateFormat) renderStep {
	layout := t.layout
	return func(ctx *renderContext, b *strings.Builder) {
		switch layout {
		case offsetHHMM:
			fmt.Fprintf(b, "%s%02d%02d", ctx.utcSign, ctx.utcHours, ctx.utcMins)
		case offsetHHcolMM:
			fmt.Fprintf(b, "%s%02d:%02d", ctx.utcSign, ctx.utcHours, ctx.utcMins)
		case offsetHH:
			fmt.Fprintf(b, "%s%02d", ctx.utcSign, ctx.utcHours)
		}
	}
}

// namedZoneToken resolves an IANA zone name through the configured
// provider. Zone offsets are date-dependent, so the zone is applied
// when the full date is materialized rather than when the name is
// captured.
type namedZoneToken struct {
	baseToken
	provider TimezoneProvider
}

func (t *namedZoneToken) assign(ctx *parseContext, value string) error {
	loc, ok := t.provider.Lookup(value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, value)
	}
	ctx.loc = loc
	ctx.localize = true
	return nil
}

func (t *namedZoneToken) installChains(f *DateFormat) {
	f.formatChain = append(f.formatChain, t.addZoneName)
}

func (t *namedZoneToken) addZoneName(at time.Time, ctx *renderContext) error {
	name, ok := t.provider.CanonicalName(at)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnresolvedTimezone, at.Location())
	}
	ctx.zoneName = name
	return nil
}

func (t *namedZoneToken) step(*DateFormat) renderStep {
	return func(ctx *renderContext, b *strings.Builder) {
		b.WriteString(ctx.zoneName)
	}
}
