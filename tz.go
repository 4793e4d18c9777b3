package dateformat

import "time"

// TimezoneProvider supplies named-timezone lookups and localization.
// The engine never embeds zone rule data itself: when no provider is
// configured the named-timezone tokens are simply absent from the
// catalog.
type TimezoneProvider interface {
	// Lookup resolves an IANA zone name or abbreviation to a location.
	Lookup(name string) (*time.Location, bool)

	// Localize interprets a wall-clock reading in the given zone.
	Localize(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) time.Time

	// CanonicalName names the zone attached to t, preferring the full
	// zone name over the abbreviation in effect at t.
	CanonicalName(t time.Time) (string, bool)
}

// DefaultProvider resolves zones through the process zoneinfo
// database. Programs that must work without a system database can
// import time/tzdata to embed one.
var DefaultProvider TimezoneProvider = zoneinfoProvider{}

type zoneinfoProvider struct{}

func (zoneinfoProvider) Lookup(name string) (*time.Location, bool) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}

func (zoneinfoProvider) Localize(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, min, sec, nsec, loc)
}

func (zoneinfoProvider) CanonicalName(t time.Time) (string, bool) {
	if name := t.Location().String(); name != "" && name != "Local" {
		return name, true
	}
	if abbrev, _ := t.Zone(); abbrev != "" {
		return abbrev, true
	}
	return "", false
}
