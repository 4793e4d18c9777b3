// Package dateformat compiles human-writable date format
// specifications into bidirectional parser/renderer pairs: the same
// spec string both extracts a time.Time from matching text and renders
// a time.Time back into that shape.
//
//	df, err := dateformat.New("YYYY-MM-DD hh:mm:ss")
//	t, err := df.Parse("2016-05-03 10:45:12")
//	s, err := df.Format(t) // "2016-05-03 10:45:12"
//
// A specification is tokenized against a fixed, priority-ordered
// catalog. The recognized tokens are:
//
//	YYYY     four-digit year
//	YY       two-digit year (>69 is 19xx, otherwise 20xx)
//	MM       month number, [MM] zero-padded month number
//	MMM      short month name (Jun), MMMMM full month name (June)
//	DD       day of month, [DD] zero-padded day of month
//	Ddd      short weekday name, Ddddd/Dddddd full weekday name
//	         (render-only: accepted but ignored when parsing)
//	hh       hour; 24-hour unless the spec carries an AM/PM token
//	mm, ss   minute, second
//	SS..SSSSSS  fixed-width fraction of a second (2, 3, 4 or 6 digits)
//	S        variable-length fraction of a second, up to 9 digits,
//	         truncated to microsecond precision
//	AM/Am/am (and PM/Pm/pm) half-day marker; render follows the case
//	         of the spec token
//	+HH, +HHMM, +HH:MM  signed UTC offset
//	UTC, GMT, Europe/London, Zulu  named-timezone placeholder: any of
//	         them matches an IANA zone name in the input (requires a
//	         timezone provider; see TimezoneProvider)
//	UNIX_TIMESTAMP, UNIX_MILLISECONDS, UNIX_MICROSECONDS,
//	UNIX_NANOSECONDS  elapsed time since the unix epoch
//	st       ordinal day suffix (1st, 2nd, ...; render-only)
//	of       the literal word "of"
//	␣        space or literal T; renders as T
//	: / - . , T Z ( ) and space  literal separators
//
// Numeric fields, offsets, named timezones and unix timestamps are
// lossless: formatting a parsed string reproduces it. Weekday names
// and the ordinal suffix are render-only and deliberately break that
// round trip.
//
// Compiled formats are immutable and may be shared freely across
// goroutines.
package dateformat
