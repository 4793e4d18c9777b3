package dateformat

import "regexp"

// Input sub-patterns for the numeric fields. Ranges are loose on
// purpose: seconds admit values up to 69 at the pattern level and the
// real bounds are enforced when the date is materialized.
const (
	re0to60  = `[0-6]?[0-9]`
	re00to31 = `(?:[0-2][0-9])|(?:3[0-1])`
	re0to31  = `(?:[0-2]?[0-9])|(?:3[0-1])`
	re0to12  = `(?:0?[0-9])|(?:1[0-2])`
	re00to12 = `(?:0[0-9])|(?:1[0-2])`
	re0to24  = `(?:[0-1]?[0-9])|(?:2[0-4])`
)

// zoneNamePattern matches either a full IANA name (Europe/Warsaw) or a
// short abbreviation (CET, GMT+2).
const zoneNamePattern = `(?:[A-Z_]{2,12}?/)+?[A-Z\-_]{3,20}[+-]?\d{0,2}|[A-Z]{1}[A-Z+\-_\d]{0,8}`

// zoneSpecNames are the spec-side placeholders that select the named
// timezone token. Any of them stands for "a zone name goes here".
var zoneSpecNames = []string{"UTC", "GMT", "Europe/London", "Zulu"}

// newCatalog returns the ordered token table. Order is matching
// priority and a correctness invariant: a token whose spec pattern is
// a prefix or superset of a later one must come first (YYYY before YY,
// [MM] before MM), because the tokenizer never backtracks once an
// entry matches. Named-timezone entries are present only when a
// provider is configured.
func newCatalog(provider TimezoneProvider) []token {
	catalog := []token{
		newTimestamp("UNIX_TIMESTAMP", 1),
		newTimestamp("UNIX_MILLISECONDS", 1000),
		newTimestamp("UNIX_MICROSECONDS", 1000000),
		newTimestamp("UNIX_NANOSECONDS", 1000000000),

		&utcOffsetToken{baseToken{"+HHMM", `[\+\-]\d{4}`}, offsetHHMM},
		&utcOffsetToken{baseToken{"+HH:MM", `[\+\-]\d{2}:\d{2}`}, offsetHHcolMM},
		&utcOffsetToken{baseToken{"+HH", `[\+\-]\d{2}`}, offsetHH},

		&weekdayToken{baseToken{"Dddddd", `[MSTFW]\w{5,8}`}, false},
		&weekdayToken{baseToken{"Ddddd", `[MSTFW]\w{5,8}`}, false},
		&weekdayToken{baseToken{"Ddd", `[MSTFW]\w{2}`}, true},

		newNumeric("[MM]", re00to12, fieldMonth),
		newNumeric("[DD]", re00to31, fieldDay),
		newNumeric("DD", re0to31, fieldDay),

		&monthNameToken{baseToken{"MMMMM", `[ADFJMNOS]\w{2,8}`}, false},
		&monthNameToken{baseToken{"MMM", `[ADFJMNOS]\w{2,3}`}, true},
		newNumeric("MM", re0to12, fieldMonth),
		newNumeric("YYYY", `\d{4}`, fieldYear),
		&shortYearToken{baseToken{"YY", `\d{2}`}},
		&hourToken{baseToken{"hh", ""}},
		newNumeric("mm", re0to60, fieldMinute),
		newNumeric("ss", re0to60, fieldSecond),

		&microsecondsToken{baseToken{"SSSSSS", `\d{6}`}, 1},
		&microsecondsToken{baseToken{"SSSS", `\d{4}`}, 100},
		&microsecondsToken{baseToken{"SSS", `\d{3}`}, 1000},
		&microsecondsToken{baseToken{"SS", `\d{2}`}, 10000},
		&fractionalToken{baseToken{"S", `\d{1,9}`}},

		&amPmToken{baseToken{"AM", `am|pm`}},
		&amPmToken{baseToken{"Am", `am|pm`}},
		&amPmToken{baseToken{"am", `am|pm`}},
		&amPmToken{baseToken{"PM", `am|pm`}},
		&amPmToken{baseToken{"Pm", `am|pm`}},
		&amPmToken{baseToken{"pm", `am|pm`}},

		newSeparator(" ", `\s+?`, " "),
		newSeparator("of", `of`, "of"),
		&daySuffixToken{separatorToken{baseToken{"st", `(?:st|nd|rd|th)`}, "st"}},
		newSeparator("␣", `[T ]`, "T"),
	}
	if provider != nil {
		for _, name := range zoneSpecNames {
			catalog = append(catalog, &namedZoneToken{baseToken{name, zoneNamePattern}, provider})
		}
	}
	for _, c := range ":/-.,TZ()" {
		s := string(c)
		catalog = append(catalog, newSeparator(s, regexp.QuoteMeta(s), s))
	}
	return catalog
}
