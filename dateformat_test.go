package dateformat

import (
	"errors"
	"testing"
	"time"
)

// Specs paired with input known to round-trip losslessly.
var samples = []struct {
	spec, input string
}{
	{"hh:mm:ss", "10:45:30"},
	{"MM/DD/YY", "11/12/14"},
	{"MM-DD-YY", "10-12-14"},
	{"MM-DD-YY", "10-12-60"},
	{"MM-DD-YY", "10-12-70"},
	{"MM-DD-YYYY", "10-12-1970"},
	{"MM-DD-YYYY", "10-12-2070"},
	{"YYYY-MM-DD", "2016-05-03"},
	{"YYYY-MMM-DD", "2016-Jun-03"},
	{"YYYY-MMMMM-DD", "2016-August-03"},
	{"hhpm", "12am"},
	{"hhPM", "12PM"},
	{"hhAM", "05PM"},
	{"hh:mm:ss+HHMM", "12:12:10+0100"},
	{"hh:mm:ss+HHMM", "12:12:11+0500"},
	{"hh:mm:ss+HHMM", "12:12:12-0500"},
	{"hh:mm:ss+HH:MM", "12:12:12-05:30"},
	{"hh:mm:ss+HH", "12:12:12+09"},
	{"hh:mm:ss", "01:02:03"},
	{"YYYY-MM-DDThh:mm", "2007-04-05T23:59"},
	{"YYYY-MM-DDThh:mm:ss.SSSSSS", "2007-04-05T23:59:01.234567"},
	{"DD-MMM-YYYY hhmm", "21-Jul-2015 2005"},
	{"DDst of MMMMM, YYYY", "01st of June, 1985"},
	{"DDst of MMMMM, YYYY", "03rd of May, 2222"},
	{"DDst of MMMMM, YYYY", "11th of June, 1985"},
}

func TestParseSimpleDate(t *testing.T) {
	df := MustNew("DD/MM/YY hh:mm")
	got, err := df.Parse("10/12/12 16:23")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2012, time.December, 10, 16, 23, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFormatParsedDateReturnsOriginal(t *testing.T) {
	for _, tc := range samples {
		df, err := New(tc.spec)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.spec, err)
		}
		parsed, err := df.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) with %q: %v", tc.input, tc.spec, err)
			continue
		}
		out, err := df.Format(parsed)
		if err != nil {
			t.Errorf("Format with %q: %v", tc.spec, err)
			continue
		}
		if out != tc.input {
			t.Errorf("%q: round trip gave %q, want %q", tc.spec, out, tc.input)
		}
	}
}

func TestInvalidDates(t *testing.T) {
	for _, tc := range []struct {
		spec, valid, invalid string
	}{
		{"pm", "PM", "xx"},
		{"hh:mmAM", "12:02am", "15:02am"},
		{"hh:mm", "23:02", "28:02"},
		{"hh:mm", "23:52", "23:62"},
		{"YYYY", "1234", "12345"},
		{"DD:MMThh:mm", "12:12T12:12", "12:12Z12:12"},
		{"DD MM", "12 12", "1212"},
	} {
		df := MustNew(tc.spec)
		if _, err := df.Parse(tc.valid); err != nil {
			t.Errorf("%q: Parse(%q) failed: %v", tc.spec, tc.valid, err)
		}
		if _, err := df.Parse(tc.invalid); err == nil {
			t.Errorf("%q: Parse(%q) should have failed", tc.spec, tc.invalid)
		}
	}
}

func TestParseErrorKinds(t *testing.T) {
	df := MustNew("hh:mm")
	if _, err := df.Parse("28:02"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Parse(28:02) = %v, want ErrNoMatch", err)
	}
	// 62 passes the loose minute pattern but is out of range.
	if _, err := df.Parse("23:62"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Parse(23:62) = %v, want ErrInvalidDate", err)
	}
}

func TestParseDefault(t *testing.T) {
	df := MustNew("YYYY-MM-DD")
	def := time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)

	got, err := df.ParseDefault("xxx", def)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(def) {
		t.Errorf("got %v, want the default %v", got, def)
	}

	if _, err := df.Parse("xxx"); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Parse(xxx) = %v, want ErrNoMatch", err)
	}

	// Matching input ignores the default.
	got, err = df.ParseDefault("2016-05-03", def)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2016 {
		t.Errorf("got %v, want the parsed date", got)
	}
}

func TestMatches(t *testing.T) {
	df := MustNew("YYYY-MM-DD")
	for input, want := range map[string]bool{
		"2016-05-03": true,
		"2016-5-3":   true,
		"xxx":        false,
		"":           false,
		"2016-13-03": false,
	} {
		if got := df.Matches(input); got != want {
			t.Errorf("Matches(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestAmPmCalc(t *testing.T) {
	df := MustNew("am")
	for hour := 0; hour < 24; hour++ {
		want := "am"
		if hour >= 12 {
			want = "pm"
		}
		for _, ms := range [][2]int{{1, 1}, {59, 59}} {
			date := time.Date(2015, 1, 1, hour, ms[0], ms[1], 0, time.Local)
			got, err := df.Format(date)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("hour %d: got %q, want %q", hour, got, want)
			}
		}
	}
}

func TestFormatVariousDates(t *testing.T) {
	date := time.Date(2015, 1, 2, 3, 14, 25, 678901000, time.Local)
	for _, tc := range []struct {
		spec, want string
	}{
		{"hh:mm:ss", "03:14:25"},
		{"hh AM", "03 AM"},
		{"hhAm", "03Am"},
		{"hh am", "03 am"},
		{"SS", "68"},
		{"SSS", "679"},
		{"SSSS", "6789"},
		{"SSSSSS", "678901"},
		{"DDst of MMMMM", "02nd of January"},
		{"Dddddd DD", "Friday 02"},
		{"Ddd DD", "Fri 02"},
	} {
		got, err := MustNew(tc.spec).Format(date)
		if err != nil {
			t.Fatalf("Format with %q: %v", tc.spec, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.spec, got, tc.want)
		}
	}
}

func TestWeekdayConsumedOnParse(t *testing.T) {
	df := MustNew("Ddddd DD. MMMMM YYYY")
	got, err := df.Parse("Friday 02. January 2015")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2015, time.January, 2, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// The weekday is not checked against the date, only consumed.
	if _, err := df.Parse("Monday 02. January 2015"); err != nil {
		t.Errorf("mismatched weekday name should still parse: %v", err)
	}
}

func TestShortYearCentury(t *testing.T) {
	df := MustNew("YY")
	for input, want := range map[string]int{
		"70": 1970,
		"69": 2069,
		"60": 2060,
		"99": 1999,
		"00": 2000,
	} {
		got, err := df.Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		if got.Year() != want {
			t.Errorf("YY %q: got %d, want %d", input, got.Year(), want)
		}
	}
}

func TestUnixTimestamps(t *testing.T) {
	for _, tc := range []struct {
		spec, input string
		want        time.Time
	}{
		{"UNIX_TIMESTAMP", "0", time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local)},
		{"UNIX_TIMESTAMP", "1461100843", time.Date(2016, 4, 19, 21, 20, 43, 0, time.Local)},
		{"UNIX_MILLISECONDS", "1", time.Date(1970, 1, 1, 0, 0, 0, int(time.Millisecond), time.Local)},
		{"UNIX_MICROSECONDS", "1", time.Date(1970, 1, 1, 0, 0, 0, int(time.Microsecond), time.Local)},
		// Sub-microsecond input truncates to zero...
		{"UNIX_NANOSECONDS", "1", time.Date(1970, 1, 1, 0, 0, 0, 0, time.Local)},
		// ...and rounding at the microsecond boundary can go up.
		{"UNIX_NANOSECONDS", "123456789", time.Date(1970, 1, 1, 0, 0, 0, 123457000, time.Local)},
	} {
		got, err := MustNew(tc.spec).Parse(tc.input)
		if err != nil {
			t.Fatalf("%s %q: %v", tc.spec, tc.input, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s %q: got %v, want %v", tc.spec, tc.input, got, tc.want)
		}
	}
}

func TestUnixTimestampRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		spec, input string
	}{
		{"UNIX_TIMESTAMP", "0"},
		{"UNIX_TIMESTAMP", "1461100843"},
		{"UNIX_MILLISECONDS", "1461100843123"},
		{"UNIX_MICROSECONDS", "1461100843123456"},
	} {
		df := MustNew(tc.spec)
		parsed, err := df.Parse(tc.input)
		if err != nil {
			t.Fatal(err)
		}
		out, err := df.Format(parsed)
		if err != nil {
			t.Fatal(err)
		}
		if out != tc.input {
			t.Errorf("%s: round trip gave %q, want %q", tc.spec, out, tc.input)
		}
	}
}

func TestFractionalSecond(t *testing.T) {
	df := MustNew("S")

	got, err := df.Parse("1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Nanosecond() != 100000000 {
		t.Errorf("Parse(1): nanoseconds = %d, want 100000000", got.Nanosecond())
	}

	for micro, want := range map[int]string{
		678901: "678901",
		500:    "0005",
		100000: "1",
		0:      "0",
	} {
		out, err := df.Format(time.Date(2015, 1, 1, 0, 0, 0, micro*1000, time.Local))
		if err != nil {
			t.Fatal(err)
		}
		if out != want {
			t.Errorf("micro %d: got %q, want %q", micro, out, want)
		}
	}
}

func TestISOFormatDateTime(t *testing.T) {
	df := MustNew(ISOFormatDateTime)
	want := time.Date(2017, 12, 6, 11, 55, 44, 0, time.Local)

	got, err := df.Parse("2017-12-6T11:55:44")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	out, err := df.Format(got)
	if err != nil {
		t.Fatal(err)
	}
	if out != "2017-12-06T11:55:44" {
		t.Errorf("got %q, want %q", out, "2017-12-06T11:55:44")
	}
}

func TestBasicISOFormats(t *testing.T) {
	got, err := MustNew(ISOFormatBasicDate).Parse("20160503")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2016, 5, 3, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOffsetParsing(t *testing.T) {
	df := MustNew("hh:mm:ss+HHMM")
	got, err := df.Parse("12:12:12-0530")
	if err != nil {
		t.Fatal(err)
	}
	if _, off := got.Zone(); off != -(5*3600 + 30*60) {
		t.Errorf("offset = %d, want %d", off, -(5*3600 + 30*60))
	}
	if got.Hour() != 12 || got.Minute() != 12 || got.Second() != 12 {
		t.Errorf("clock = %v, want 12:12:12", got)
	}
}

func TestFormatMissingTimezone(t *testing.T) {
	local := time.Date(2017, 12, 6, 11, 55, 44, 0, time.Local)
	for _, spec := range []string{"hh:mm+HHMM", ISOFormatDateTime + " (UTC)"} {
		_, err := MustNew(spec).Format(local)
		if !errors.Is(err, ErrMissingTimezone) {
			t.Errorf("%q: got %v, want ErrMissingTimezone", spec, err)
		}
	}
}

func TestFormatUnresolvedTimezone(t *testing.T) {
	df := MustNew(ISOFormatDateTime + " UTC")
	anonymous := time.Date(2017, 12, 6, 11, 55, 44, 0, time.FixedZone("", 3600))
	if _, err := df.Format(anonymous); !errors.Is(err, ErrUnresolvedTimezone) {
		t.Errorf("got %v, want ErrUnresolvedTimezone", err)
	}
}

func TestNamedTimezoneRoundTrip(t *testing.T) {
	warsaw, ok := DefaultProvider.Lookup("Europe/Warsaw")
	if !ok {
		t.Skip("no zoneinfo database available")
	}

	df := MustNew(ISOFormatDateTime + " UTC")
	got, err := df.Parse("2017-12-06T11:55:44 Europe/Warsaw")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2017, 12, 6, 11, 55, 44, 0, warsaw)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location().String() != "Europe/Warsaw" {
		t.Errorf("location = %q, want Europe/Warsaw", got.Location())
	}

	wrapped := MustNew(ISOFormatDateTime + " (UTC)")
	out, err := wrapped.Format(want)
	if err != nil {
		t.Fatal(err)
	}
	if out != "2017-12-06T11:55:44 (Europe/Warsaw)" {
		t.Errorf("got %q", out)
	}
}

func TestNamedTimezoneUnavailableWithoutProvider(t *testing.T) {
	_, err := New(ISOFormatDateTime+" UTC", WithProvider(nil))
	var specErr *SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("got %v, want a SpecError", err)
	}
}

func TestHourModeOverride(t *testing.T) {
	df := MustNew("hh:mm")
	if !df.Is24Hour() {
		t.Error("hh:mm should default to 24-hour")
	}
	if !df.Matches("16:23") {
		t.Error("24-hour format should match 16:23")
	}

	df = MustNew("hh:mmam")
	if df.Is24Hour() {
		t.Error("an AM/PM token should imply 12-hour")
	}
	if df.Matches("16:23am") {
		t.Error("12-hour format should not match hour 16")
	}

	df = MustNew("hh:mm", With24Hour(false))
	if df.Matches("16:23") {
		t.Error("forced 12-hour format should not match hour 16")
	}
}
