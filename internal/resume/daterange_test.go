package resume

import "testing"

func TestFormatRange(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"start and end", "2020-01", "2022-03", false, "Jan 2020 - Mar 2022"},
		{"current overrides end", "2020-01", "2022-03", true, "Jan 2020 - Present"},
		{"current overrides garbage end", "2020-01", "not-a-date", true, "Jan 2020 - Present"},
		{"empty start", "", "2022-03", false, ""},
		{"empty start with current", "", "", true, ""},
		{"unparseable start", "whenever", "2022-03", false, ""},
		{"missing end", "2020-01", "", false, "Jan 2020"},
		{"unparseable end degrades", "2020-01", "someday", false, "Jan 2020"},
		{"full date start", "2020-01-15", "2021-06-30", false, "Jan 2020 - Jun 2021"},
		{"bare year", "2019", "2021", false, "Jan 2019 - Jan 2021"},
		{"slash format", "2020/04", "", false, "Apr 2020"},
		{"whitespace trimmed", " 2020-01 ", " 2020-12 ", false, "Jan 2020 - Dec 2020"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatRange(tc.start, tc.end, tc.current)
			if got != tc.want {
				t.Fatalf("FormatRange(%q, %q, %v) = %q, want %q", tc.start, tc.end, tc.current, got, tc.want)
			}
		})
	}
}

func TestFormatRangeIdempotent(t *testing.T) {
	// Output that is fed back in must round-trip unchanged.
	first := FormatRange("2020-01", "2022-03", false)
	again := FormatRange("Jan 2020", "Mar 2022", false)
	if first != again {
		t.Fatalf("expected idempotent formatting, got %q then %q", first, again)
	}
}
