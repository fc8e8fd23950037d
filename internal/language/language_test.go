package language

import "testing"

func TestToISO2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"eng", "en"},
		{"fre", "fr"},
		{"fra", "fr"},
		{"ger", "de"},
		{"chi", "zh"},
		{"English", "en"},
		{"GERMAN", "de"},
		{"xy", "xy"},
		{"xyz", ""},
		{"", ""},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := ToISO2(tc.in); got != tc.want {
			t.Fatalf("ToISO2(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToISO3(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"en", "eng"},
		{"eng", "eng"},
		{"fre", "fra"},
		{"dutch", "nld"},
		{"xyz", "xyz"},
		{"xy", "und"},
		{"", "und"},
	}
	for _, tc := range cases {
		if got := ToISO3(tc.in); got != tc.want {
			t.Fatalf("ToISO3(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"eng", "English"},
		{"ja", "Japanese"},
		{"norwegian", "Norwegian"},
		{"xyz", "XYZ"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.in); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromTags(t *testing.T) {
	if got := FromTags(map[string]string{"language": "eng"}); got != "eng" {
		t.Fatalf("FromTags lowercase key = %q", got)
	}
	if got := FromTags(map[string]string{"LANGUAGE": "FRE"}); got != "fre" {
		t.Fatalf("FromTags uppercase key = %q", got)
	}
	if got := FromTags(map[string]string{"language": "eng\x00\x00"}); got != "eng" {
		t.Fatalf("FromTags NUL padding = %q", got)
	}
	if got := FromTags(map[string]string{"title": "nope"}); got != "" {
		t.Fatalf("FromTags unrelated tags = %q", got)
	}
	if got := FromTags(nil); got != "" {
		t.Fatalf("FromTags nil = %q", got)
	}
	// language takes precedence over lang.
	got := FromTags(map[string]string{"lang": "fra", "language": "eng"})
	if got != "eng" {
		t.Fatalf("FromTags precedence = %q", got)
	}
}
