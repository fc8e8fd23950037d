package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"passthrough", "Movie (2021).mkv", "Movie (2021).mkv"},
		{"slash becomes dash", "AC/DC Live.mkv", "AC-DC Live.mkv"},
		{"colon becomes dash", "Alien: Covenant.mkv", "Alien- Covenant.mkv"},
		{"drops quotes and angles", `the "best" <cut>.mp4`, "the best cut.mp4"},
		{"drops control bytes", "bad\x00name\n.mkv", "badname.mkv"},
		{"trims whitespace", "  padded.webm  ", "padded.webm"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFileName(tc.in); got != tc.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "H264", "h264"},
		{"keeps digits and dashes", "avc1-main_10", "avc1-main_10"},
		{"replaces other runes", "yuv420p(tv)", "yuv420p_tv"},
		{"empty is unknown", "   ", "unknown"},
		{"all symbols is unknown", "///", "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeToken(tc.in); got != tc.want {
				t.Fatalf("SanitizeToken(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
