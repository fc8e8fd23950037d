package nametpl_test

import (
	"strings"
	"testing"

	"metamv/internal/metadata"
	"metamv/internal/nametpl"
)

func renderContext() metadata.Context {
	return metadata.Context{
		"title": "My Movie",
		"ct":    "20230501100000",
		"org":   "input.mkv",
		"v": map[string]any{
			"width":  1920,
			"height": 1080,
			"codec":  "h264",
		},
		"streams": []map[string]any{
			{"index": 0, "codec": "h264"},
			{"index": 1, "codec": "aac"},
		},
	}
}

func TestRenderDottedAccess(t *testing.T) {
	tpl, err := nametpl.Compile("{{.v.width}}x{{.v.height}}.mkv")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	got, err := tpl.Render(renderContext())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "1920x1080.mkv" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderIndexedStreamAccess(t *testing.T) {
	tpl, err := nametpl.Compile("{{(index .streams 1).codec}}_{{.ct}}.mkv")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	got, err := tpl.Render(renderContext())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "aac_20230501100000.mkv" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderMissingKeyFails(t *testing.T) {
	tpl, err := nametpl.Compile("{{.nonexistent}}.mkv")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if _, err := tpl.Render(renderContext()); err == nil {
		t.Fatal("expected render error for missing key")
	}
}

func TestRenderEmptyResultFails(t *testing.T) {
	tpl, err := nametpl.Compile("{{if false}}never{{end}}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if _, err := tpl.Render(renderContext()); err == nil {
		t.Fatal("expected error for empty rendered name")
	}
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	if _, err := nametpl.Compile("{{.unclosed"); err == nil {
		t.Fatal("expected compile error")
	}
	if _, err := nametpl.Compile("   "); err == nil {
		t.Fatal("expected error for empty template text")
	}
}

func TestTemplateFuncs(t *testing.T) {
	cases := []struct {
		name string
		tpl  string
		want string
	}{
		{"upper", `{{upper .v.codec}}`, "H264"},
		{"lower", `{{lower "MKV"}}`, "mkv"},
		{"title", `{{title "my movie"}}`, "My Movie"},
		{"trim", `{{trim "  x  "}}`, "x"},
		{"sanitize", `{{sanitize "a/b:c"}}`, "a-b-c"},
		{"token", `{{token "H.264-Main"}}`, "h_264-main"},
		{"lang", `{{lang "eng"}}`, "English"},
		{"iso2", `{{iso2 "fre"}}`, "fr"},
		{"iso3", `{{iso3 "de"}}`, "deu"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl, err := nametpl.Compile(tc.tpl)
			if err != nil {
				t.Fatalf("Compile returned error: %v", err)
			}
			got, err := tpl.Render(renderContext())
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	const text = "{{.org}}"
	tpl, err := nametpl.Compile(text)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if tpl.Text() != text {
		t.Fatalf("Text = %q", tpl.Text())
	}
	if !strings.Contains(tpl.Text(), "org") {
		t.Fatalf("unexpected text: %q", tpl.Text())
	}
}
