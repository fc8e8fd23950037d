package textutil

import "strings"

// Path separators and colons become dashes so a rendered name stays a single
// directory entry; the remaining reserved characters are dropped outright.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes a template-rendered name safe to use as a filename.
// Separators become dashes, other reserved characters and control bytes are
// dropped, and surrounding whitespace is trimmed. Container tags routinely
// smuggle NUL bytes and newlines into otherwise printable values.
func SanitizeFileName(name string) string {
	name = strings.Map(dropControl, name)
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

func dropControl(r rune) rune {
	if r < 0x20 || r == 0x7f {
		return -1
	}
	return r
}

// SanitizeToken reduces a metadata value to a lowercase identifier for
// filename fragments. Letters are lowercased; digits, dashes, and underscores
// pass through; every other rune collapses to an underscore. Values with
// nothing usable come back as "unknown" so the rendered name never ends up
// with an empty segment.
func SanitizeToken(value string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, strings.TrimSpace(value))

	mapped = strings.Trim(mapped, "_-")
	if mapped == "" {
		return "unknown"
	}
	return mapped
}
