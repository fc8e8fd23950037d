package language

import "strings"

type entry struct {
	iso2    string
	iso3    string
	display string
}

// table holds every spelling a language tag shows up as: ISO 639-1,
// ISO 639-2 (both variants where they differ), and the English word form.
var table = map[string]*entry{}

func register(iso2, iso3, alt3, display string, words ...string) {
	e := &entry{iso2: iso2, iso3: iso3, display: display}
	table[iso2] = e
	table[iso3] = e
	if alt3 != "" {
		table[alt3] = e
	}
	for _, w := range words {
		table[w] = e
	}
}

func init() {
	register("en", "eng", "", "English", "english")
	register("es", "spa", "", "Spanish", "spanish")
	register("fr", "fra", "fre", "French", "french")
	register("de", "deu", "ger", "German", "german")
	register("it", "ita", "", "Italian", "italian")
	register("pt", "por", "", "Portuguese", "portuguese")
	register("ja", "jpn", "", "Japanese", "japanese")
	register("ko", "kor", "", "Korean", "korean")
	register("zh", "zho", "chi", "Chinese", "chinese")
	register("ru", "rus", "", "Russian", "russian")
	register("ar", "ara", "", "Arabic", "arabic")
	register("hi", "hin", "", "Hindi", "hindi")
	register("nl", "nld", "dut", "Dutch", "dutch")
	register("pl", "pol", "", "Polish", "polish")
	register("sv", "swe", "", "Swedish", "swedish")
	register("da", "dan", "", "Danish", "danish")
	register("no", "nor", "", "Norwegian", "norwegian")
	register("fi", "fin", "", "Finnish", "finnish")
}

// ToISO2 maps any recognized code or word form to its two-letter form.
// Unrecognized two-letter input passes through; anything else comes back
// empty.
func ToISO2(code string) string {
	cleaned := strings.ToLower(strings.TrimSpace(code))
	if e := table[cleaned]; e != nil {
		return e.iso2
	}
	if len(cleaned) == 2 {
		return cleaned
	}
	return ""
}

// ToISO3 maps any recognized code or word form to its primary three-letter
// form. Unrecognized three-letter input passes through; anything else comes
// back as "und", ffmpeg's undetermined-language code.
func ToISO3(code string) string {
	cleaned := strings.ToLower(strings.TrimSpace(code))
	if e := table[cleaned]; e != nil {
		return e.iso3
	}
	if len(cleaned) == 3 {
		return cleaned
	}
	return "und"
}

// DisplayName returns the human-readable name for a recognized code,
// "Unknown" for empty input, and the uppercased code otherwise.
func DisplayName(code string) string {
	cleaned := strings.ToLower(strings.TrimSpace(code))
	if cleaned == "" {
		return "Unknown"
	}
	if e := table[cleaned]; e != nil {
		return e.display
	}
	return strings.ToUpper(cleaned)
}

// tagKeys lists the spellings containers use for the language tag.
var tagKeys = []string{"language", "LANGUAGE", "Language", "language_ietf", "lang", "LANG"}

// FromTags pulls a stream's language tag. Muxers disagree on the key casing
// and some pad values with NUL bytes; both quirks are handled here. Returns
// the lowercased raw tag value, or "" when no key is present.
func FromTags(tags map[string]string) string {
	for _, key := range tagKeys {
		value, ok := tags[key]
		if !ok {
			continue
		}
		value = strings.TrimSpace(strings.ReplaceAll(value, "\x00", ""))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
