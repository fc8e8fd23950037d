package ffprobe

import (
	"strconv"
	"strings"
)

// Rational is a fraction as ffprobe reports them: frame rates and time bases
// use "num/den", aspect ratios use "num:den".
type Rational struct {
	Num int64
	Den int64
}

// ParseRational parses either separator form. The boolean reports whether
// the input carried a well-formed fraction.
func ParseRational(value string) (Rational, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Rational{}, false
	}

	sep := "/"
	if !strings.Contains(value, sep) {
		sep = ":"
	}
	parts := strings.SplitN(value, sep, 2)
	if len(parts) != 2 {
		return Rational{}, false
	}

	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Rational{}, false
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

// String renders the canonical num/den form.
func (r Rational) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// Float returns the fraction as a float64. A zero denominator yields 0 so
// the value stays representable in JSON and templates.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Pair returns the numerator/denominator pair.
func (r Rational) Pair() [2]int64 {
	return [2]int64{r.Num, r.Den}
}
