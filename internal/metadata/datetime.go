package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// normalizeDatetime converts a creation_time tag value into the configured
// strftime form. The input must be an RFC 3339 timestamp (fractional seconds
// accepted); it is shifted to the local time zone before formatting.
func normalizeDatetime(raw any, pattern string) (string, error) {
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("creation_time: expected string value, got %T", raw)
	}

	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("creation_time: %w", err)
	}

	return strftime.Format(pattern, parsed.Local()), nil
}
