package normalizer

import (
	"strings"
	"time"
)

// createdLayouts are the timestamp shapes the upstream API has been seen
// serving, with and without fractional seconds and zone offset.
var createdLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseCreated parses a loosely formatted ISO-8601 timestamp into unix
// seconds. A trailing "Z" and numeric offsets without a colon ("+0200") are
// accepted. Empty or unparsable input yields 0 so broken records sort oldest.
func ParseCreated(value string) float64 {
	if value == "" {
		return 0
	}

	value = fixOffset(value)

	for _, layout := range createdLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return float64(parsed.UnixNano()) / float64(time.Second)
		}
	}

	return 0
}

// fixOffset rewrites "Z" as "+00:00" and inserts the missing colon into
// offsets like "+0200".
func fixOffset(value string) string {
	if strings.HasSuffix(value, "Z") {
		return value[:len(value)-1] + "+00:00"
	}

	ix := strings.LastIndex(value, "+")
	if ix == -1 {
		return value
	}

	offset := value[ix+1:]
	if len(offset) == 4 && !strings.Contains(offset, ":") {
		return value[:ix+1] + offset[:2] + ":" + offset[2:]
	}

	return value
}
