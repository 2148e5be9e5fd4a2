package normalizer

import (
	"strconv"
	"strings"
)

// FormatMileage renders a distance with single-space thousands separators.
// Absent or unparsable values format as "0".
func FormatMileage(raw any) string {
	switch mileage := raw.(type) {
	case float64:
		return groupThousands(int64(mileage))
	case int:
		return groupThousands(int64(mileage))
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(mileage), 64)
		if err != nil {
			return "0"
		}
		return groupThousands(int64(value))
	default:
		return "0"
	}
}
