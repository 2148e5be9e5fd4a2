package normalizer

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// poaDisplay is shown when the price is unknown or intentionally undisclosed.
const poaDisplay = "POA"

// poaTokens are upstream values meaning "price on application".
var poaTokens = []string{"POA", "ON REQUEST", "PRICE ON APPLICATION"}

// FormatPrice turns the upstream price field into a display string and a
// numeric sort key. The field arrives as a number, as a string with a comma
// decimal separator ("18499000,00"), or as free text. Unknown or undisclosed
// prices collapse to ("POA", 0); FormatPrice never fails.
func FormatPrice(raw any) (string, float64) {
	switch price := raw.(type) {
	case nil:
		return poaDisplay, 0
	case string:
		return formatPriceString(strings.TrimSpace(price))
	case float64:
		return "R" + groupThousands(int64(price)), price
	case int:
		return "R" + groupThousands(int64(price)), float64(price)
	default:
		return poaDisplay, 0
	}
}

func formatPriceString(price string) (string, float64) {
	if price == "" || lo.Contains(poaTokens, strings.ToUpper(price)) {
		return poaDisplay, 0
	}

	parts := strings.Split(price, ",")
	if len(parts) == 2 {
		return formatDecimalPrice(parts[0], parts[1])
	}

	digits := digitsOnly(price)
	if digits == "" {
		return poaDisplay, 0
	}

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return poaDisplay, 0
	}

	return "R" + groupThousands(int64(value)), value
}

// formatDecimalPrice handles the "major,minor" shape. The major part may
// carry non-digit noise ("R", spaces); only the first two characters after
// the comma count as the fractional part and they never show in the display.
func formatDecimalPrice(major, minor string) (string, float64) {
	majorDigits := digitsOnly(major)
	if majorDigits == "" {
		majorDigits = "0"
	}

	if len(minor) > 2 {
		minor = minor[:2]
	}

	value, err := strconv.ParseFloat(majorDigits+"."+minor, 64)
	if err != nil {
		return poaDisplay, 0
	}

	majorValue, err := strconv.ParseInt(majorDigits, 10, 64)
	if err != nil {
		return poaDisplay, 0
	}

	return "R" + groupThousands(majorValue), value
}

func digitsOnly(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	return digits.String()
}

// groupThousands renders an integer with single-space thousands separators.
func groupThousands(value int64) string {
	digits := strconv.FormatInt(value, 10)

	var sign string
	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}

	if len(digits) <= 3 {
		return sign + digits
	}

	var grouped strings.Builder
	head := len(digits) % 3
	if head > 0 {
		grouped.WriteString(digits[:head])
	}
	for ix := head; ix < len(digits); ix += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteString(digits[ix : ix+3])
	}

	return sign + grouped.String()
}
