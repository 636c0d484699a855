package transform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial day 0, chosen for compatibility with the 1900 leap-year
// quirk of the source ecosystem.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateHintKeywords = []string{"date", "time", "timestamp", "day", "month", "year"}

// Numeric-domain hints that veto serial-date conversion for numeric columns.
var numericHintKeywords = []string{
	"age", "amount", "quantity", "price", "cost", "qty",
	"count", "number", "units", "total",
}

// FormatValue renders a raw cell as canonical output text. Numbers in
// date-hinted columns inside the plausible serial range convert to M/D/YYYY;
// anything unparsable degrades to the original text rather than failing.
func FormatValue(value any, columnHint string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return formatDate(v)
	case float64:
		return formatNumber(v, columnHint)
	case float32:
		return formatNumber(float64(v), columnHint)
	case int:
		return formatNumber(float64(v), columnHint)
	case int64:
		return formatNumber(float64(v), columnHint)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && serialDateEligible(f, columnHint) {
			return formatDate(serialToTime(f))
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64, hint string) string {
	if serialDateEligible(f, hint) {
		return formatDate(serialToTime(f))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// serialDateEligible gates conversion on the column hint and the plausible
// serial range: fractional values strictly inside (0, 100000), whole numbers
// only inside [1, 50000]. Boundary values are a compatibility contract.
func serialDateEligible(f float64, hint string) bool {
	h := strings.ToLower(hint)
	hinted := false
	for _, kw := range dateHintKeywords {
		if strings.Contains(h, kw) {
			hinted = true
			break
		}
	}
	if !hinted {
		return false
	}
	for _, kw := range numericHintKeywords {
		if strings.Contains(h, kw) {
			return false
		}
	}
	if f != math.Trunc(f) {
		return f > 0 && f < 100000
	}
	return f >= 1 && f <= 50000
}

func serialToTime(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	t := serialEpoch.AddDate(0, 0, days)
	if frac > 0 {
		t = t.Add(time.Duration(frac * 24 * float64(time.Hour)))
	}
	return t
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
