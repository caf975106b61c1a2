// Package money formats monetary amounts and dates for invoices and payments.
package money

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders d as USD with thousands grouping and exactly two decimals.
func FormatCurrency(d decimal.Decimal) string {
	r := d.Round(2)

	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}

	fixed := r.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + fixed
	}

	return sign + "$" + humanize.Comma(n) + "." + frac
}

const dateLayout = "Jan 2, 2006"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

// ParseTimestamp accepts the ISO-8601 shapes the backend emits.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported format", s)
}

// FormatDate renders an ISO-8601 timestamp as "Jan 5, 2024".
func FormatDate(iso string) (string, error) {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return "", err
	}

	return FormatTime(t), nil
}

// FormatTime renders t in its own location without a time component.
func FormatTime(t time.Time) string {
	return t.Format(dateLayout)
}
