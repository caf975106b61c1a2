package money_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/pkg/money"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"0":          "$0.00",
		"19":         "$19.00",
		"519":        "$519.00",
		"1234.5":     "$1,234.50",
		"1000000.99": "$1,000,000.99",
		"0.005":      "$0.01",
		"-5":         "-$5.00",
		"-0.001":     "$0.00",
	} {
		require.Equal(t, want, money.FormatCurrency(decimal.RequireFromString(in)), in)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"2024-01-05T10:30:00Z":          "Jan 5, 2024",
		"2024-01-05T00:00:00.000Z":      "Jan 5, 2024",
		"2024-12-31T23:59:59+05:30":     "Dec 31, 2024",
		"2024-03-09":                    "Mar 9, 2024",
		"2024-03-09 08:00:00":           "Mar 9, 2024",
		"2024-07-14T12:00:00.123456789": "Jul 14, 2024",
	} {
		got, err := money.FormatDate(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := money.FormatDate("yesterday")
	require.Error(t, err)

	require.Equal(t, "Feb 29, 2028", money.FormatTime(time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)))
}

func TestAmountInWords(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"519":     "Five Hundred Nineteen Dollars Only",
		"519.99":  "Five Hundred Nineteen Dollars Only",
		"119.00":  "One Hundred Nineteen Dollars Only",
		"19":      "Nineteen Dollars Only",
		"0":       "Zero Dollars Only",
		"21":      "Twenty-One Dollars Only",
		"1024":    "One Thousand, Twenty-Four Dollars Only",
		"100000":  "One Hundred Thousand Dollars Only",
		"1000100": "One Million, One Hundred Dollars Only",
		"2019.50": "Two Thousand, Nineteen Dollars Only",
	} {
		require.Equal(t, want, money.AmountInWords(decimal.RequireFromString(in)), in)
	}
}

func TestNumberToWords(t *testing.T) {
	t.Parallel()

	require.Equal(t, "minus forty-two", money.NumberToWords(-42))
	require.Equal(t, "ninety-nine thousand, nine hundred ninety-nine", money.NumberToWords(99999))
	require.Equal(t, "one billion", money.NumberToWords(1_000_000_000))
}
