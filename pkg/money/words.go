package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const wordsSuffix = " Dollars Only"

var (
	smallWords = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensWords = [...]string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scaleWords = [...]string{
		"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	}
)

// AmountInWords spells the whole dollars of d, e.g. "Five Hundred Nineteen Dollars Only".
// Cents are dropped, so callers must pass the same total they display.
func AmountInWords(d decimal.Decimal) string {
	return capitalizeWords(NumberToWords(d.IntPart())) + wordsSuffix
}

// NumberToWords spells n in lower case English. Tens and units are hyphenated
// and thousand groups are separated by commas ("one thousand, twenty-four").
func NumberToWords(n int64) string {
	if n == 0 {
		return smallWords[0]
	}

	if n < 0 {
		// -n overflows for MinInt64; spell its groups from the unsigned value.
		return "minus " + groupsToWords(uint64(-(n + 1))+1)
	}

	return groupsToWords(uint64(n))
}

func groupsToWords(n uint64) string {
	var groups []int

	for n > 0 {
		groups = append(groups, int(n%1000)) //nolint:gosec
		n /= 1000
	}

	parts := make([]string, 0, len(groups))

	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}

		w := hundredsToWords(groups[i])
		if scaleWords[i] != "" {
			w += " " + scaleWords[i]
		}

		parts = append(parts, w)
	}

	return strings.Join(parts, ", ")
}

func hundredsToWords(n int) string {
	var parts []string

	if n >= 100 {
		parts = append(parts, smallWords[n/100]+" hundred")
		n %= 100
	}

	switch {
	case n >= 20:
		w := tensWords[n/10]
		if n%10 != 0 {
			w += "-" + smallWords[n%10]
		}

		parts = append(parts, w)
	case n > 0:
		parts = append(parts, smallWords[n])
	}

	return strings.Join(parts, " ")
}

// capitalizeWords upper-cases every letter that starts a word.
func capitalizeWords(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	prevWord := false

	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}

		prevWord = isWord

		b.WriteRune(r)
	}

	return b.String()
}
