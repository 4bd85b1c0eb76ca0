// Package dates normalizes the loosely formatted date strings carried by
// indexed articles into sortable keys and display labels. Both functions
// are total: bad input degrades to 0 or to the input itself.
package dates

import (
	"strconv"
	"strings"
)

// SortableKey converts an arbitrary date-ish string into a YYYYMMDD
// integer usable as a chronological sort key, or 0 when the input does
// not resolve to at least eight digits.
//
// Six- and seven-digit strings are assumed to be a year + month + day
// that lost a leading zero: the first four digits are the year, the
// fifth digit alone is the month, the rest is the day, with month and
// day zero-padded. The assumption is lossy on purpose: "2025113" reads
// as 2025-01-13, never 2025-11-03.
func SortableKey(input string) int {
	digits := digitsOnly(input)

	if len(digits) == 6 || len(digits) == 7 {
		year := digits[:4]
		month := padTwo(digits[4:5])
		day := padTwo(digits[5:])
		digits = year + month + day
	}

	if len(digits) < 8 {
		return 0
	}

	key, err := strconv.Atoi(digits[:8])
	if err != nil {
		return 0
	}
	return key
}

// KoreanLabel renders a "YYYY-M-D"-shaped string as "YYYY년 M월 D일".
// Anything that does not split into exactly three dash-separated parts
// is returned unchanged; leading zeros on month and day are dropped.
func KoreanLabel(input string) string {
	if input == "" {
		return ""
	}

	parts := strings.Split(input, "-")
	if len(parts) != 3 {
		return input
	}

	year := parts[0]
	month := strconv.Itoa(atoiOrZero(parts[1]))
	day := strconv.Itoa(atoiOrZero(parts[2]))

	return year + "년 " + month + "월 " + day + "일"
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
