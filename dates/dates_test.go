package dates

import "testing"

func TestSortableKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"dashed full date", "2025-05-03", 20250503},
		{"six digits pads month and day", "202553", 20250503},
		{"seven digits pads day", "2025503", 20250503},
		{"seven digits always one month digit", "2025113", 20250113},
		{"eight digits passthrough", "20250503", 20250503},
		{"separators and noise stripped", "2025년 5월 3일", 20250503},
		{"overlong keeps first eight", "20250503123456", 20250503},
		{"too short", "2025", 0},
		{"five digits", "20255", 0},
		{"empty", "", 0},
		{"no digits at all", "날짜 미상", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SortableKey(c.input); got != c.want {
				t.Fatalf("SortableKey(%q) = %d; want %d", c.input, got, c.want)
			}
		})
	}
}

func TestSortableKeyOrdersChronologically(t *testing.T) {
	earlier := SortableKey("2024-12-31")
	later := SortableKey("2025-01-01")
	if earlier >= later {
		t.Fatalf("expected %d < %d", earlier, later)
	}
}

func TestKoreanLabel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"standard date", "2025-05-03", "2025년 5월 3일"},
		{"no leading zeros kept", "2025-12-25", "2025년 12월 25일"},
		{"single digit parts", "2025-5-3", "2025년 5월 3일"},
		{"empty", "", ""},
		{"not three parts", "2025/05/03", "2025/05/03"},
		{"two parts", "2025-05", "2025-05"},
		{"four parts", "2025-05-03-01", "2025-05-03-01"},
		{"plain text echoed", "날짜 미상", "날짜 미상"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := KoreanLabel(c.input); got != c.want {
				t.Fatalf("KoreanLabel(%q) = %q; want %q", c.input, got, c.want)
			}
		})
	}
}
