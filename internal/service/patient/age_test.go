package patient

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		on    time.Time
		want  int
	}{
		{"day before 24th birthday", date(2000, 6, 15), date(2024, 6, 14), 23},
		{"on 24th birthday", date(2000, 6, 15), date(2024, 6, 15), 24},
		{"day after 24th birthday", date(2000, 6, 15), date(2024, 6, 16), 24},
		{"same year", date(2024, 1, 10), date(2024, 12, 31), 0},
		{"one year exactly", date(2023, 3, 1), date(2024, 3, 1), 1},
		{"leap day birth, non-leap year", date(2000, 2, 29), date(2023, 2, 28), 22},
		{"leap day birth, March 1 non-leap", date(2000, 2, 29), date(2023, 3, 1), 23},
		{"born in the future", date(2030, 1, 1), date(2024, 1, 1), 0},
		{"month earlier same year count", date(1990, 12, 1), date(2024, 1, 15), 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(tt.birth, tt.on); got != tt.want {
				t.Errorf("AgeAt(%v, %v) = %d, want %d", tt.birth, tt.on, got, tt.want)
			}
		})
	}
}
