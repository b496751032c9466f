package scheduler

import (
	"testing"
	"time"
)

const (
	foldQuarterSQL = "sales_quarter + sales_current_month"
	foldYearSQL    = "sales_year + sales_current_month"
	resetSQL       = "0"
)

func TestQuarterRollover(t *testing.T) {
	resets := map[time.Month]bool{
		time.January: true,
		time.April:   true,
		time.July:    true,
		time.October: true,
	}
	for m := time.January; m <= time.December; m++ {
		want := foldQuarterSQL
		if resets[m] {
			want = resetSQL
		}
		if got := quarterRollover(m).SQL; got != want {
			t.Errorf("%s: quarter rollover = %q, want %q", m, got, want)
		}
	}
}

func TestYearRollover(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		want := foldYearSQL
		if m == time.January {
			want = resetSQL
		}
		if got := yearRollover(m).SQL; got != want {
			t.Errorf("%s: year rollover = %q, want %q", m, got, want)
		}
	}
}
