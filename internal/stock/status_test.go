package stock

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		minimum      int
		reorderPoint int
		want         string
	}{
		{"zero stock", 0, 5, 10, StatusOut},
		{"negative stock", -1, 5, 10, StatusOut},
		{"zero stock with zero minimum", 0, 0, 0, StatusOut},
		{"at minimum", 5, 5, 10, StatusCritical},
		{"below minimum", 3, 5, 10, StatusCritical},
		{"just above minimum", 6, 5, 10, StatusLow},
		{"at reorder point", 10, 5, 10, StatusLow},
		{"above reorder point", 11, 5, 10, StatusNormal},
		{"healthy stock", 100, 5, 10, StatusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.current, tt.minimum, tt.reorderPoint)
			if got != tt.want {
				t.Errorf("Classify(%d, %d, %d) = %s, want %s",
					tt.current, tt.minimum, tt.reorderPoint, got, tt.want)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every combination in a small grid has to land in exactly one band
	known := map[string]bool{
		StatusOut:      true,
		StatusCritical: true,
		StatusLow:      true,
		StatusNormal:   true,
	}
	for current := -2; current <= 15; current++ {
		for minimum := 0; minimum <= 10; minimum++ {
			for reorder := minimum; reorder <= 12; reorder++ {
				if got := Classify(current, minimum, reorder); !known[got] {
					t.Fatalf("Classify(%d, %d, %d) returned unknown band %q",
						current, minimum, reorder, got)
				}
			}
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusOut, StatusCritical, StatusLow, StatusNormal} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "critico", "AGOTADO", "NORMAL "} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestIsCritical(t *testing.T) {
	if !IsCritical(StatusOut) {
		t.Error("SIN_STOCK should be critical")
	}
	if !IsCritical(StatusCritical) {
		t.Error("CRITICO should be critical")
	}
	if IsCritical(StatusLow) {
		t.Error("BAJO should not be critical")
	}
	if IsCritical(StatusNormal) {
		t.Error("NORMAL should not be critical")
	}
}
