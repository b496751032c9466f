// Package stock holds the stock-status classification and the
// low-stock alert rule, plus the transactional movement apply that
// ties them together.
package stock

// Stock status bands, most urgent first
const (
	StatusOut      = "SIN_STOCK"
	StatusCritical = "CRITICO"
	StatusLow      = "BAJO"
	StatusNormal   = "NORMAL"
)

// Classify returns the stock-status band for the given counters.
// Total function: every (current, minimum, reorderPoint) triple maps
// to exactly one band.
func Classify(current, minimum, reorderPoint int) string {
	switch {
	case current <= 0:
		return StatusOut
	case current <= minimum:
		return StatusCritical
	case current <= reorderPoint:
		return StatusLow
	default:
		return StatusNormal
	}
}

// IsCritical reports whether a band needs immediate attention
func IsCritical(status string) bool {
	return status == StatusOut || status == StatusCritical
}

// ValidStatus reports whether s names one of the stock bands
func ValidStatus(s string) bool {
	switch s {
	case StatusOut, StatusCritical, StatusLow, StatusNormal:
		return true
	}
	return false
}
