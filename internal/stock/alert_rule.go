package stock

import (
	"fmt"
	"time"

	"inventory-analytics-service/internal/model"
)

// EvaluateAlert applies the low-stock rule to a single stock change and
// returns the alert to insert, or nil when no alert is due.
//
// The rule is edge-triggered: it fires only on a downward crossing of
// the minimum (new stock at or below the minimum while the previous
// stock was above it). Repeated decrements that stay below the minimum
// do not re-fire; the product must recover above the minimum before a
// new crossing can alert again.
func EvaluateAlert(p *model.Product, prevStock, newStock int) *model.Alert {
	if newStock > p.StockMinimum || prevStock <= p.StockMinimum {
		return nil
	}

	priority := model.AlertPriorityMedium
	if newStock == 0 {
		priority = model.AlertPriorityHigh
	}

	return &model.Alert{
		ProductID: p.ID,
		Type:      model.AlertTypeLowStock,
		Priority:  priority,
		Message: fmt.Sprintf("%s: stock %d alcanzó el mínimo (%d)",
			p.Name, newStock, p.StockMinimum),
		State:       model.AlertStateActive,
		GeneratedAt: time.Now(),
	}
}
