package stock

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory-analytics-service/internal/model"
)

// MovementRequest describes a single stock mutation.
// Quantity is always positive except for AJUSTE, where it is the
// signed delta to apply.
type MovementRequest struct {
	ProductID uint   `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference"`
	Note      string `json:"note"`
}

// Result reports what a movement changed
type Result struct {
	Movement *model.Movement `json:"movement"`
	Alert    *model.Alert    `json:"alert,omitempty"`
	Status   string          `json:"status"`
}

// Apply runs the stock mutation and the alert rule in one transaction:
// row lock, movement insert, product counter update, zero-or-one alert
// insert. The alert cannot be missed or duplicated because it commits
// or rolls back with the movement.
func Apply(db *gorm.DB, req MovementRequest) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result *Result
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = applyTx(tx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyTx runs the mutation inside an existing transaction, for
// callers that need other writes to commit or roll back with the
// movement.
func ApplyTx(tx *gorm.DB, req MovementRequest) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return applyTx(tx, req)
}

func validateRequest(req MovementRequest) error {
	if !model.ValidMovementType(req.Type) {
		return &model.ValidationError{Field: "type", Reason: "unknown movement type " + req.Type}
	}
	if req.Type != model.MovementTypeAdjustment && req.Quantity <= 0 {
		return &model.ValidationError{Field: "quantity", Reason: "quantity must be positive"}
	}
	return nil
}

func applyTx(tx *gorm.DB, req MovementRequest) (*Result, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, req.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &model.ConstraintError{Entity: "product", ID: req.ProductID}
		}
		return nil, err
	}

	prevStock := product.StockCurrent
	newStock, err := nextStock(prevStock, req.Type, req.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &model.Movement{
		ProductID:   product.ID,
		Type:        req.Type,
		Quantity:    req.Quantity,
		StockBefore: prevStock,
		StockAfter:  newStock,
		Reference:   req.Reference,
		Note:        req.Note,
		CreatedAt:   now,
	}
	if err := tx.Create(movement).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"stock_current": newStock}
	switch req.Type {
	case model.MovementTypeIn:
		updates["last_purchase_at"] = now
	case model.MovementTypeOut:
		updates["sales_current_month"] = gorm.Expr("sales_current_month + ?", req.Quantity)
		updates["last_sale_at"] = now
	}
	if err := tx.Model(&model.Product{}).Where("id = ?", product.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	result := &Result{
		Movement: movement,
		Status:   Classify(newStock, product.StockMinimum, product.ReorderPoint),
	}

	if alert := EvaluateAlert(&product, prevStock, newStock); alert != nil {
		if err := tx.Create(alert).Error; err != nil {
			return nil, err
		}
		result.Alert = alert
	}

	return result, nil
}

func nextStock(current int, movementType string, quantity int) (int, error) {
	var next int
	switch movementType {
	case model.MovementTypeIn:
		next = current + quantity
	case model.MovementTypeOut, model.MovementTypeShrinkage:
		next = current - quantity
	case model.MovementTypeAdjustment:
		next = current + quantity
	}
	if next < 0 {
		return 0, &model.ValidationError{
			Field:  "quantity",
			Reason: "movement would drive stock below zero",
		}
	}
	return next, nil
}
