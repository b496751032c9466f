package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

// Receive-flow failures, mapped to HTTP statuses by the handler
var (
	errOrderClosed  = errors.New("purchase order is closed")
	errLineNotFound = errors.New("order line not found")
	errLineComplete = errors.New("order line is already fully received")
)

// PurchaseOrderRequest defines the structure for order creation requests
type PurchaseOrderRequest struct {
	SupplierID uint               `json:"supplier_id"`
	ExpectedAt *string            `json:"expected_at"`
	Note       string             `json:"note"`
	Lines      []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is a single ordered item
type OrderLineRequest struct {
	ProductID  uint    `json:"product_id"`
	QtyOrdered int     `json:"qty_ordered"`
	UnitPrice  float64 `json:"unit_price"`
}

// ReceiveLineRequest carries the received quantity for one order line
type ReceiveLineRequest struct {
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference"`
}

// ListPurchaseOrders retrieves orders with an optional status filter
func ListPurchaseOrders(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing purchase orders")

	query := database.GetDB().Preload("Supplier").Preload("Lines")
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.PurchaseOrder
	result := query.Order("id DESC").Find(&orders)
	if result.Error != nil {
		log.Error("Failed to list purchase orders", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve purchase orders",
		})
	}

	log.Info("Purchase orders retrieved successfully", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}

// GetPurchaseOrder retrieves an order with its lines and products
func GetPurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var order model.PurchaseOrder
	result := database.GetDB().
		Preload("Supplier").Preload("Lines").Preload("Lines.Product").
		First(&order, id)
	if result.Error != nil {
		log.Error("Purchase order not found",
			zap.String("order_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Purchase order not found",
		})
	}

	return c.JSON(http.StatusOK, order)
}

// CreatePurchaseOrder creates a pending order with its lines
func CreatePurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating purchase order")

	var req PurchaseOrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if len(req.Lines) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "order needs at least one line",
		})
	}

	db := database.GetDB()
	if err := rowExists(db, &model.Supplier{}, req.SupplierID, "supplier"); err != nil {
		log.Warn("Order references unknown supplier",
			zap.Uint("supplier_id", req.SupplierID))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": err.Error(),
		})
	}

	order := model.PurchaseOrder{
		SupplierID: req.SupplierID,
		Status:     model.OrderStatePending,
		OrderedAt:  time.Now(),
		Note:       req.Note,
	}
	if req.ExpectedAt != nil {
		if t, err := time.Parse("2006-01-02", *req.ExpectedAt); err == nil {
			order.ExpectedAt = &t
		}
	}

	for i, line := range req.Lines {
		if line.QtyOrdered <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("line %d: quantity must be positive", i+1),
			})
		}
		if line.UnitPrice < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("line %d: unit price cannot be negative", i+1),
			})
		}
		if err := rowExists(db, &model.Product{}, line.ProductID, "product"); err != nil {
			log.Warn("Order line references unknown product",
				zap.Int("line", i+1),
				zap.Uint("product_id", line.ProductID))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": fmt.Sprintf("line %d: %s", i+1, err.Error()),
			})
		}
		order.Lines = append(order.Lines, model.PurchaseOrderLine{
			ProductID:  line.ProductID,
			QtyOrdered: line.QtyOrdered,
			UnitPrice:  line.UnitPrice,
		})
	}

	result := db.Create(&order)
	if result.Error != nil {
		log.Error("Failed to create purchase order",
			zap.Uint("supplier_id", req.SupplierID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create purchase order",
		})
	}

	log.Info("Purchase order created successfully",
		zap.Uint("order_id", order.ID),
		zap.Uint("supplier_id", order.SupplierID),
		zap.Int("lines", len(order.Lines)))
	return c.JSON(http.StatusCreated, order)
}

// ReceiveOrderLine books received goods against one order line. The
// received quantity is clamped to what is still outstanding, the stock
// entry goes through the movement pipeline, and the order status moves
// to PARCIAL or RECIBIDA as lines fill up.
func ReceiveOrderLine(c echo.Context) error {
	log := logger.FromContext(c)
	orderID := c.Param("id")
	lineID := c.Param("line_id")
	log.Info("Receiving order line",
		zap.String("order_id", orderID),
		zap.String("line_id", lineID))

	var req ReceiveLineRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "quantity must be positive",
		})
	}

	// The movement, the line update and the order status must commit
	// together: a crash between them would let a retry book the same
	// receipt twice.
	var (
		order          model.PurchaseOrder
		received       int
		movementResult *stock.Result
	)
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Lines").First(&order, orderID).Error; err != nil {
			return err
		}
		if order.Terminal() {
			return errOrderClosed
		}

		var line *model.PurchaseOrderLine
		for i := range order.Lines {
			if fmt.Sprint(order.Lines[i].ID) == lineID {
				line = &order.Lines[i]
				break
			}
		}
		if line == nil {
			return errLineNotFound
		}

		var ok bool
		received, ok = receivableQty(line, req.Quantity)
		if !ok {
			return errLineComplete
		}
		if received < req.Quantity {
			log.Warn("Received quantity clamped to outstanding",
				zap.String("line_id", lineID),
				zap.Int("requested", req.Quantity),
				zap.Int("received", received))
		}

		reference := req.Reference
		if reference == "" {
			reference = fmt.Sprintf("OC-%d", order.ID)
		}
		result, err := stock.ApplyTx(tx, stock.MovementRequest{
			ProductID: line.ProductID,
			Type:      model.MovementTypeIn,
			Quantity:  received,
			Reference: reference,
		})
		if err != nil {
			return err
		}
		movementResult = result

		line.QtyReceived += received
		if err := tx.Save(line).Error; err != nil {
			return err
		}

		order.Status = orderStatusFromLines(order.Lines)
		return tx.Model(&order).Update("status", order.Status).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Error("Purchase order not found",
				zap.String("order_id", orderID),
				zap.Error(err))
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Purchase order not found",
			})
		case errors.Is(err, errLineNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Order line not found",
			})
		case errors.Is(err, errOrderClosed):
			log.Warn("Purchase order is closed",
				zap.String("order_id", orderID),
				zap.String("status", order.Status))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Purchase order is closed",
			})
		case errors.Is(err, errLineComplete):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Order line is already fully received",
			})
		case model.IsValidation(err):
			log.Warn("Invalid receiving movement", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		default:
			log.Error("Failed to receive order line",
				zap.String("order_id", orderID),
				zap.String("line_id", lineID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to receive order line",
			})
		}
	}
	prometheus.RecordMovement(model.MovementTypeIn)

	log.Info("Order line received successfully",
		zap.String("order_id", orderID),
		zap.String("line_id", lineID),
		zap.Int("received", received),
		zap.String("order_status", order.Status))
	return c.JSON(http.StatusOK, echo.Map{
		"order":    order,
		"received": received,
		"movement": movementResult.Movement,
	})
}

// CancelPurchaseOrder cancels an order that is not yet fully received.
// Stock already booked through partial receipts stays in place.
func CancelPurchaseOrder(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Canceling purchase order", zap.String("order_id", id))

	db := database.GetDB()
	var order model.PurchaseOrder
	if err := db.First(&order, id).Error; err != nil {
		log.Error("Purchase order not found",
			zap.String("order_id", id),
			zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Purchase order not found",
		})
	}
	if order.Terminal() {
		log.Warn("Purchase order is already closed",
			zap.String("order_id", id),
			zap.String("status", order.Status))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Purchase order is already closed",
		})
	}

	order.Status = model.OrderStateCanceled
	if err := db.Model(&order).Update("status", order.Status).Error; err != nil {
		log.Error("Failed to cancel purchase order",
			zap.String("order_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to cancel purchase order",
		})
	}

	log.Info("Purchase order canceled", zap.String("order_id", id))
	return c.JSON(http.StatusOK, order)
}

// receivableQty clamps a requested receipt to what is still outstanding
// on the line. ok is false when nothing is outstanding.
func receivableQty(line *model.PurchaseOrderLine, requested int) (int, bool) {
	outstanding := line.QtyOrdered - line.QtyReceived
	if outstanding <= 0 {
		return 0, false
	}
	if requested > outstanding {
		return outstanding, true
	}
	return requested, true
}

func orderStatusFromLines(lines []model.PurchaseOrderLine) string {
	received := 0
	full := true
	for _, line := range lines {
		if line.QtyReceived > 0 {
			received++
		}
		if line.QtyReceived < line.QtyOrdered {
			full = false
		}
	}
	switch {
	case full:
		return model.OrderStateReceived
	case received > 0:
		return model.OrderStatePartial
	default:
		return model.OrderStatePending
	}
}
