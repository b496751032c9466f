package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

// CreateMovement applies a stock movement and returns the resulting
// stock status plus the alert it may have generated
func CreateMovement(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Applying stock movement")

	var req stock.MovementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	result, err := stock.Apply(database.GetDB(), req)
	if err != nil {
		switch {
		case model.IsValidation(err):
			log.Warn("Movement validation failed",
				zap.Uint("product_id", req.ProductID),
				zap.String("type", req.Type),
				zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		case model.IsConstraint(err):
			log.Warn("Movement references unknown product",
				zap.Uint("product_id", req.ProductID),
				zap.Error(err))
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": err.Error(),
			})
		default:
			log.Error("Failed to apply movement",
				zap.Uint("product_id", req.ProductID),
				zap.String("type", req.Type),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to apply movement",
			})
		}
	}

	prometheus.RecordMovement(req.Type)
	if result.Alert != nil {
		prometheus.RecordAlert(result.Alert.Priority)
		log.Warn("Low stock alert generated",
			zap.Uint("product_id", req.ProductID),
			zap.String("priority", result.Alert.Priority),
			zap.Int("stock_after", result.Movement.StockAfter))
	}

	log.Info("Movement applied successfully",
		zap.Uint("product_id", req.ProductID),
		zap.String("type", req.Type),
		zap.Int("stock_before", result.Movement.StockBefore),
		zap.Int("stock_after", result.Movement.StockAfter),
		zap.String("status", result.Status))
	return c.JSON(http.StatusCreated, result)
}

// ListMovements retrieves the movement history, newest first, with
// optional product and type filters
func ListMovements(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing movements")

	query := database.GetDB().Model(&model.Movement{})

	if productID := c.QueryParam("product_id"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	if movementType := c.QueryParam("type"); movementType != "" {
		if !model.ValidMovementType(movementType) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "unknown movement type " + movementType,
			})
		}
		query = query.Where("type = ?", movementType)
	}

	limit := 100
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if v, err := strconv.Atoi(limitParam); err == nil && v > 0 {
			limit = v
		}
	}

	var movements []model.Movement
	result := query.Order("created_at DESC, id DESC").Limit(limit).Find(&movements)
	if result.Error != nil {
		log.Error("Failed to list movements", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve movements",
		})
	}

	log.Info("Movements retrieved successfully", zap.Int("count", len(movements)))
	return c.JSON(http.StatusOK, movements)
}
