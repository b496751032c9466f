package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
)

// ListAlerts retrieves alerts, active ones by default, with optional
// state and priority filters
func ListAlerts(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing alerts")

	state := c.QueryParam("state")
	if state == "" {
		state = model.AlertStateActive
	}
	if state != model.AlertStateActive && state != model.AlertStateResolved && state != model.AlertStateIgnored {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "unknown alert state " + state,
		})
	}

	query := database.GetDB().Preload("Product").Where("state = ?", state)
	if priority := c.QueryParam("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if productID := c.QueryParam("product_id"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var alerts []model.Alert
	result := query.Order("generated_at DESC, id DESC").Find(&alerts)
	if result.Error != nil {
		log.Error("Failed to list alerts", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve alerts",
		})
	}

	log.Info("Alerts retrieved successfully",
		zap.String("state", state),
		zap.Int("count", len(alerts)))
	return c.JSON(http.StatusOK, alerts)
}

// ResolveAlert marks an active alert as resolved
func ResolveAlert(c echo.Context) error {
	return closeAlert(c, model.AlertStateResolved)
}

// IgnoreAlert marks an active alert as ignored
func IgnoreAlert(c echo.Context) error {
	return closeAlert(c, model.AlertStateIgnored)
}

func closeAlert(c echo.Context, targetState string) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Closing alert",
		zap.String("alert_id", id),
		zap.String("target_state", targetState))

	var alert model.Alert
	result := database.GetDB().First(&alert, id)
	if result.Error != nil {
		log.Error("Alert not found",
			zap.String("alert_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Alert not found",
		})
	}

	if alert.State != model.AlertStateActive {
		log.Warn("Alert is no longer active",
			zap.String("alert_id", id),
			zap.String("state", alert.State))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Alert is no longer active",
		})
	}

	now := time.Now()
	alert.State = targetState
	alert.ResolvedAt = &now

	result = database.GetDB().Save(&alert)
	if result.Error != nil {
		log.Error("Failed to close alert",
			zap.String("alert_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update alert",
		})
	}

	log.Info("Alert closed successfully",
		zap.String("alert_id", id),
		zap.String("state", alert.State))
	return c.JSON(http.StatusOK, alert)
}
