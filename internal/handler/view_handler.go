package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/internal/view"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
)

// filterFromQuery reads the shared view/report filter parameters
func filterFromQuery(c echo.Context) view.Filter {
	var f view.Filter
	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		if v, err := strconv.ParseUint(categoryID, 10, 32); err == nil {
			f.CategoryID = uint(v)
		}
	}
	if supplierID := c.QueryParam("supplier_id"); supplierID != "" {
		if v, err := strconv.ParseUint(supplierID, 10, 32); err == nil {
			f.SupplierID = uint(v)
		}
	}
	f.Status = c.QueryParam("status")
	return f
}

// validateStatus rejects status values outside the stock ladder
func validateStatus(status string) error {
	if status != "" && !stock.ValidStatus(status) {
		return &model.ValidationError{Field: "status", Reason: "unknown stock status " + status}
	}
	return nil
}

// GetCriticalityView returns products ordered by stock urgency
func GetCriticalityView(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Building criticality view")

	f := filterFromQuery(c)
	if err := validateStatus(f.Status); err != nil {
		log.Warn("Invalid status filter", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
	products, err := view.FetchProducts(database.GetDB(), f)
	if err != nil {
		log.Error("Failed to fetch products for criticality view", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build criticality view",
		})
	}

	rows := view.Criticality(products, f.Status)
	log.Info("Criticality view built", zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}

// GetProfitabilityView returns per-product margin and coverage figures
func GetProfitabilityView(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Building profitability view")

	f := filterFromQuery(c)
	if err := validateStatus(f.Status); err != nil {
		log.Warn("Invalid status filter", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
	products, err := view.FetchProducts(database.GetDB(), f)
	if err != nil {
		log.Error("Failed to fetch products for profitability view", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build profitability view",
		})
	}

	rows := view.Profitability(view.ApplyStatus(products, f.Status))
	log.Info("Profitability view built", zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}

// GetTopProductsView returns the best sellers with sales and profit ranks
func GetTopProductsView(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Building top products view")

	limit := 10
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if v, err := strconv.Atoi(limitParam); err == nil && v > 0 {
			limit = v
		}
	}

	f := filterFromQuery(c)
	if err := validateStatus(f.Status); err != nil {
		log.Warn("Invalid status filter", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
	products, err := view.FetchProducts(database.GetDB(), f)
	if err != nil {
		log.Error("Failed to fetch products for top products view", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build top products view",
		})
	}

	rows := view.TopProducts(view.ApplyStatus(products, f.Status), limit)
	log.Info("Top products view built",
		zap.Int("limit", limit),
		zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
