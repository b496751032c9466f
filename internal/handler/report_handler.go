package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/report"
	"inventory-analytics-service/internal/view"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

// respondReport writes a report as JSON or, when format=csv is
// requested, as a CSV download
func respondReport(c echo.Context, name string, payload interface{}, table report.Table) error {
	prometheus.RecordReportRun(name)

	if c.QueryParam("format") != "csv" {
		return c.JSON(http.StatusOK, payload)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.csv"`, name))
	c.Response().WriteHeader(http.StatusOK)
	return table.WriteCSV(c.Response())
}

// reportProducts fetches the filtered rows every report runs over.
// The stock-status filter applies after the fetch, once the band is
// classified; an unknown status is a validation error.
func reportProducts(c echo.Context) ([]model.Product, error) {
	f := filterFromQuery(c)
	if err := validateStatus(f.Status); err != nil {
		return nil, err
	}
	products, err := view.FetchProducts(database.GetDB(), f)
	if err != nil {
		return nil, err
	}
	return view.ApplyStatus(products, f.Status), nil
}

// GetABCReport classifies products by revenue contribution
func GetABCReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running ABC report")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for ABC report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run ABC report",
		})
	}

	rows := report.ABC(products)
	log.Info("ABC report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "abc", rows, report.ABCTable(rows))
}

// GetRotationReport computes inventory turnover per product
func GetRotationReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running rotation report")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for rotation report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run rotation report",
		})
	}

	rows := report.Rotation(products)
	log.Info("Rotation report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "rotation", rows, report.RotationTable(rows))
}

// GetSlowMoversReport lists products tying up capital without selling
func GetSlowMoversReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running slow movers report")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for slow movers report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run slow movers report",
		})
	}

	rows := report.SlowMovers(products, time.Now())
	log.Info("Slow movers report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "slow_movers", rows, report.SlowMoverTable(rows))
}

// GetDemandTrendReport projects next-month demand from the two most
// recent sales months
func GetDemandTrendReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running demand trend report")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for demand trend report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run demand trend report",
		})
	}

	rows := report.DemandTrend(products)
	log.Info("Demand trend report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "demand_trend", rows, report.TrendTable(rows))
}

// GetReorderReport suggests purchase quantities and the required
// investment for products at or below their minimum
func GetReorderReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running reorder report")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for reorder report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run reorder report",
		})
	}

	summary := report.ReorderSuggestions(products)
	log.Info("Reorder report completed",
		zap.Int("rows", len(summary.Rows)),
		zap.Float64("total_investment", summary.TotalInvestment))
	return respondReport(c, "reorder", summary, report.ReorderTable(summary))
}

// GetSupplierPerformanceReport aggregates revenue, margin and critical
// stock per supplier
func GetSupplierPerformanceReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running supplier performance report")

	db := database.GetDB()
	var suppliers []model.Supplier
	if err := db.Where("is_active = ?", true).Order("id").Find(&suppliers).Error; err != nil {
		log.Error("Failed to fetch suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run supplier performance report",
		})
	}
	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for supplier report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run supplier performance report",
		})
	}

	rows := report.SupplierPerformance(suppliers, products)
	log.Info("Supplier performance report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "supplier_performance", rows, report.SupplierTable(rows))
}

// GetCategoryProfitabilityReport aggregates sales and profit per category
func GetCategoryProfitabilityReport(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running category profitability report")

	db := database.GetDB()
	var categories []model.Category
	if err := db.Where("is_active = ?", true).Order("id").Find(&categories).Error; err != nil {
		log.Error("Failed to fetch categories", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run category profitability report",
		})
	}
	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for category report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run category profitability report",
		})
	}

	rows := report.CategoryProfitability(categories, products)
	log.Info("Category profitability report completed", zap.Int("rows", len(rows)))
	return respondReport(c, "category_profitability", rows, report.CategoryTable(rows))
}

// GetKPISummary returns the headline inventory figures
func GetKPISummary(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Running KPI summary")

	products, err := reportProducts(c)
	if err != nil {
		if model.IsValidation(err) {
			log.Warn("Invalid report filter", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Failed to fetch products for KPI summary", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to run KPI summary",
		})
	}

	summary := report.KPIs(products)
	prometheus.RecordReportRun("kpis")
	log.Info("KPI summary completed",
		zap.Int("total_products", summary.TotalProducts))
	return c.JSON(http.StatusOK, summary)
}
