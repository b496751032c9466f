package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/ingest"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

// ImportTable loads one table from an uploaded CSV file. Populated
// tables are skipped unless force=true is passed.
func ImportTable(c echo.Context) error {
	log := logger.FromContext(c)
	table := c.Param("table")
	log.Info("Importing CSV data", zap.String("table", table))

	force := false
	if forceParam := c.QueryParam("force"); forceParam != "" {
		if v, err := strconv.ParseBool(forceParam); err == nil {
			force = v
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("Missing file upload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "multipart field 'file' is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	result, err := runImport(table, file, force)
	if err != nil {
		log.Error("Import failed",
			zap.String("table", table),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Import failed: " + err.Error(),
		})
	}
	if result == nil {
		log.Warn("Unknown import table", zap.String("table", table))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "unknown table " + table,
		})
	}

	prometheus.RecordImportedRows(table, result.Loaded)
	log.Info("Import completed",
		zap.String("table", table),
		zap.Int("loaded", result.Loaded),
		zap.Bool("skipped", result.Skipped),
		zap.Int("rejected", len(result.Errors)))
	return c.JSON(http.StatusOK, result)
}

func runImport(table string, r io.Reader, force bool) (*ingest.Result, error) {
	db := database.GetDB()
	switch table {
	case "categories":
		return ingest.LoadCategories(db, r, force)
	case "suppliers":
		return ingest.LoadSuppliers(db, r, force)
	case "locations":
		return ingest.LoadLocations(db, r, force)
	case "products":
		return ingest.LoadProducts(db, r, force)
	default:
		return nil, nil
	}
}
