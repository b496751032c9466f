package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
)

// ProductRequest defines the structure for product creation/update requests
type ProductRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Brand             string  `json:"brand"`
	Unit              string  `json:"unit"`
	CategoryID        uint    `json:"category_id"`
	SupplierID        uint    `json:"supplier_id"`
	LocationID        *uint   `json:"location_id"`
	StockCurrent      int     `json:"stock_current"`
	StockMinimum      int     `json:"stock_minimum"`
	ReorderPoint      int     `json:"reorder_point"`
	StockMaximum      int     `json:"stock_maximum"`
	UnitCost          float64 `json:"unit_cost"`
	SalePrice         float64 `json:"sale_price"`
	SalesCurrentMonth int     `json:"sales_current_month"`
	SalesPriorMonth   int     `json:"sales_prior_month"`
	SalesQuarter      int     `json:"sales_quarter"`
	SalesYear         int     `json:"sales_year"`
	ExpiresAt         *string `json:"expires_at"`
	IsActive          *bool   `json:"is_active"`
}

// ListProducts handles retrieving all products with optional filtering
func ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing products with filters")

	db := database.GetDB()
	query := db.Preload("Category").Preload("Supplier").Preload("Location")

	isActive := c.QueryParam("is_active")
	if isActive != "" {
		active, err := strconv.ParseBool(isActive)
		if err == nil {
			query = query.Where("is_active = ?", active)
		} else {
			log.Warn("Invalid is_active parameter", zap.String("value", isActive), zap.Error(err))
		}
	} else {
		query = query.Where("is_active = ?", true)
	}

	if categoryID := c.QueryParam("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if supplierID := c.QueryParam("supplier_id"); supplierID != "" {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var products []model.Product
	result := query.Order("id").Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Getting product by ID", zap.String("product_id", id))

	var product model.Product
	result := database.GetDB().
		Preload("Category").Preload("Supplier").Preload("Location").
		First(&product, id)
	if result.Error != nil {
		log.Error("Product not found",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new product")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	product := productFromRequest(&req)
	if err := product.Validate(); err != nil {
		log.Warn("Product validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	db := database.GetDB()
	if err := checkProductReferences(db, product); err != nil {
		log.Warn("Product references unknown rows", zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": err.Error(),
		})
	}

	result := db.Create(product)
	if result.Error != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating product", zap.String("product_id", id))

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	db := database.GetDB()
	var product model.Product
	result := db.First(&product, id)
	if result.Error != nil {
		log.Error("Product not found for update",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	updated := productFromRequest(&req)
	updated.ID = product.ID
	updated.CreatedAt = product.CreatedAt
	if err := updated.Validate(); err != nil {
		log.Warn("Product validation failed",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
	if err := checkProductReferences(db, updated); err != nil {
		log.Warn("Product references unknown rows",
			zap.String("product_id", id),
			zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": err.Error(),
		})
	}

	result = db.Save(updated)
	if result.Error != nil {
		log.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}

	log.Info("Product updated successfully",
		zap.String("product_id", id),
		zap.String("name", updated.Name))
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct deactivates a product. Rows are never removed because
// movements and alerts keep referencing them.
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deactivating product", zap.String("product_id", id))

	result := database.GetDB().Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		log.Error("Failed to deactivate product",
			zap.String("product_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to deactivate product",
		})
	}
	if result.RowsAffected == 0 {
		log.Warn("Product not found for deactivation",
			zap.String("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	}

	log.Info("Product deactivated successfully", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deactivated successfully",
	})
}

func productFromRequest(req *ProductRequest) *model.Product {
	product := &model.Product{
		Name:              req.Name,
		Description:       req.Description,
		Brand:             req.Brand,
		Unit:              req.Unit,
		CategoryID:        req.CategoryID,
		SupplierID:        req.SupplierID,
		LocationID:        req.LocationID,
		StockCurrent:      req.StockCurrent,
		StockMinimum:      req.StockMinimum,
		ReorderPoint:      req.ReorderPoint,
		StockMaximum:      req.StockMaximum,
		UnitCost:          req.UnitCost,
		SalePrice:         req.SalePrice,
		SalesCurrentMonth: req.SalesCurrentMonth,
		SalesPriorMonth:   req.SalesPriorMonth,
		SalesQuarter:      req.SalesQuarter,
		SalesYear:         req.SalesYear,
		IsActive:          true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		if t, err := time.Parse("2006-01-02", *req.ExpiresAt); err == nil {
			product.ExpiresAt = &t
		}
	}
	return product
}

func checkProductReferences(db *gorm.DB, p *model.Product) error {
	if err := rowExists(db, &model.Category{}, p.CategoryID, "category"); err != nil {
		return err
	}
	if err := rowExists(db, &model.Supplier{}, p.SupplierID, "supplier"); err != nil {
		return err
	}
	if p.LocationID != nil {
		if err := rowExists(db, &model.Location{}, *p.LocationID, "location"); err != nil {
			return err
		}
	}
	return nil
}

func rowExists(db *gorm.DB, entity interface{}, id uint, name string) error {
	var count int64
	if err := db.Model(entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &model.ConstraintError{Entity: name, ID: id}
	}
	return nil
}
