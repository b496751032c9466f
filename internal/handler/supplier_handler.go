package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
)

// SupplierRequest defines the structure for supplier creation/update requests
type SupplierRequest struct {
	Name             string  `json:"name"`
	ContactPerson    string  `json:"contact_person"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	City             string  `json:"city"`
	DeliveryLeadDays int     `json:"delivery_lead_days"`
	Rating           float64 `json:"rating"`
	IsActive         *bool   `json:"is_active"`
}

// ListSuppliers retrieves all suppliers
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing suppliers")

	var suppliers []model.Supplier
	result := database.GetDB().Order("id").Find(&suppliers)
	if result.Error != nil {
		log.Error("Failed to retrieve suppliers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve suppliers",
		})
	}

	log.Info("Suppliers retrieved successfully", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// GetSupplier retrieves a specific supplier by ID
func GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var supplier model.Supplier
	result := database.GetDB().First(&supplier, id)
	if result.Error != nil {
		log.Error("Supplier not found",
			zap.String("supplier_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Supplier not found",
		})
	}

	return c.JSON(http.StatusOK, supplier)
}

// CreateSupplier creates a new supplier
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new supplier")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "name is required",
		})
	}
	if req.Rating < 0 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "rating must be between 0 and 5",
		})
	}

	supplier := model.Supplier{
		Name:             req.Name,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
		Email:            req.Email,
		City:             req.City,
		DeliveryLeadDays: req.DeliveryLeadDays,
		Rating:           req.Rating,
		IsActive:         true,
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	result := database.GetDB().Create(&supplier)
	if result.Error != nil {
		log.Error("Failed to create supplier",
			zap.String("name", req.Name),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create supplier",
		})
	}

	log.Info("Supplier created successfully",
		zap.Uint("supplier_id", supplier.ID),
		zap.String("name", supplier.Name))
	return c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplier updates an existing supplier
func UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating supplier", zap.String("supplier_id", id))

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("supplier_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Rating < 0 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "rating must be between 0 and 5",
		})
	}

	var supplier model.Supplier
	result := database.GetDB().First(&supplier, id)
	if result.Error != nil {
		log.Error("Supplier not found for update",
			zap.String("supplier_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Supplier not found",
		})
	}

	supplier.Name = req.Name
	supplier.ContactPerson = req.ContactPerson
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.City = req.City
	supplier.DeliveryLeadDays = req.DeliveryLeadDays
	supplier.Rating = req.Rating
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	result = database.GetDB().Save(&supplier)
	if result.Error != nil {
		log.Error("Failed to update supplier",
			zap.String("supplier_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update supplier",
		})
	}

	log.Info("Supplier updated successfully",
		zap.String("supplier_id", id),
		zap.String("name", supplier.Name))
	return c.JSON(http.StatusOK, supplier)
}

// DeleteSupplier deactivates a supplier. Suppliers with active
// products cannot be removed.
func DeleteSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deactivating supplier", zap.String("supplier_id", id))

	var productCount int64
	database.GetDB().Model(&model.Product{}).
		Where("supplier_id = ? AND is_active = ?", id, true).
		Count(&productCount)
	if productCount > 0 {
		log.Warn("Supplier still has active products",
			zap.String("supplier_id", id),
			zap.Int64("products", productCount))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Supplier still has active products",
		})
	}

	result := database.GetDB().Model(&model.Supplier{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		log.Error("Failed to deactivate supplier",
			zap.String("supplier_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to deactivate supplier",
		})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Supplier not found",
		})
	}

	log.Info("Supplier deactivated successfully", zap.String("supplier_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Supplier deactivated successfully",
	})
}
