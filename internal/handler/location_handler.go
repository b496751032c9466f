package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
)

// LocationRequest defines the structure for location creation/update requests
type LocationRequest struct {
	Section     string `json:"section"`
	Aisle       string `json:"aisle"`
	Shelf       string `json:"shelf"`
	Level       int    `json:"level"`
	MaxCapacity int    `json:"max_capacity"`
	Description string `json:"description"`
}

// ListLocations retrieves all storage locations
func ListLocations(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Listing locations")

	var locations []model.Location
	result := database.GetDB().Order("id").Find(&locations)
	if result.Error != nil {
		log.Error("Failed to retrieve locations", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve locations",
		})
	}

	return c.JSON(http.StatusOK, locations)
}

// GetLocation retrieves a specific location by ID
func GetLocation(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var location model.Location
	result := database.GetDB().First(&location, id)
	if result.Error != nil {
		log.Error("Location not found",
			zap.String("location_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Location not found",
		})
	}

	return c.JSON(http.StatusOK, location)
}

// CreateLocation creates a new storage location
func CreateLocation(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Creating new location")

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.Section == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "section is required",
		})
	}

	location := model.Location{
		Section:     req.Section,
		Aisle:       req.Aisle,
		Shelf:       req.Shelf,
		Level:       req.Level,
		MaxCapacity: req.MaxCapacity,
		Description: req.Description,
	}

	result := database.GetDB().Create(&location)
	if result.Error != nil {
		log.Error("Failed to create location",
			zap.String("code", location.Code()),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create location",
		})
	}

	log.Info("Location created successfully",
		zap.Uint("location_id", location.ID),
		zap.String("code", location.Code()))
	return c.JSON(http.StatusCreated, location)
}

// UpdateLocation updates an existing location
func UpdateLocation(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Updating location", zap.String("location_id", id))

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data",
			zap.String("location_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var location model.Location
	result := database.GetDB().First(&location, id)
	if result.Error != nil {
		log.Error("Location not found for update",
			zap.String("location_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Location not found",
		})
	}

	location.Section = req.Section
	location.Aisle = req.Aisle
	location.Shelf = req.Shelf
	location.Level = req.Level
	location.MaxCapacity = req.MaxCapacity
	location.Description = req.Description

	result = database.GetDB().Save(&location)
	if result.Error != nil {
		log.Error("Failed to update location",
			zap.String("location_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update location",
		})
	}

	log.Info("Location updated successfully",
		zap.String("location_id", id),
		zap.String("code", location.Code()))
	return c.JSON(http.StatusOK, location)
}

// DeleteLocation removes a location. Products pointing at it keep
// working because the reference is optional; they are detached first.
func DeleteLocation(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")
	log.Info("Deleting location", zap.String("location_id", id))

	db := database.GetDB()
	if err := db.Model(&model.Product{}).
		Where("location_id = ?", id).
		Update("location_id", nil).Error; err != nil {
		log.Error("Failed to detach products from location",
			zap.String("location_id", id),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete location",
		})
	}

	result := db.Delete(&model.Location{}, id)
	if result.Error != nil {
		log.Error("Failed to delete location",
			zap.String("location_id", id),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete location",
		})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Location not found",
		})
	}

	log.Info("Location deleted successfully", zap.String("location_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Location deleted successfully",
	})
}
