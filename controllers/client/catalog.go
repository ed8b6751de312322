package client

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/utils"
)

// GetAllServices returns the client-visible catalog. Storage-level
// filters narrow the candidates; a post-filter then drops services of
// unverified vendors. The post-filter is the read-path verification
// gate, independent of the checks at booking time.
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Preload("Vendor").Where("status = ?", models.ServiceActive)

	if category := c.Query("category"); category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", v)
		}
	}
	if vendor := c.Query("vendor"); vendor != "" {
		query = query.Where("vendor_id = ?", vendor)
	}

	var services []models.Service
	if err := query.Order("created_at desc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}

	// Post-filter: hide services whose owning vendor is unverified.
	out := make([]fiber.Map, 0, len(services))
	for i := range services {
		if !services[i].Vendor.Verified {
			continue
		}
		out = append(out, serviceSummary(&services[i]))
	}

	return c.JSON(fiber.Map{"services": out})
}

// GetServiceDetails returns a single service with its vendor summary.
func GetServiceDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Vendor").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	return c.JSON(fiber.Map{"service": serviceSummary(&service)})
}

func serviceSummary(s *models.Service) fiber.Map {
	return fiber.Map{
		"service_id":  s.ID,
		"title":       s.Title,
		"description": s.Description,
		"price":       s.Price,
		"category":    s.Category,
		"location":    s.Location,
		"images":      s.Images,
		"status":      s.Status,
		"vendor": fiber.Map{
			"vendor_id": s.Vendor.ID,
			"full_name": s.Vendor.FullName,
			"email":     s.Vendor.Email,
			"phone":     s.Vendor.Phone,
		},
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}
