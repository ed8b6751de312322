package admin

import (
	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/middleware"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/utils"
)

// GetAdminProfile returns the logged-in admin's details.
func GetAdminProfile(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"admin": fiber.Map{
			"admin_id":   user.ID,
			"full_name":  user.FullName,
			"email":      user.Email,
			"phone":      user.Phone,
			"role":       user.Role,
			"created_at": user.CreatedAt,
			"updated_at": user.UpdatedAt,
		},
	})
}

// GetVendorRequests lists vendors still waiting for verification.
func GetVendorRequests(c *fiber.Ctx) error {
	var vendors []models.User
	if err := db.DB.
		Where("role = ? AND verified = ?", models.RoleVendor, false).
		Order("created_at desc").
		Find(&vendors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch vendor requests",
			Error:   err.Error(),
		})
	}

	out := make([]fiber.Map, 0, len(vendors))
	for i := range vendors {
		v := &vendors[i]
		out = append(out, fiber.Map{
			"vendor_id":  v.ID,
			"full_name":  v.FullName,
			"email":      v.Email,
			"phone":      v.Phone,
			"role":       v.Role,
			"verified":   v.Verified,
			"created_at": v.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"vendor_requests": out})
}

// AcceptVendorRequest flips a vendor's verified flag to true. The flip
// is one-way: there is no endpoint that reverts it, and an already
// verified vendor is reported as not found.
func AcceptVendorRequest(c *fiber.Ctx) error {
	vendorID := c.Params("vendorId")

	var vendor models.User
	if db.DB.Where("id = ? AND role = ? AND verified = ?", vendorID, models.RoleVendor, false).
		First(&vendor).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor request not found or already verified",
		})
	}

	vendor.Verified = true
	if err := db.DB.Save(&vendor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to accept vendor request",
		})
	}

	notifyVendorAccepted(&vendor)

	return c.JSON(fiber.Map{
		"message": "Vendor request accepted successfully",
		"vendor": fiber.Map{
			"vendor_id":  vendor.ID,
			"full_name":  vendor.FullName,
			"email":      vendor.Email,
			"phone":      vendor.Phone,
			"role":       vendor.Role,
			"verified":   vendor.Verified,
			"updated_at": vendor.UpdatedAt,
		},
	})
}

// GetAllUsers lists users with optional role and verified filters and
// page/limit pagination.
func GetAllUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	query := db.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if verified := c.Query("verified"); verified != "" {
		query = query.Where("verified = ?", verified == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count users",
		})
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"current_page":   page,
			"total_pages":    (total + int64(limit) - 1) / int64(limit),
			"total_users":    total,
			"users_per_page": limit,
		},
	})
}

// GetAllBookings gives admins read-only oversight over every booking,
// with a status filter, pagination, completed revenue total and
// per-status counts.
func GetAllBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	query := db.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count bookings",
		})
	}

	var bookings []models.Booking
	if err := query.Preload("Client").Preload("Vendor").Preload("Service").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	var revenue float64
	if err := db.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute revenue",
		})
	}

	type statusCount struct {
		Status models.BookingStatus
		Count  int64
	}
	var counts []statusCount
	if err := db.DB.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute status counts",
		})
	}
	statusCounts := fiber.Map{}
	var grandTotal int64
	for _, sc := range counts {
		statusCounts[string(sc.Status)] = sc.Count
		grandTotal += sc.Count
	}
	statusCounts["total"] = grandTotal

	out := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, fiber.Map{
			"booking_id": b.ID,
			"reference":  b.Reference,
			"client": fiber.Map{
				"client_id": b.Client.ID,
				"full_name": b.Client.FullName,
				"email":     b.Client.Email,
				"phone":     b.Client.Phone,
			},
			"vendor": fiber.Map{
				"vendor_id": b.Vendor.ID,
				"full_name": b.Vendor.FullName,
				"email":     b.Vendor.Email,
				"phone":     b.Vendor.Phone,
			},
			"service": fiber.Map{
				"service_id":  b.Service.ID,
				"title":       b.Service.Title,
				"description": b.Service.Description,
				"price":       b.Service.Price,
				"category":    b.Service.Category,
			},
			"booking_date": b.BookingDate,
			"status":       b.Status,
			"total_amount": b.TotalAmount,
			"created_at":   b.CreatedAt,
			"updated_at":   b.UpdatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"bookings": out,
		"pagination": fiber.Map{
			"current_page":      page,
			"total_pages":       (total + int64(limit) - 1) / int64(limit),
			"total_bookings":    total,
			"bookings_per_page": limit,
		},
		"total_revenue": revenue,
		"status_count":  statusCounts,
	})
}

func notifyVendorAccepted(vendor *models.User) {
	subject := "Your vendor account has been verified"
	body := "<p>Dear " + vendor.FullName + ",</p>" +
		"<p>Your vendor account has been verified. You can now publish services and manage bookings.</p>"
	utils.SendEmailAsync(vendor.Email, subject, body)
}
