package client

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/logger"
	"wedding-marketplace-api/middleware"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/statemachine"
	"wedding-marketplace-api/utils"
)

type BookServiceInput struct {
	ServiceID   uint     `json:"service_id" validate:"required"`
	VendorID    uint     `json:"vendor_id" validate:"required"`
	BookingDate string   `json:"booking_date" validate:"required"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
}

// BookService creates a pending booking against an active service of a
// verified vendor.
func BookService(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	input := new(BookServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Service ID, vendor ID, and booking date are required",
			Error:   err.Error(),
		})
	}

	// Self-booking is structurally invalid no matter what the target
	// ID resolves to, so it is rejected before any lookup.
	if user.ID == input.VendorID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot book your own service",
		})
	}

	// Service must exist and still be active
	var service models.Service
	if db.DB.Where("id = ? AND status = ?", input.ServiceID, models.ServiceActive).
		First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found or inactive",
		})
	}

	// Vendor must exist with the vendor role
	var vendor models.User
	if db.DB.Where("id = ? AND role = ?", input.VendorID, models.RoleVendor).
		First(&vendor).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Vendor not found",
		})
	}

	if !vendor.Verified {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot book service from unverified vendor",
		})
	}

	bookingDate, err := utils.ParseDate(input.BookingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking date must be a valid date",
		})
	}

	// Day-granularity boundary: start of today is rejected, anything
	// after it is accepted. Not re-validated on later transitions.
	todayStart := utils.StartOfDay(time.Now())
	if !bookingDate.After(todayStart) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking date must be in the future",
		})
	}

	totalAmount := service.Price
	if input.TotalAmount != nil {
		totalAmount = *input.TotalAmount
	}

	booking := models.Booking{
		ClientID:    user.ID,
		VendorID:    input.VendorID,
		ServiceID:   input.ServiceID,
		BookingDate: bookingDate,
		TotalAmount: totalAmount,
		Status:      models.StatusPending,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to create booking")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	// Return the booking joined with vendor and service summaries
	if err := db.DB.Preload("Vendor").Preload("Service").First(&booking, booking.ID).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to reload booking")
	}

	notifyVendorOfBooking(&vendor, user, &booking, &service)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service booked successfully",
		"booking": bookingSummary(&booking),
	})
}

// GetClientBookings lists all bookings owned by the logged-in client.
func GetClientBookings(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Vendor").Preload("Service").
		Where("client_id = ?", user.ID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	out := make([]fiber.Map, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingSummary(&bookings[i]))
	}
	return c.JSON(fiber.Map{"bookings": out})
}

// CancelBooking cancels a pending booking owned by the logged-in
// client. Bookings of other clients look like they do not exist.
func CancelBooking(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	bookingID, err := c.ParamsInt("bookingId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var booking models.Booking
	if db.DB.Where("id = ? AND client_id = ?", bookingID, user.ID).
		First(&booking).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := statemachine.CanTransition(booking.Status, models.StatusCancelled, statemachine.ActorClient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only pending bookings can be cancelled",
		})
	}

	booking.Status = models.StatusCancelled
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to cancel booking",
		})
	}

	return c.JSON(fiber.Map{
		"message":    "Booking cancelled successfully",
		"booking_id": booking.ID,
		"status":     booking.Status,
		"updated_at": booking.UpdatedAt,
	})
}

func bookingSummary(b *models.Booking) fiber.Map {
	return fiber.Map{
		"booking_id": b.ID,
		"reference":  b.Reference,
		"service": fiber.Map{
			"service_id":  b.Service.ID,
			"title":       b.Service.Title,
			"description": b.Service.Description,
			"price":       b.Service.Price,
			"category":    b.Service.Category,
			"images":      b.Service.Images,
		},
		"vendor": fiber.Map{
			"vendor_id": b.Vendor.ID,
			"full_name": b.Vendor.FullName,
			"email":     b.Vendor.Email,
			"phone":     b.Vendor.Phone,
		},
		"booking_date": b.BookingDate,
		"status":       b.Status,
		"total_amount": b.TotalAmount,
		"created_at":   b.CreatedAt,
		"updated_at":   b.UpdatedAt,
	}
}

func notifyVendorOfBooking(vendor *models.User, client *models.User, booking *models.Booking, service *models.Service) {
	subject := fmt.Sprintf("New booking request: %s", service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking request.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Client:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>Log in to confirm or cancel the request.</p>
	`, vendor.FullName, service.Title, client.FullName, client.Email,
		booking.BookingDate.Format("2006-01-02"), booking.TotalAmount)

	utils.SendEmailAsync(vendor.Email, subject, body)
}
