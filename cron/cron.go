package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"wedding-marketplace-api/db"
	"wedding-marketplace-api/logger"
	"wedding-marketplace-api/models"
	"wedding-marketplace-api/utils"
)

// StartCronJobs starts the scheduler for booking reminders.
func StartCronJobs() {
	c := cron.New()
	// Every morning at 08:00: remind clients about tomorrow's bookings
	_, err := c.AddFunc("0 8 * * *", sendBookingReminders)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to add cron job")
	}
	c.Start()
	logger.Log.Info().Msg("cron scheduler started for booking reminders")
}

// sendBookingReminders mails every client whose confirmed booking is
// tomorrow.
func sendBookingReminders() {
	tomorrowStart := utils.StartOfDay(time.Now()).AddDate(0, 0, 1)
	dayAfter := tomorrowStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Client").Preload("Vendor").Preload("Service").
		Where("status = ? AND booking_date >= ? AND booking_date < ?",
			models.StatusConfirmed, tomorrowStart, dayAfter).
		Find(&bookings).Error
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to fetch bookings for reminders")
		return
	}

	for i := range bookings {
		b := &bookings[i]
		if err := sendReminderEmail(b); err != nil {
			logger.Log.Error().Err(err).Uint("booking_id", b.ID).Msg("failed to send reminder")
			continue
		}
		logger.Log.Info().Uint("booking_id", b.ID).Str("to", b.Client.Email).Msg("sent booking reminder")
	}
}

func sendReminderEmail(b *models.Booking) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow", b.Service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking tomorrow.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Vendor:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>If you need to make changes, contact your vendor as soon as possible.</p>
	`, b.Client.FullName, b.Service.Title, b.Vendor.FullName, b.Vendor.Phone,
		b.BookingDate.Format("2006-01-02"), b.TotalAmount)

	return utils.SendEmail(b.Client.Email, subject, body)
}
