package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"wedding-marketplace-api/logger"
)

// SendEmail delivers an HTML mail through the configured SMTP account.
func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendEmailAsync fires the mail on its own goroutine; delivery failures
// are logged and never block the request.
func SendEmailAsync(to, subject, body string) {
	go func() {
		if err := SendEmail(to, subject, body); err != nil {
			logger.Log.Error().Err(err).Str("to", to).Msg("failed to send email")
		}
	}()
}
