package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"
)

// SendWelcomeEmail greets a freshly converted customer with their account
// code. Delivery failures are logged, never surfaced: the conversion already
// committed.
func SendWelcomeEmail(email, name, customerCode string) {
	if email == "" || os.Getenv("SMTP_HOST") == "" {
		return
	}

	body := fmt.Sprintf("Dear %s,\n\nWelcome aboard. Your customer code is %s. Please quote it on all shipping marks and correspondence.\n\nLogistix Team", name, customerCode)

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Logistix")
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
		return
	}

	log.Printf("Welcome email sent to %s", email)
}
