package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// WatiMessage is the payload shape of the Wati session-message API.
type WatiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendLeadWhatsApp pushes a follow-up message to a lead over WhatsApp via
// the Wati API.
func SendLeadWhatsApp(phoneNumber, message string) error {
	payload := WatiMessage{
		Phone:   phoneNumber,
		Message: message,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WhatsApp message: %w", err)
	}

	req, err := http.NewRequest("POST", os.Getenv("WATI_URL")+"/api/v1/sendSessionMessage", bytes.NewBuffer(payloadJSON))
	if err != nil {
		return fmt.Errorf("failed to create Wati API request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("WATI_API_KEY"))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wati API returned status %d", resp.StatusCode)
	}

	return nil
}
