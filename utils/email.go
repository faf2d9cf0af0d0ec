package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

// emailHTTPClient is used for the hosted email API transport
var emailHTTPClient = &http.Client{Timeout: 15 * time.Second}

// SendEmail sends one email through the configured transport and reports
// whether it was accepted. One best-effort attempt, no queuing, no retry;
// callers decide whether a failure matters.
func SendEmail(to, subject, htmlBody string) bool {
	provider := os.Getenv("EMAIL_PROVIDER")
	if provider == "resend" {
		return sendWithResend(to, subject, htmlBody)
	}
	return sendWithSMTP(to, subject, htmlBody)
}

// sendWithSMTP delivers via the configured SMTP server
func sendWithSMTP(to, subject, htmlBody string) bool {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		LogError("SMTP send to %s failed: %v", to, err)
		return false
	}
	return true
}

// sendWithResend delivers via the Resend HTTP API
func sendWithResend(to, subject, htmlBody string) bool {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		LogError("Resend API key not configured")
		return false
	}

	baseURL := os.Getenv("RESEND_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}

	payload, err := json.Marshal(map[string]string{
		"from":    os.Getenv("EMAIL_FROM"),
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	})
	if err != nil {
		LogError("Failed to encode email payload: %v", err)
		return false
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		LogError("Failed to build email request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := emailHTTPClient.Do(req)
	if err != nil {
		LogError("Resend send to %s failed: %v", to, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		LogError("Resend send to %s returned status %d", to, resp.StatusCode)
		return false
	}
	return true
}

// GenerateInvoiceEmail builds the HTML invoice sent to a buyer after a
// successful payment.
func GenerateInvoiceEmail(buyerEmail, buyerName, productTitle string, price int, downloadURL string) string {
	greeting := buyerName
	if greeting == "" {
		greeting = buyerEmail
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Purchase Invoice</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #1a1a2e; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0;">Thank You for Your Purchase!</h1>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p>Hi %s,</p>
    <p>Your payment has been successfully processed. Here are your purchase details:</p>
    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h2 style="margin-top: 0;">Order Details</h2>
      <table style="width: 100%%; border-collapse: collapse;">
        <tr><td style="padding: 10px 0;"><strong>Product:</strong></td><td style="padding: 10px 0; text-align: right;">%s</td></tr>
        <tr><td style="padding: 10px 0;"><strong>Amount Paid:</strong></td><td style="padding: 10px 0; text-align: right;">%s</td></tr>
        <tr><td style="padding: 10px 0;"><strong>Email:</strong></td><td style="padding: 10px 0; text-align: right;">%s</td></tr>
      </table>
    </div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="display: inline-block; background: #1a1a2e; color: white; padding: 15px 40px; text-decoration: none; border-radius: 8px; font-weight: bold;">Download Your Product</a>
    </div>
    <p style="color: #666; font-size: 14px; margin-top: 30px;"><strong>Note:</strong> This download link is secure and will expire in 7 days.</p>
    <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
    <p style="color: #999; font-size: 12px; text-align: center;">If you have any questions, please reply to this email.</p>
  </div>
</body>
</html>`, greeting, productTitle, FormatRupiah(price), buyerEmail, downloadURL)
}

// SendAdminSaleAlert sends the sale notification to the configured admin
// address.
func SendAdminSaleAlert(productTitle, buyerEmail string, price int) bool {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		LogError("ADMIN_EMAIL not configured, skipping sale alert")
		return false
	}

	body := fmt.Sprintf(`<h2>New Product Sale</h2>
<p><strong>Product:</strong> %s</p>
<p><strong>Buyer:</strong> %s</p>
<p><strong>Amount:</strong> %s</p>
<p><strong>Time:</strong> %s</p>`,
		productTitle, buyerEmail, FormatRupiah(price), time.Now().Format("2006-01-02 15:04:05"))

	return SendEmail(adminEmail, fmt.Sprintf("New Sale: %s", productTitle), body)
}
