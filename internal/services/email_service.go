package services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

// HTML template for the internal enquiry notification e-mail.
const enquiryNotificationHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Website Enquiry</h2>
    <ul>
      <li><strong>Reference:</strong> %s</li>
      <li><strong>Name:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>Subject:</strong> %s</li>
      <li><strong>Message:</strong> %s</li>
    </ul>
  </div>
</body>
</html>`

// EmailService sends internal notifications through SendGrid.
type EmailService struct {
	client      *sendgrid.Client
	fromEmail   string
	notifyEmail string
}

func NewEmailService(apiKey, fromEmail, notifyEmail string) *EmailService {
	return &EmailService{
		client:      sendgrid.NewSendClient(apiKey),
		fromEmail:   fromEmail,
		notifyEmail: notifyEmail,
	}
}

func (s *EmailService) NotifyNewEnquiry(ctx context.Context, order *models.Order) error {
	from := mail.NewEmail("GlobeTech Website", s.fromEmail)
	to := mail.NewEmail("GlobeTech Sales", s.notifyEmail)
	subject := fmt.Sprintf("New enquiry %s from %s", order.EnquiryNumber, order.Name)

	plain := fmt.Sprintf(
		"Reference: %s\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\nMessage: %s\n",
		order.EnquiryNumber, order.Name, order.Email, order.Phone, order.Subject, order.Message,
	)
	html := fmt.Sprintf(
		enquiryNotificationHTML,
		order.EnquiryNumber, order.Name, order.Email, order.Phone, order.Subject, order.Message,
	)

	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
