// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"github.com/royalacademy/academy-go/internal/infrastructure/email/templates"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/pkg/config"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendEnquiryEmail(senderName, senderEmail, phone, subject, message string) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	toEmail   string
	fromEmail string
	fromName  string
	logger    *logging.ChanneledLogger
}

// NewService creates a new email service client, returning the Service interface.
func NewService(logger *logging.ChanneledLogger) (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}
	if config.ContactEmailTo == "" {
		return nil, fmt.Errorf("CONTACT_EMAIL_TO environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		toEmail:   config.ContactEmailTo,
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
		logger:    logger,
	}, nil
}

// SendEnquiryEmail composes and sends a contact-form enquiry to the school office.
func (c *ResendClient) SendEnquiryEmail(senderName, senderEmail, phone, subject, message string) error {
	content := templates.GetEnquiryEmailContent(templates.EnquiryEmailProps{
		SenderName:  senderName,
		SenderEmail: senderEmail,
		Phone:       phone,
		Subject:     subject,
		Message:     message,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "New enquiry from " + senderName,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: senderEmail,
		Subject: "Enquiry: " + subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Email().Error("Failed to send enquiry email", "error", err.Error(), "sender", senderEmail)
		return fmt.Errorf("failed to send enquiry email via Resend: %w", err)
	}

	c.logger.Email().Info("Enquiry email sent", "sender", senderEmail, "subject", subject)
	return nil
}
