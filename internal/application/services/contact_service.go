package services

import (
	"fmt"
	"strings"

	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/infrastructure/email"
)

// Enquiry is one contact-form submission. It is forwarded by email and never
// persisted.
type Enquiry struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactService forwards enquiries to the school office.
type ContactService struct {
	email email.Service
}

// NewContactService creates the contact service. emailService may be nil
// when no email provider is configured; Send then fails cleanly.
func NewContactService(emailService email.Service) *ContactService {
	return &ContactService{email: emailService}
}

// Send validates and forwards one enquiry.
func (s *ContactService) Send(enquiry Enquiry) error {
	if !strings.Contains(enquiry.Email, "@") {
		return &collection.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if strings.TrimSpace(enquiry.Message) == "" {
		return &collection.ValidationError{Field: "message", Reason: "is required"}
	}

	if s.email == nil {
		return fmt.Errorf("contact email is not configured")
	}
	return s.email.SendEnquiryEmail(enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.Subject, enquiry.Message)
}
