// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// EnquiryEmailProps carries a contact-form submission into the template.
type EnquiryEmailProps struct {
	SenderName  string
	SenderEmail string
	Phone       string
	Subject     string
	Message     string
}

// Compiled templates for email components
var (
	headingTemplate = template.Must(template.New("emailHeading").Parse(
		`<h2 style="font-family: Helvetica, sans-serif; font-size: 20px; font-weight: bold; margin: 0; margin-bottom: 16px;">{{.}}</h2>`))

	paragraphTemplate = template.Must(template.New("emailParagraph").Parse(
		`<p style="font-family: Helvetica, sans-serif; font-size: 16px; font-weight: normal; margin: 0; margin-bottom: 16px;">{{.}}</p>`))

	detailRowTemplate = template.Must(template.New("emailDetailRow").Parse(
		`<p style="font-family: Helvetica, sans-serif; font-size: 16px; margin: 0; margin-bottom: 8px;"><strong>{{.Label}}:</strong> {{.Value}}</p>`))
)

type detailRow struct {
	Label string
	Value string
}

// GetEnquiryEmailContent renders the body of an enquiry notification email.
// All fields pass through html/template so submitted text is escaped.
func GetEnquiryEmailContent(props EnquiryEmailProps) string {
	var buf bytes.Buffer

	render(&buf, headingTemplate, "New enquiry: "+props.Subject)
	render(&buf, detailRowTemplate, detailRow{Label: "From", Value: props.SenderName})
	render(&buf, detailRowTemplate, detailRow{Label: "Email", Value: props.SenderEmail})
	if props.Phone != "" {
		render(&buf, detailRowTemplate, detailRow{Label: "Phone", Value: props.Phone})
	}
	render(&buf, paragraphTemplate, props.Message)

	return buf.String()
}

func render(buf *bytes.Buffer, tmpl *template.Template, data any) {
	if err := tmpl.Execute(buf, data); err != nil {
		log.Printf("Failed to execute email component template: %v", err)
	}
}
