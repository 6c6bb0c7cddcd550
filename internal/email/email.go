package email

import "context"

// Email represents an email message to be sent.
type Email struct {
	To       []string // Recipient email addresses
	From     string   // Sender email address
	Subject  string   // Email subject
	TextBody string   // Plain text body
	HTMLBody string   // HTML body (optional)
}

// Sender defines the interface for sending emails.
// Implementations can use SMTP, Postmark, SES, etc.
type Sender interface {
	// Send sends an email message.
	// Returns the message ID from the email provider (if available).
	Send(ctx context.Context, email *Email) (string, error)
}
