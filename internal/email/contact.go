package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

// ContactNotifier sends the internal notification email for new contact
// form submissions.
type ContactNotifier struct {
	sender Sender
	from   string
	to     string
}

// NewContactNotifier creates a notifier that delivers submissions to the
// configured admin address.
func NewContactNotifier(sender Sender, from, to string) *ContactNotifier {
	return &ContactNotifier{
		sender: sender,
		from:   from,
		to:     to,
	}
}

// Notify sends a notification email describing the submission. The caller
// decides whether a failure here is fatal; storing the submission is not
// coupled to delivery.
func (n *ContactNotifier) Notify(ctx context.Context, contact *domain.Contact) error {
	msg := &Email{
		To:       []string{n.to},
		From:     n.from,
		Subject:  "New Contact Form Submission: " + contact.Subject,
		TextBody: contactTextBody(contact),
		HTMLBody: contactHTMLBody(contact),
	}

	_, err := n.sender.Send(ctx, msg)
	return err
}

func contactTextBody(c *domain.Contact) string {
	var b strings.Builder

	b.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", c.FullName)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	if c.Phone != nil && *c.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", *c.Phone)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", c.Subject)
	fmt.Fprintf(&b, "Message:\n%s\n", c.Message)
	if c.Newsletter {
		b.WriteString("\nThe sender subscribed to the newsletter.\n")
	}
	fmt.Fprintf(&b, "\nSubmitted on %s\n", c.CreatedAt.Format("January 2, 2006 at 3:04 pm"))

	return b.String()
}

func contactHTMLBody(c *domain.Contact) string {
	var b strings.Builder

	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(c.FullName))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(c.Email))
	if c.Phone != nil && *c.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(*c.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", html.EscapeString(c.Subject))
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>",
		strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>"))
	if c.Newsletter {
		b.WriteString("<p><em>The sender subscribed to the newsletter.</em></p>")
	}
	fmt.Fprintf(&b, "<p style=\"color:#666;font-size:12px\">Submitted on %s</p>",
		c.CreatedAt.Format("January 2, 2006 at 3:04 pm"))

	return b.String()
}
