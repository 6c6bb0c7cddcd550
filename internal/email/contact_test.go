package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AsyadNazeem/mubarak-product-backend/internal/domain"
)

func testContact() *domain.Contact {
	phone := "+960 777 1234"
	return &domain.Contact{
		ID:         1,
		FullName:   "Aishath Ali",
		Email:      "aishath@example.com",
		Phone:      &phone,
		Subject:    "Order inquiry",
		Message:    "Is the ceramic mug\nstill in stock?",
		Newsletter: true,
		CreatedAt:  time.Date(2026, time.March, 14, 15, 4, 0, 0, time.UTC),
	}
}

func TestContactNotifier_Notify(t *testing.T) {
	sender := &MockSender{}
	n := NewContactNotifier(sender, "noreply@example.com", "admin@example.com")

	if err := n.Notify(context.Background(), testContact()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if sender.Count() != 1 {
		t.Fatalf("sent %d emails, want 1", sender.Count())
	}

	msg := sender.Sent[0]
	if msg.Subject != "New Contact Form Submission: Order inquiry" {
		t.Errorf("subject = %q", msg.Subject)
	}
	if msg.From != "noreply@example.com" {
		t.Errorf("from = %q", msg.From)
	}
	if len(msg.To) != 1 || msg.To[0] != "admin@example.com" {
		t.Errorf("to = %v", msg.To)
	}

	for _, want := range []string{
		"Aishath Ali",
		"aishath@example.com",
		"+960 777 1234",
		"Order inquiry",
		"still in stock?",
		"subscribed to the newsletter",
		"March 14, 2026",
	} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}

	if !strings.Contains(msg.HTMLBody, "still in stock?<br>") &&
		!strings.Contains(msg.HTMLBody, "stock?</p>") {
		t.Errorf("html body should carry the message: %s", msg.HTMLBody)
	}
}

func TestContactNotifier_OmitsOptionalFields(t *testing.T) {
	sender := &MockSender{}
	n := NewContactNotifier(sender, "noreply@example.com", "admin@example.com")

	c := testContact()
	c.Phone = nil
	c.Newsletter = false

	if err := n.Notify(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	msg := sender.Sent[0]
	if strings.Contains(msg.TextBody, "Phone:") {
		t.Error("text body should not mention phone when absent")
	}
	if strings.Contains(msg.TextBody, "newsletter") {
		t.Error("text body should not mention newsletter when not subscribed")
	}
}

func TestContactNotifier_EscapesHTML(t *testing.T) {
	sender := &MockSender{}
	n := NewContactNotifier(sender, "noreply@example.com", "admin@example.com")

	c := testContact()
	c.FullName = `<script>alert("x")</script>`

	if err := n.Notify(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	body := sender.Sent[0].HTMLBody
	if strings.Contains(body, "<script>") {
		t.Errorf("html body contains unescaped markup: %s", body)
	}
}

func TestContactNotifier_PropagatesSendError(t *testing.T) {
	sender := &MockSender{Err: errors.New("smtp unreachable")}
	n := NewContactNotifier(sender, "noreply@example.com", "admin@example.com")

	if err := n.Notify(context.Background(), testContact()); err == nil {
		t.Fatal("expected error from failing sender")
	}
}
