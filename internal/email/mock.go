package email

import (
	"context"
	"sync"
)

// MockSender records sent emails for tests.
type MockSender struct {
	mu    sync.Mutex
	Sent  []*Email
	Err   error // when set, Send fails with this error
	SendF func(ctx context.Context, email *Email) (string, error)
}

var _ Sender = (*MockSender)(nil)

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	if m.SendF != nil {
		return m.SendF(ctx, email)
	}
	if m.Err != nil {
		return "", m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, email)
	return "mock-message-id", nil
}

// Count returns the number of emails sent.
func (m *MockSender) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
