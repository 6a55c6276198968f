package service

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// ─────────────────────────────────────────────────────────────
// Notification Service
// ─────────────────────────────────────────────────────────────
//
// Sends native desktop notifications (notification center on macOS,
// D-Bus on Linux, toast on Windows) and mirrors each one to the
// frontend as a "notification:sent" event so the UI can show an
// in-app fallback when the OS suppresses banners.

// Notification is a single desktop notification.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier delivers a notification to the operating system.
// beeep is the default; tests inject a MockNotifier.
type Notifier interface {
	Notify(title, body string) error
}

// BeeepNotifier delivers notifications through the platform facility.
type BeeepNotifier struct {
	Icon string // path to the app icon, may be empty
}

func (n BeeepNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, n.Icon)
}

// MockNotifier records notifications for test assertions.
type MockNotifier struct {
	Sent []Notification
	Err  error // returned from Notify when set
}

func (m *MockNotifier) Notify(title, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Notification{Title: title, Body: body})
	return nil
}

// NotifyService sends desktop notifications for the frontend.
type NotifyService struct {
	notifier Notifier
	emitter  EventEmitter
}

// NewNotifyService creates a NotifyService.
func NewNotifyService(notifier Notifier, emitter EventEmitter) *NotifyService {
	return &NotifyService{notifier: notifier, emitter: emitter}
}

// Send shows a desktop notification and emits "notification:sent".
func (s *NotifyService) Send(ctx context.Context, title, body string) error {
	if err := s.notifier.Notify(title, body); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	s.emitter.Emit(ctx, "notification:sent", Notification{Title: title, Body: body})
	return nil
}
