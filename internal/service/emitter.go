package service

import "context"

// ─────────────────────────────────────────────────────────────
// EventEmitter
// ─────────────────────────────────────────────────────────────

// EventEmitter pushes events to the frontend. The App struct implements
// this by delegating to wailsRuntime.EventsEmit. Services receive the
// interface instead of a wailsRuntime context, which keeps them testable
// with a mock emitter and lets headless modes run without a webview.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}
