package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/thiagovelsa/jurisdesk/internal/service"
)

// ─────────────────────────────────────────────────────────────
// NotifyService tests
// ─────────────────────────────────────────────────────────────

func TestNotifyService_SendNotifiesAndEmits(t *testing.T) {
	notifier := &service.MockNotifier{}
	emitter := &service.MockEmitter{}
	svc := service.NewNotifyService(notifier, emitter)

	if err := svc.Send(context.Background(), "Deadline", "Answer due tomorrow"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if len(notifier.Sent) != 1 || notifier.Sent[0].Title != "Deadline" {
		t.Fatalf("unexpected notifications: %+v", notifier.Sent)
	}
	if len(emitter.Events) != 1 || emitter.Events[0].Event != "notification:sent" {
		t.Fatalf("unexpected events: %+v", emitter.Events)
	}
	payload, ok := emitter.Events[0].Data.(service.Notification)
	if !ok || payload.Body != "Answer due tomorrow" {
		t.Errorf("unexpected payload: %#v", emitter.Events[0].Data)
	}
}

func TestNotifyService_SendFailureDoesNotEmit(t *testing.T) {
	notifier := &service.MockNotifier{Err: errors.New("notification daemon unreachable")}
	emitter := &service.MockEmitter{}
	svc := service.NewNotifyService(notifier, emitter)

	if err := svc.Send(context.Background(), "Deadline", "body"); err == nil {
		t.Fatal("expected Send to fail")
	}
	if len(emitter.Events) != 0 {
		t.Errorf("failure still emitted events: %+v", emitter.Events)
	}
}
