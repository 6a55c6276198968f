package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/thiagovelsa/jurisdesk/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Reminder Service
// ─────────────────────────────────────────────────────────────
//
// Schedules matter deadlines and tasks. One-shot reminders fire once
// when DueAt passes; recurring reminders carry a cron expression and
// fire on that schedule. Firing means a desktop notification plus a
// "reminder:fired" event for the UI.

// CreateReminderInput is the service-layer DTO for creating/updating
// reminders.
type CreateReminderInput struct {
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	DueAt   time.Time `json:"dueAt"`
	Repeat  string    `json:"repeat"`
	Enabled bool      `json:"enabled"`
}

// ReminderService manages reminders and their firing schedule.
type ReminderService struct {
	store   domain.ReminderStore
	notify  *NotifyService
	emitter EventEmitter

	// scheduler lifecycle
	sweepCancel context.CancelFunc
	cronSched   *cron.Cron
	firing      inflightGuard
}

// NewReminderService creates a ReminderService ready for use. Call
// RestartScheduler to begin firing.
func NewReminderService(store domain.ReminderStore, notify *NotifyService, emitter EventEmitter) *ReminderService {
	return &ReminderService{
		store:   store,
		notify:  notify,
		emitter: emitter,
	}
}

// ── Reminder CRUD ──────────────────────────────────────────

func (s *ReminderService) List() ([]domain.Reminder, error) {
	return s.store.ListReminders()
}

func (s *ReminderService) Get(id string) (*domain.Reminder, error) {
	return s.store.GetReminder(id)
}

func (s *ReminderService) Create(ctx context.Context, input CreateReminderInput) (*domain.Reminder, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("reminder title is required")
	}
	if input.Repeat != "" {
		if _, err := cron.ParseStandard(input.Repeat); err != nil {
			return nil, fmt.Errorf("invalid repeat expression %q: %w", input.Repeat, err)
		}
	}

	reminder := &domain.Reminder{
		ID:      uuid.NewString(),
		Title:   input.Title,
		Body:    input.Body,
		DueAt:   input.DueAt,
		Repeat:  input.Repeat,
		Enabled: input.Enabled,
	}
	if err := s.store.CreateReminder(reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	s.RestartScheduler(ctx)
	return reminder, nil
}

func (s *ReminderService) Update(ctx context.Context, id string, input CreateReminderInput) (*domain.Reminder, error) {
	if input.Repeat != "" {
		if _, err := cron.ParseStandard(input.Repeat); err != nil {
			return nil, fmt.Errorf("invalid repeat expression %q: %w", input.Repeat, err)
		}
	}

	reminder, err := s.store.GetReminder(id)
	if err != nil {
		return nil, err
	}
	reminder.Title = input.Title
	reminder.Body = input.Body
	reminder.DueAt = input.DueAt
	reminder.Repeat = input.Repeat
	reminder.Enabled = input.Enabled
	// Rescheduling clears any previous firing
	reminder.FiredAt = nil
	if err := s.store.UpdateReminder(reminder); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	s.RestartScheduler(ctx)
	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteReminder(id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	s.RestartScheduler(ctx)
	return nil
}

// Snooze pushes a reminder minutes into the future and re-arms it.
func (s *ReminderService) Snooze(ctx context.Context, id string, minutes int) (*domain.Reminder, error) {
	if minutes <= 0 {
		return nil, fmt.Errorf("snooze minutes must be positive")
	}
	reminder, err := s.store.GetReminder(id)
	if err != nil {
		return nil, err
	}
	reminder.DueAt = time.Now().Add(time.Duration(minutes) * time.Minute)
	reminder.Enabled = true
	reminder.FiredAt = nil
	if err := s.store.UpdateReminder(reminder); err != nil {
		return nil, fmt.Errorf("snooze reminder: %w", err)
	}
	s.RestartScheduler(ctx)
	return reminder, nil
}

// ── Scheduler ──────────────────────────────────────────────

// RestartScheduler tears down the current cron/sweep and rebuilds them
// from the stored reminders.
func (s *ReminderService) RestartScheduler(ctx context.Context) {
	s.stopScheduler()

	reminders, err := s.store.ListReminders()
	if err != nil {
		log.Printf("reminders: failed to list: %v", err)
		return
	}

	// ── Recurring reminders ──
	var scheduled int
	c := cron.New()
	for _, r := range reminders {
		if r.Repeat == "" || !r.Enabled {
			continue
		}
		rid := r.ID
		_, err := c.AddFunc(r.Repeat, func() {
			if err := s.fireByID(ctx, rid); err != nil {
				log.Printf("reminders: firing %s failed: %v", rid, err)
			}
		})
		if err != nil {
			log.Printf("reminders: invalid expression %q for %s: %v", r.Repeat, r.ID, err)
			continue
		}
		scheduled++
	}
	if scheduled > 0 {
		c.Start()
		s.cronSched = c
		log.Printf("reminders: scheduled %d recurring reminder(s)", scheduled)
	}

	// ── One-shot sweep ──
	sweepCtx, cancel := context.WithCancel(context.Background())
	s.sweepCancel = cancel

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		s.FireDue(ctx)
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				s.FireDue(ctx)
			}
		}
	}()
}

// FireDue fires every enabled one-shot reminder whose due time has
// passed. The sweep goroutine calls this once a minute.
func (s *ReminderService) FireDue(ctx context.Context) {
	due, err := s.store.ListDue(time.Now())
	if err != nil {
		log.Printf("reminders: failed to list due: %v", err)
		return
	}
	for _, r := range due {
		if err := s.fire(ctx, &r); err != nil {
			log.Printf("reminders: firing %s failed: %v", r.ID, err)
		}
	}
}

func (s *ReminderService) fireByID(ctx context.Context, id string) error {
	reminder, err := s.store.GetReminder(id)
	if err != nil {
		return err
	}
	if !reminder.Enabled {
		return nil
	}
	return s.fire(ctx, reminder)
}

func (s *ReminderService) fire(ctx context.Context, reminder *domain.Reminder) error {
	if !s.firing.TryLock(reminder.ID) {
		// A firing for this reminder is still in flight; skip this tick.
		return nil
	}
	defer s.firing.Unlock(reminder.ID)

	if err := s.notify.Send(ctx, reminder.Title, reminder.Body); err != nil {
		log.Printf("reminders: notification for %s failed: %v", reminder.ID, err)
	}
	now := time.Now()
	if err := s.store.MarkFired(reminder.ID, now); err != nil {
		return err
	}
	reminder.FiredAt = &now
	s.emitter.Emit(ctx, "reminder:fired", reminder)
	return nil
}

// Stop tears down the scheduler and waits briefly for in-flight
// firings to finish. Reminders stay stored.
func (s *ReminderService) Stop() {
	s.stopScheduler()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.firing.WaitAll(ctx)
}

func (s *ReminderService) stopScheduler() {
	if s.sweepCancel != nil {
		s.sweepCancel()
		s.sweepCancel = nil
	}
	if s.cronSched != nil {
		s.cronSched.Stop()
		s.cronSched = nil
	}
}
