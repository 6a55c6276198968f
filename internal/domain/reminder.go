package domain

import "time"

// Reminder is a scheduled notification for a matter deadline or task.
// Repeat holds a cron expression for recurring reminders; an empty
// Repeat means the reminder fires once at DueAt.
type Reminder struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	DueAt     time.Time  `json:"dueAt"`
	Repeat    string     `json:"repeat"`
	Enabled   bool       `json:"enabled"`
	FiredAt   *time.Time `json:"firedAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ReminderStore manages CRUD for reminders.
type ReminderStore interface {
	CreateReminder(r *Reminder) error
	GetReminder(id string) (*Reminder, error)
	ListReminders() ([]Reminder, error)
	UpdateReminder(r *Reminder) error
	DeleteReminder(id string) error

	// ListDue returns enabled one-shot reminders whose DueAt has passed
	// and which have not fired yet.
	ListDue(now time.Time) ([]Reminder, error)
	MarkFired(id string, at time.Time) error
}
