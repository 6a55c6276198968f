package app

import (
	"github.com/thiagovelsa/jurisdesk/internal/domain"
	"github.com/thiagovelsa/jurisdesk/internal/service"
)

// ListReminders returns every reminder.
func (a *App) ListReminders() ([]domain.Reminder, error) {
	return a.reminders.List()
}

// GetReminder returns one reminder by ID.
func (a *App) GetReminder(id string) (*domain.Reminder, error) {
	return a.reminders.Get(id)
}

// CreateReminder stores a new reminder and reschedules firing.
func (a *App) CreateReminder(input service.CreateReminderInput) (*domain.Reminder, error) {
	return a.reminders.Create(a.ctx, input)
}

// UpdateReminder overwrites a reminder and reschedules firing.
func (a *App) UpdateReminder(id string, input service.CreateReminderInput) (*domain.Reminder, error) {
	return a.reminders.Update(a.ctx, id, input)
}

// DeleteReminder removes a reminder.
func (a *App) DeleteReminder(id string) error {
	return a.reminders.Delete(a.ctx, id)
}

// SnoozeReminder pushes a reminder the given number of minutes into
// the future and re-arms it.
func (a *App) SnoozeReminder(id string, minutes int) (*domain.Reminder, error) {
	return a.reminders.Snooze(a.ctx, id, minutes)
}
