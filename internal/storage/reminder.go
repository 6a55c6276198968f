package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/thiagovelsa/jurisdesk/internal/domain"
)

// ReminderStore implements domain.ReminderStore using SQLite.
type ReminderStore struct {
	db *DB
}

func NewReminderStore(db *DB) *ReminderStore {
	return &ReminderStore{db: db}
}

func (s *ReminderStore) CreateReminder(r *domain.Reminder) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := s.db.conn.Exec(
		`INSERT INTO reminders (id, title, body, due_at, repeat, enabled, fired_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Body, r.DueAt, r.Repeat, r.Enabled, r.FiredAt, r.CreatedAt, r.UpdatedAt,
	)
	return err
}

func (s *ReminderStore) GetReminder(id string) (*domain.Reminder, error) {
	row := s.db.conn.QueryRow(
		`SELECT id, title, body, due_at, repeat, enabled, fired_at, created_at, updated_at FROM reminders WHERE id = ?`, id,
	)
	r, err := scanReminder(row)
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	return r, nil
}

func (s *ReminderStore) ListReminders() ([]domain.Reminder, error) {
	return s.queryReminders(
		`SELECT id, title, body, due_at, repeat, enabled, fired_at, created_at, updated_at FROM reminders ORDER BY due_at ASC`,
	)
}

func (s *ReminderStore) UpdateReminder(r *domain.Reminder) error {
	r.UpdatedAt = time.Now()
	_, err := s.db.conn.Exec(
		`UPDATE reminders SET title = ?, body = ?, due_at = ?, repeat = ?, enabled = ?, fired_at = ?, updated_at = ? WHERE id = ?`,
		r.Title, r.Body, r.DueAt, r.Repeat, r.Enabled, r.FiredAt, r.UpdatedAt, r.ID,
	)
	return err
}

func (s *ReminderStore) DeleteReminder(id string) error {
	_, err := s.db.conn.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	return err
}

func (s *ReminderStore) ListDue(now time.Time) ([]domain.Reminder, error) {
	return s.queryReminders(
		`SELECT id, title, body, due_at, repeat, enabled, fired_at, created_at, updated_at FROM reminders
		 WHERE enabled = 1 AND repeat = '' AND fired_at IS NULL AND due_at <= ? ORDER BY due_at ASC`,
		now,
	)
}

func (s *ReminderStore) MarkFired(id string, at time.Time) error {
	_, err := s.db.conn.Exec(`UPDATE reminders SET fired_at = ?, updated_at = ? WHERE id = ?`, at, at, id)
	return err
}

func (s *ReminderStore) queryReminders(query string, args ...any) ([]domain.Reminder, error) {
	rows, err := s.db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *r)
	}
	return reminders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (*domain.Reminder, error) {
	r := &domain.Reminder{}
	var fired sql.NullTime
	err := row.Scan(&r.ID, &r.Title, &r.Body, &r.DueAt, &r.Repeat, &r.Enabled, &fired, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if fired.Valid {
		r.FiredAt = &fired.Time
	}
	return r, nil
}
