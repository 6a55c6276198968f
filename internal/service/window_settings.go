package service

import (
	"database/sql"
	"fmt"

	"github.com/thiagovelsa/jurisdesk/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Window State Persistence
// ─────────────────────────────────────────────────────────────
//
// Saves and restores the main window geometry between sessions.
// Stored in SQLite as key-value rows in app_settings, which the
// storage layer migration creates.

// WindowState holds the saved window geometry.
type WindowState struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Maximised bool `json:"maximised"`
}

// WindowSettingsService persists window geometry between sessions.
type WindowSettingsService struct {
	db *storage.DB
}

// NewWindowSettingsService creates a WindowSettingsService.
func NewWindowSettingsService(db *storage.DB) *WindowSettingsService {
	return &WindowSettingsService{db: db}
}

const (
	settingWindowWidth     = "window_width"
	settingWindowHeight    = "window_height"
	settingWindowMaximised = "window_maximised"
	defaultWindowWidth     = 1280
	defaultWindowHeight    = 800
)

// LoadWindowState returns the saved window geometry, or sensible defaults.
func (s *WindowSettingsService) LoadWindowState() WindowState {
	if s.db == nil {
		return WindowState{Width: defaultWindowWidth, Height: defaultWindowHeight}
	}
	conn := s.db.Conn()

	w := defaultWindowWidth
	h := defaultWindowHeight
	m := 0
	row := conn.QueryRow(`SELECT value FROM app_settings WHERE key = ?`, settingWindowWidth)
	row.Scan(&w)
	row = conn.QueryRow(`SELECT value FROM app_settings WHERE key = ?`, settingWindowHeight)
	row.Scan(&h)
	row = conn.QueryRow(`SELECT value FROM app_settings WHERE key = ?`, settingWindowMaximised)
	row.Scan(&m)

	// Anything below the minimum window size is a stale or corrupt row.
	if w < 940 {
		w = defaultWindowWidth
	}
	if h < 600 {
		h = defaultWindowHeight
	}
	return WindowState{Width: w, Height: h, Maximised: m == 1}
}

// SaveWindowState persists the current window geometry.
func (s *WindowSettingsService) SaveWindowState(width, height int, maximised bool) error {
	if s.db == nil {
		return fmt.Errorf("window settings: no db")
	}
	conn := s.db.Conn()
	if err := upsertSetting(conn, settingWindowWidth, width); err != nil {
		return err
	}
	if err := upsertSetting(conn, settingWindowHeight, height); err != nil {
		return err
	}
	max := 0
	if maximised {
		max = 1
	}
	return upsertSetting(conn, settingWindowMaximised, max)
}

func upsertSetting(conn *sql.DB, key string, value int) error {
	_, err := conn.Exec(
		`INSERT INTO app_settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}
