package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thiagovelsa/jurisdesk/internal/dbclient"
)

// ─────────────────────────────────────────────────────────────
// SQL Service
// ─────────────────────────────────────────────────────────────
//
// Backs the frontend's SQL plugin surface. Databases are attached by
// URL (sqlite:name.db, mysql://..., postgres://...) and addressed by
// that same URL on every call, so the service keeps a registry of live
// clients. Queries against a URL that was never loaded are an error,
// not an implicit attach.

// SQLService manages attached databases and runs queries against them.
type SQLService struct {
	sqliteDir string // base dir for relative sqlite paths

	mu      sync.Mutex
	clients map[string]*clientEntry
}

type clientEntry struct {
	client    *dbclient.Client
	createdAt time.Time
}

// NewSQLService creates a SQLService. Relative sqlite URLs resolve
// under sqliteDir.
func NewSQLService(sqliteDir string) *SQLService {
	return &SQLService{
		sqliteDir: sqliteDir,
		clients:   make(map[string]*clientEntry),
	}
}

// Load attaches the database addressed by dbURL and verifies it is
// reachable. Loading an already-attached URL is a no-op. Returns the
// URL so the frontend can use it as its handle.
func (s *SQLService) Load(ctx context.Context, dbURL string) (string, error) {
	s.mu.Lock()
	if _, ok := s.clients[dbURL]; ok {
		s.mu.Unlock()
		return dbURL, nil
	}
	s.mu.Unlock()

	client, err := dbclient.Open(dbURL, s.sqliteDir)
	if err != nil {
		return "", fmt.Errorf("load database: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return "", fmt.Errorf("connect %s: %w", dbURL, err)
	}

	s.mu.Lock()
	s.clients[dbURL] = &clientEntry{client: client, createdAt: time.Now()}
	s.mu.Unlock()
	return dbURL, nil
}

// Select runs a read query against a loaded database.
func (s *SQLService) Select(ctx context.Context, dbURL, query string, values []any) ([]map[string]any, error) {
	client, err := s.getClient(dbURL)
	if err != nil {
		return nil, err
	}
	rows, err := client.Select(ctx, query, values)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return rows, nil
}

// Execute runs a write statement against a loaded database.
func (s *SQLService) Execute(ctx context.Context, dbURL, query string, values []any) (*dbclient.ExecResult, error) {
	client, err := s.getClient(dbURL)
	if err != nil {
		return nil, err
	}
	result, err := client.Execute(ctx, query, values)
	if err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	return result, nil
}

// Loaded reports the URLs of all attached databases.
func (s *SQLService) Loaded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	urls := make([]string, 0, len(s.clients))
	for u := range s.clients {
		urls = append(urls, u)
	}
	return urls
}

// Close detaches the database addressed by dbURL. Closing a URL that is
// not attached is a no-op.
func (s *SQLService) Close(dbURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.clients[dbURL]
	if !ok {
		return nil
	}
	delete(s.clients, dbURL)
	return entry.client.Close()
}

// CloseAll detaches every database. Used on shutdown.
func (s *SQLService) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for u, entry := range s.clients {
		_ = entry.client.Close()
		delete(s.clients, u)
	}
}

func (s *SQLService) getClient(dbURL string) (*dbclient.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.clients[dbURL]
	if !ok {
		return nil, fmt.Errorf("database %s not loaded", dbURL)
	}
	return entry.client, nil
}
