package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────
// FS Service
// ─────────────────────────────────────────────────────────────
//
// Backs the frontend's filesystem plugin surface: text and binary file
// access plus directory management, and change watching via fsnotify.
// Binary contents cross the bridge base64-encoded. Relative paths
// resolve under the app data directory; absolute paths (from dialogs)
// are used as-is.

// FileInfo describes a file or directory for the frontend.
type FileInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	IsDir      bool      `json:"isDir"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// DirEntry is a single entry in a directory listing.
type DirEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"isDir"`
}

// FileChange is the payload of a "fs:change" event.
type FileChange struct {
	WatchID string `json:"watchId"`
	Path    string `json:"path"`
	Kind    string `json:"kind"` // "create" | "write" | "remove" | "rename" | "chmod"
}

// FSService reads, writes, and watches files for the frontend.
type FSService struct {
	baseDir string
	emitter EventEmitter

	watcher *fsnotify.Watcher
	mu      sync.RWMutex
	watches map[string]watchTarget // watch id -> target
}

type watchTarget struct {
	path      string
	recursive bool
}

// NewFSService creates an FSService rooted at baseDir.
func NewFSService(baseDir string, emitter EventEmitter) (*FSService, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	s := &FSService{
		baseDir: baseDir,
		emitter: emitter,
		watcher: watcher,
		watches: make(map[string]watchTarget),
	}

	go s.watchLoop()

	return s, nil
}

// resolvePath expands a frontend path. Relative paths live under the
// app data directory.
func (s *FSService) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// ── File access ────────────────────────────────────────────

// ReadTextFile returns the contents of a file as UTF-8 text.
func (s *FSService) ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(s.resolvePath(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTextFile writes text to a file, replacing its contents.
func (s *FSService) WriteTextFile(path, contents string) error {
	if err := os.WriteFile(s.resolvePath(path), []byte(contents), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendTextFile appends text to a file, creating it if missing.
func (s *FSService) AppendTextFile(path, contents string) error {
	f, err := os.OpenFile(s.resolvePath(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the contents of a file base64-encoded.
func (s *FSService) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(s.resolvePath(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// WriteFile decodes base64 data and writes it to a file.
func (s *FSService) WriteFile(path, data string) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("decode data for %s: %w", path, err)
	}
	if err := os.WriteFile(s.resolvePath(path), raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ── Directory management ───────────────────────────────────

// Exists reports whether a file or directory exists.
func (s *FSService) Exists(path string) (bool, error) {
	_, err := os.Stat(s.resolvePath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return true, nil
}

// Stat returns metadata for a file or directory.
func (s *FSService) Stat(path string) (*FileInfo, error) {
	info, err := os.Stat(s.resolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return &FileInfo{
		Name:       info.Name(),
		Size:       info.Size(),
		IsDir:      info.IsDir(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// Mkdir creates a directory. With recursive, missing parents are
// created too and an existing directory is not an error.
func (s *FSService) Mkdir(path string, recursive bool) error {
	full := s.resolvePath(path)
	var err error
	if recursive {
		err = os.MkdirAll(full, 0755)
	} else {
		err = os.Mkdir(full, 0755)
	}
	if err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// Remove deletes a file or directory. Non-empty directories need
// recursive.
func (s *FSService) Remove(path string, recursive bool) error {
	full := s.resolvePath(path)
	var err error
	if recursive {
		err = os.RemoveAll(full)
	} else {
		err = os.Remove(full)
	}
	if err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// Rename moves a file or directory.
func (s *FSService) Rename(oldPath, newPath string) error {
	if err := os.Rename(s.resolvePath(oldPath), s.resolvePath(newPath)); err != nil {
		return fmt.Errorf("rename %s: %w", oldPath, err)
	}
	return nil
}

// CopyFile copies a file's contents to a new path.
func (s *FSService) CopyFile(srcPath, dstPath string) error {
	src, err := os.Open(s.resolvePath(srcPath))
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := os.Create(s.resolvePath(dstPath))
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy %s: %w", srcPath, err)
	}
	return nil
}

// ReadDir lists the entries of a directory.
func (s *FSService) ReadDir(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(s.resolvePath(path))
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, nil
}

// ── Watching ───────────────────────────────────────────────

// Watch starts watching a file or directory and returns a watch id.
// Changes arrive on the frontend as "fs:change" events carrying that
// id. With recursive, existing subdirectories are watched too.
func (s *FSService) Watch(path string, recursive bool) (string, error) {
	full, err := filepath.Abs(s.resolvePath(path))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(full)
	if err != nil {
		return "", fmt.Errorf("watch %s: %w", path, err)
	}

	// fsnotify watches directories for file events
	watchDir := full
	if !info.IsDir() {
		watchDir = filepath.Dir(full)
	}
	if err := s.watcher.Add(watchDir); err != nil {
		return "", fmt.Errorf("watch %s: %w", path, err)
	}
	if recursive && info.IsDir() {
		err := filepath.WalkDir(full, func(p string, d os.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return err
			}
			return s.watcher.Add(p)
		})
		if err != nil {
			return "", fmt.Errorf("watch %s: %w", path, err)
		}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.watches[id] = watchTarget{path: full, recursive: recursive}
	s.mu.Unlock()
	return id, nil
}

// Unwatch stops a watch. The underlying directory watches are shared,
// so they stay registered until the service closes.
func (s *FSService) Unwatch(id string) {
	s.mu.Lock()
	delete(s.watches, id)
	s.mu.Unlock()
}

// Close stops the watcher. Pending events are dropped.
func (s *FSService) Close() error {
	return s.watcher.Close()
}

func (s *FSService) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			kind := eventKind(event)
			if kind == "" {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)

			s.mu.RLock()
			for id, target := range s.watches {
				if target.matches(absPath) {
					s.emitter.Emit(context.Background(), "fs:change", FileChange{
						WatchID: id,
						Path:    absPath,
						Kind:    kind,
					})
				}
			}
			s.mu.RUnlock()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("fs watcher: error: %v", err)
		}
	}
}

func (t watchTarget) matches(path string) bool {
	if path == t.path {
		return true
	}
	if t.recursive {
		return strings.HasPrefix(path, t.path+string(filepath.Separator))
	}
	return filepath.Dir(path) == t.path
}

func eventKind(event fsnotify.Event) string {
	switch {
	case event.Has(fsnotify.Create):
		return "create"
	case event.Has(fsnotify.Write):
		return "write"
	case event.Has(fsnotify.Remove):
		return "remove"
	case event.Has(fsnotify.Rename):
		return "rename"
	case event.Has(fsnotify.Chmod):
		return "chmod"
	default:
		return ""
	}
}
