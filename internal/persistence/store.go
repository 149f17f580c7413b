package persistence

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLimit is how many casts the log keeps.
const DefaultLimit = 100

// Store is an append-only JSON-lines log of casts that keeps only the most recent
// entries. It is safe for concurrent use within one process.
type Store struct {
	mu    sync.Mutex
	path  string
	file  *os.File
	limit int
	count int
	log   *slog.Logger
}

// NewStore opens or creates the log at path, creating parent directories as needed.
// A non-positive limit means DefaultLimit.
func NewStore(path string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	s := &Store{path: path, limit: limit, log: slog.Default().With("component", "persistence")}
	if err := s.open(); err != nil {
		return nil, err
	}
	entries, err := s.readAll()
	if err != nil {
		s.file.Close()
		return nil, err
	}
	s.count = len(entries)
	return s, nil
}

func (s *Store) open() error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open cast log: %w", err)
	}
	s.file = file
	return nil
}

// Append writes one entry and compacts the file once it holds more than the limit.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return err
	}
	if err := s.file.Sync(); err != nil {
		return err
	}
	s.count++

	if s.count > s.limit {
		return s.compact()
	}
	return nil
}

// compact rewrites the log with only the newest entries. Caller holds mu.
func (s *Store) compact() error {
	entries, err := s.readAll()
	if err != nil {
		return err
	}
	if len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to compact cast log: %w", err)
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := s.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cast log: %w", err)
	}
	s.count = len(entries)
	s.log.Debug("cast log compacted", "path", s.path, "entries", s.count)
	return s.open()
}

// Load returns every entry, oldest first.
func (s *Store) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Recent returns up to n of the newest entries, oldest first. n <= 0 returns all.
func (s *Store) Recent(n int) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

func (s *Store) readAll() ([]Entry, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	entries := []Entry{}
	scanner := bufio.NewScanner(s.file)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("failed to decode cast log entry %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// Path is the location of the log file.
func (s *Store) Path() string {
	return s.path
}
