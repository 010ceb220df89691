package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header is the fixed first line of the durable address log.
const Header = "address"

// ErrContainsNewline is returned when a caller tries to add an address
// that still carries a line break. The log format has no escaping, so
// such an entry would corrupt every later load.
var ErrContainsNewline = errors.New("address contains a newline: normalize before adding")

// Store is the append-only persisted set of previously seen addresses.
// It is owned exclusively by the session controller and mutated only from
// the single control thread, so it needs no internal locking.
type Store struct {
	// path is the location of the durable log.
	path string

	// f is the open append handle. Each Add writes through immediately
	// so that at most one seed's results can ever be lost on interrupt.
	f *os.File

	// seen mirrors the durable log, deduplicated by normalized string.
	seen map[string]struct{}
}

// Open loads (or creates) the durable address log at path. Parent
// directories are created as needed. An existing file has its header
// skipped and every subsequent non-empty line loaded into the set;
// a new file is created with the header already written.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	seen := make(map[string]struct{})

	existing, err := os.Open(path) //nolint:gosec // User-provided output path is intentional
	switch {
	case err == nil:
		scanner := bufio.NewScanner(existing)
		first := true
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if first {
				first = false
				continue // header
			}
			if line != "" {
				seen[line] = struct{}{}
			}
		}
		scanErr := scanner.Err()
		if closeErr := existing.Close(); closeErr != nil && scanErr == nil {
			scanErr = closeErr
		}
		if scanErr != nil {
			return nil, fmt.Errorf("failed to load address log %s: %w", path, scanErr)
		}
	case os.IsNotExist(err):
		// Created below with the header.
	default:
		return nil, fmt.Errorf("failed to open address log %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open address log %s for append: %w", path, err)
	}

	s := &Store{path: path, f: f, seen: seen}

	// A brand new (empty) file still needs its header line.
	info, err := f.Stat()
	if err != nil {
		_ = f.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to stat address log %s: %w", path, err)
	}
	if info.Size() == 0 {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			_ = f.Close() //nolint:errcheck // Best effort cleanup
			return nil, fmt.Errorf("failed to write address log header: %w", err)
		}
	}

	return s, nil
}

// Add appends the address to the durable log if it has not been seen
// before. It returns true when the address was new. Addresses are
// expected to be normalized already; a lingering newline is rejected.
func (s *Store) Add(addr string) (bool, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false, nil
	}
	if strings.ContainsAny(addr, "\r\n") {
		return false, ErrContainsNewline
	}
	if _, dup := s.seen[addr]; dup {
		return false, nil
	}

	if _, err := fmt.Fprintln(s.f, addr); err != nil {
		return false, fmt.Errorf("failed to append address: %w", err)
	}
	s.seen[addr] = struct{}{}
	return true, nil
}

// Contains reports whether the address is already in the set.
func (s *Store) Contains(addr string) bool {
	_, ok := s.seen[strings.TrimSpace(addr)]
	return ok
}

// Len returns the number of distinct addresses in the set.
func (s *Store) Len() int {
	return len(s.seen)
}

// Path returns the location of the durable log.
func (s *Store) Path() string {
	return s.path
}

// Close syncs and closes the append handle.
func (s *Store) Close() error {
	if err := s.f.Sync(); err != nil {
		_ = s.f.Close() //nolint:errcheck // Best effort cleanup
		return fmt.Errorf("failed to sync address log: %w", err)
	}
	return s.f.Close()
}
