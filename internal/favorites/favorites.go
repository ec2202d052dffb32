package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/username/vacation-planner/internal/kvstore"
	"go.uber.org/zap"
)

// Key is the store key holding the JSON array of favorite employee ids
const Key = "favorites"

// ErrPersistenceUnavailable wraps read and write failures of the backing
// store. It is logged, never returned to callers of Toggle.
var ErrPersistenceUnavailable = errors.New("favorites persistence unavailable")

// Set is the viewer's ordered set of favorite employee ids.
// The in-memory set is authoritative for the session; the store is
// written on every change.
type Set struct {
	// writeMu orders toggles so snapshots reach the store in toggle order
	writeMu sync.Mutex
	mu      sync.RWMutex
	ids     []string
	kv      kvstore.Store
	logger  *zap.Logger
}

// Load reads the set from kv. A missing key is an empty set; an unreadable
// one is logged and also yields an empty set.
func Load(kv kvstore.Store, logger *zap.Logger) *Set {
	s := &Set{kv: kv, logger: logger}

	ids, err := read(kv)
	if err != nil {
		logger.Warn("Failed to load favorites, starting empty", zap.Error(err))
		return s
	}
	s.ids = dedupe(ids)

	logger.Debug("Favorites loaded", zap.Strings("ids", s.ids))
	return s
}

func read(kv kvstore.Store) ([]string, error) {
	raw, ok, err := kv.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistenceUnavailable, Key, err)
	}
	return ids, nil
}

// Toggle adds id when absent or removes it when present, then persists the
// set. It reports whether id is a favorite afterwards.
func (s *Set) Toggle(id string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	added := true
	next := make([]string, 0, len(s.ids)+1)
	for _, existing := range s.ids {
		if existing == id {
			added = false
			continue
		}
		next = append(next, existing)
	}
	if added {
		next = append(next, id)
	}
	s.ids = next
	snapshot := append([]string(nil), next...)
	s.mu.Unlock()

	if err := s.persist(snapshot); err != nil {
		s.logger.Warn("Failed to persist favorites", zap.String("employee_id", id), zap.Error(err))
	}
	return added
}

func (s *Set) persist(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	if err := s.kv.Set(Key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}
	return nil
}

// Contains reports whether id is a favorite
func (s *Set) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns a copy of the favorites in insertion order
func (s *Set) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.ids...)
}

// Len returns the number of favorites
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
