package session

import (
	"errors"
	"sync"
	"time"

	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/favorites"
	"github.com/username/vacation-planner/internal/kvstore"
	"github.com/username/vacation-planner/internal/view"
	"go.uber.org/zap"
)

// ErrNotLoggedIn is returned when no session is active
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the state of one logged-in viewer
type Session struct {
	user      directory.Employee
	favorites *favorites.Set
	startedAt time.Time

	mu            sync.RWMutex
	favoritesView bool
}

// User returns the logged-in employee
func (s *Session) User() directory.Employee {
	return s.user
}

// Favorites returns the viewer's favorites set
func (s *Session) Favorites() *favorites.Set {
	return s.favorites
}

// StartedAt returns the login time
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// FavoritesView reports whether views are limited to self and favorites
func (s *Session) FavoritesView() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favoritesView
}

// ToggleFavoritesView flips the favorites view mode and returns the new value
func (s *Session) ToggleFavoritesView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritesView = !s.favoritesView
	return s.favoritesView
}

// SetFavoritesView sets the favorites view mode
func (s *Session) SetFavoritesView(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritesView = on
}

// Viewer returns the view context of this session
func (s *Session) Viewer(today time.Time) view.Viewer {
	return view.Viewer{
		SelfID:        s.user.ID,
		Favorites:     s.favorites.IDs(),
		FavoritesMode: s.FavoritesView(),
		Today:         today,
	}
}

// Manager owns the single active session
type Manager struct {
	identity directory.IdentityProvider
	kv       kvstore.Store
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.RWMutex
	current *Session
}

// NewManager creates a manager with no active session
func NewManager(identity directory.IdentityProvider, kv kvstore.Store, logger *zap.Logger) *Manager {
	return &Manager{
		identity: identity,
		kv:       kv,
		logger:   logger,
		now:      time.Now,
	}
}

// Login starts a session for the asserted employee id, replacing any
// active one. Favorites are read from the store at this point.
func (m *Manager) Login(employeeID string) (*Session, error) {
	user, err := m.identity.Login(employeeID)
	if err != nil {
		return nil, err
	}

	s := &Session{
		user:      user,
		favorites: favorites.Load(m.kv, m.logger),
		startedAt: m.now(),
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info("Session started",
		zap.String("employee_id", user.ID),
		zap.String("name", user.FullName()),
		zap.Int("favorites", s.favorites.Len()))

	return s, nil
}

// Logout discards the active session. Favorites are already persisted.
func (m *Manager) Logout() {
	m.mu.Lock()
	s := m.current
	m.current = nil
	m.mu.Unlock()

	if s != nil {
		m.logger.Info("Session ended", zap.String("employee_id", s.user.ID))
	}
}

// Current returns the active session
func (m *Manager) Current() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, ErrNotLoggedIn
	}
	return m.current, nil
}
