package directory

import (
	"go.uber.org/zap"
)

// IdentityProvider resolves the asserted identity of a session
type IdentityProvider interface {
	Login(employeeID string) (Employee, error)
}

// MockIdentity accepts any asserted id. An unknown id falls back to the
// default user, the same way the demo login screen behaves.
type MockIdentity struct {
	dir           *Directory
	defaultUserID string
	logger        *zap.Logger
}

// NewMockIdentity creates an identity provider over the directory
func NewMockIdentity(dir *Directory, defaultUserID string, logger *zap.Logger) *MockIdentity {
	return &MockIdentity{
		dir:           dir,
		defaultUserID: defaultUserID,
		logger:        logger,
	}
}

// Login returns the employee for id, or the default user when id is unknown.
// It fails only when neither is in the directory.
func (m *MockIdentity) Login(employeeID string) (Employee, error) {
	if e, err := m.dir.Get(employeeID); err == nil {
		m.logger.Info("User logged in", zap.String("employee_id", e.ID))
		return e, nil
	}

	e, err := m.dir.Get(m.defaultUserID)
	if err != nil {
		return Employee{}, err
	}
	m.logger.Warn("Unknown user id, falling back to default user",
		zap.String("requested_id", employeeID),
		zap.String("employee_id", e.ID))
	return e, nil
}
