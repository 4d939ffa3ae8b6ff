package application

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mahaatv/backend/internal/domain"
	"github.com/mahaatv/backend/internal/pkg/logger"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session id")
)

// SessionService owns the viewer state contexts
type SessionService struct {
	repo        domain.SessionRepository
	idleTimeout time.Duration
	now         func() time.Time

	// serializes read-modify-write cycles on stored sessions
	mu sync.Mutex
}

// NewSessionService creates a new session service
func NewSessionService(repo domain.SessionRepository, idleTimeout time.Duration) *SessionService {
	return &SessionService{
		repo:        repo,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// ParseSessionID validates a client supplied session id
func ParseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidSession, raw)
	}
	return id, nil
}

// CreateSession starts a new viewer session
func (s *SessionService) CreateSession() (*domain.Session, error) {
	session := domain.NewSession(s.now())
	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	sessionLog := logger.Session(session.ID)
	sessionLog.Debug().Msg("Session created")
	return session, nil
}

// GetSession retrieves a session and marks it as seen
func (s *SessionService) GetSession(id uuid.UUID) (*domain.Session, error) {
	return s.Mutate(id, func(*domain.Session) error { return nil })
}

// Mutate applies fn to a private copy of the session and stores the result.
// Nothing is stored when fn fails.
func (s *SessionService) Mutate(id uuid.UUID, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, err
	}

	session := stored.Clone()
	if err := fn(session); err != nil {
		return nil, err
	}
	session.LastSeenAt = s.now()

	if err := s.repo.Update(session); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("update session %s: %w", id, err)
	}
	return session.Clone(), nil
}

// DeleteSession removes a session
func (s *SessionService) DeleteSession(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// SweepIdle removes sessions not seen within the idle timeout
func (s *SessionService) SweepIdle() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.repo.DeleteIdleSince(s.now().Add(-s.idleTimeout))
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return removed, nil
}

// Count returns the number of live sessions
func (s *SessionService) Count() (int, error) {
	return s.repo.Count()
}
