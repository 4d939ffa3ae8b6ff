package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"
	"github.com/mahaatv/backend/internal/domain"
)

type sessionRecord struct {
	Key     string
	Session *domain.Session
}

// SessionRepository implements domain.SessionRepository with memdb.
// Sessions are copied on the way in and out so stored values are never shared.
type SessionRepository struct {
	db *memdb.MemDB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *memdb.MemDB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(session *domain.Session) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableSession, "id", session.ID.String())
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("session %s: %w", session.ID, ErrDuplicateKey)
	}

	if err := txn.Insert(tableSession, &sessionRecord{Key: session.ID.String(), Session: session.Clone()}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// GetByID retrieves a session by id
func (r *SessionRepository) GetByID(id uuid.UUID) (*domain.Session, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableSession, "id", id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrRecordNotFound)
	}
	return raw.(*sessionRecord).Session.Clone(), nil
}

// Update replaces an existing session
func (r *SessionRepository) Update(session *domain.Session) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableSession, "id", session.ID.String())
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("session %s: %w", session.ID, domain.ErrRecordNotFound)
	}

	if err := txn.Insert(tableSession, &sessionRecord{Key: session.ID.String(), Session: session.Clone()}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(id uuid.UUID) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableSession, "id", id.String())
	if err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("session %s: %w", id, domain.ErrRecordNotFound)
	}
	if err := txn.Delete(tableSession, raw); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// DeleteIdleSince removes sessions last seen before cutoff
func (r *SessionRepository) DeleteIdleSince(cutoff time.Time) (int, error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(tableSession, "id")
	if err != nil {
		return 0, err
	}

	var idle []interface{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if obj.(*sessionRecord).Session.LastSeenAt.Before(cutoff) {
			idle = append(idle, obj)
		}
	}

	for _, obj := range idle {
		if err := txn.Delete(tableSession, obj); err != nil {
			return 0, err
		}
	}
	txn.Commit()
	return len(idle), nil
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count() (int, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableSession, "id")
	if err != nil {
		return 0, err
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		count++
	}
	return count, nil
}
