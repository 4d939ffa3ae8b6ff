package memory

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/mahaatv/backend/internal/domain"
)

type scheduleRecord struct {
	Channel int
	Days    []domain.ScheduleDay
}

// ScheduleBuilder produces the per-channel schedules for a given day
type ScheduleBuilder func(now time.Time) [][]domain.ScheduleDay

// ScheduleRepository implements domain.ScheduleRepository with memdb.
// Rollover replaces every channel's days in one transaction.
type ScheduleRepository struct {
	db       *memdb.MemDB
	build    ScheduleBuilder
	location *time.Location
}

// NewScheduleRepository creates a schedule repository labelled for now
func NewScheduleRepository(db *memdb.MemDB, build ScheduleBuilder, location *time.Location, now time.Time) (*ScheduleRepository, error) {
	if location == nil {
		location = time.Local
	}
	r := &ScheduleRepository{db: db, build: build, location: location}
	if err := r.Rollover(now); err != nil {
		return nil, err
	}
	return r, nil
}

// Rollover relabels the schedules relative to now
func (r *ScheduleRepository) Rollover(now time.Time) error {
	schedules := r.build(now.In(r.location))

	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tableSchedule, "id"); err != nil {
		return err
	}
	for ch, days := range schedules {
		if err := txn.Insert(tableSchedule, &scheduleRecord{Channel: ch, Days: days}); err != nil {
			return fmt.Errorf("load schedule %d: %w", ch, err)
		}
	}
	txn.Commit()
	return nil
}

// GetByChannelIndex returns a copy of a channel's days
func (r *ScheduleRepository) GetByChannelIndex(index int) ([]domain.ScheduleDay, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableSchedule, "id", index)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("schedule %d: %w", index, domain.ErrRecordNotFound)
	}

	stored := raw.(*scheduleRecord).Days
	days := make([]domain.ScheduleDay, len(stored))
	for i, day := range stored {
		programs := make([]domain.ProgramEntry, len(day.Programs))
		copy(programs, day.Programs)
		days[i] = domain.ScheduleDay{Label: day.Label, Date: day.Date, Programs: programs}
	}
	return days, nil
}
