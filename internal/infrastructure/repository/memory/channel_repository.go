package memory

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"
	"github.com/mahaatv/backend/internal/domain"
)

type channelRecord struct {
	ID       string
	Position int
	Channel  domain.ChannelEntry
}

// ChannelRepository implements domain.ChannelRepository over a read-only memdb table
type ChannelRepository struct {
	db    *memdb.MemDB
	count int
}

// NewChannelRepository validates the catalog and loads it in display order.
// Nothing is loaded when any channel is malformed or an id repeats.
func NewChannelRepository(db *memdb.MemDB, channels []domain.ChannelEntry) (*ChannelRepository, error) {
	txn := db.Txn(true)
	defer txn.Abort()

	for i, channel := range channels {
		if err := channel.Validate(); err != nil {
			return nil, err
		}

		existing, err := txn.First(tableChannel, "id", channel.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("channel %s: %w", channel.ID, ErrDuplicateKey)
		}

		record := &channelRecord{ID: channel.ID, Position: i, Channel: channel}
		if err := txn.Insert(tableChannel, record); err != nil {
			return nil, fmt.Errorf("load channel %s: %w", channel.ID, err)
		}
	}
	txn.Commit()

	return &ChannelRepository{db: db, count: len(channels)}, nil
}

// GetAll retrieves every channel in display order
func (r *ChannelRepository) GetAll() ([]domain.ChannelEntry, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableChannel, "id")
	if err != nil {
		return nil, err
	}

	records := make([]*channelRecord, 0, r.count)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		records = append(records, obj.(*channelRecord))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Position < records[j].Position
	})

	channels := make([]domain.ChannelEntry, len(records))
	for i, record := range records {
		channels[i] = record.Channel
	}
	return channels, nil
}

// GetByID retrieves a channel by id
func (r *ChannelRepository) GetByID(id string) (domain.ChannelEntry, error) {
	return r.first("id", id)
}

// GetByIndex retrieves a channel by display position
func (r *ChannelRepository) GetByIndex(index int) (domain.ChannelEntry, error) {
	return r.first("position", index)
}

// Count returns the number of channels
func (r *ChannelRepository) Count() int {
	return r.count
}

func (r *ChannelRepository) first(index string, key interface{}) (domain.ChannelEntry, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tableChannel, index, key)
	if err != nil {
		return domain.ChannelEntry{}, err
	}
	if raw == nil {
		return domain.ChannelEntry{}, fmt.Errorf("channel %s=%v: %w", index, key, domain.ErrRecordNotFound)
	}
	return raw.(*channelRecord).Channel, nil
}
