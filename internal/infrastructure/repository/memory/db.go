package memory

import (
	"errors"

	"github.com/hashicorp/go-memdb"
)

const (
	tableChannel  = "channel"
	tableSchedule = "schedule"
	tableSession  = "session"
)

var ErrDuplicateKey = errors.New("duplicate key")

// NewDatabase creates the in-memory database shared by all repositories
func NewDatabase() (*memdb.MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableChannel: {
				Name: tableChannel,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"position": {
						Name:    "position",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Position"},
					},
				},
			},
			tableSchedule: {
				Name: tableSchedule,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "Channel"},
					},
				},
			},
			tableSession: {
				Name: tableSession,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UUIDFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}

	return memdb.NewMemDB(schema)
}
