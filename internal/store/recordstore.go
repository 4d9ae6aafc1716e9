package store

import (
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/kv"
)

// RecordStore bundles the runs and workouts tables over one medium.
type RecordStore struct {
	Runs     *Table[domain.Run]
	Workouts *Table[domain.Workout]
}

// New constructs a RecordStore. The medium is owned by the caller.
func New(medium kv.Medium, opts ...Option) *RecordStore {
	return &RecordStore{
		Runs:     NewTable[domain.Run](medium, "runs", domain.RunsTableKey, opts...),
		Workouts: NewTable[domain.Workout](medium, "workouts", domain.WorkoutsTableKey, opts...),
	}
}
