package domain

import (
	"fmt"
	"time"
)

// Table keys under which each record table is persisted.
const (
	RunsTableKey     = "runs_table"
	WorkoutsTableKey = "workouts_table"
)

// Record type discriminators stored in the "type" field.
const (
	RecordTypeRun     = "run"
	RecordTypeWorkout = "workout"
)

// DateLayout is the dd/mm/yyyy layout used for record dates.
const DateLayout = "02/01/2006"

// Run is one recorded run.
type Run struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Distance     string `json:"distance"`
	Duration     string `json:"duration"`
	DurationSecs int    `json:"durationSecs"`
	Type         string `json:"type"`
}

// RecordID returns the table-unique id.
func (r Run) RecordID() int { return r.ID }

// WithID returns a copy of r carrying id.
func (r Run) WithID(id int) Run {
	r.ID = id
	return r
}

// Exercise is one line of a workout.
type Exercise struct {
	Name   string `json:"name"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

// Workout is one recorded strength session.
type Workout struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Date      string     `json:"date"`
	Exercises []Exercise `json:"exercises"`
	Type      string     `json:"type"`
}

// RecordID returns the table-unique id.
func (w Workout) RecordID() int { return w.ID }

// WithID returns a copy of w carrying id. The exercise slice is copied so the
// stored record never aliases caller memory.
func (w Workout) WithID(id int) Workout {
	w.ID = id
	if w.Exercises != nil {
		w.Exercises = append([]Exercise(nil), w.Exercises...)
	}
	return w
}

// FormatDuration renders seconds as hh:mm:ss.
func FormatDuration(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ParseDate parses a dd/mm/yyyy record date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
