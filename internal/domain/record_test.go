package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		0:     "00:00:00",
		59:    "00:00:59",
		1800:  "00:30:00",
		3725:  "01:02:05",
		36000: "10:00:00",
		-5:    "00:00:00",
	}
	for secs, want := range cases {
		require.Equal(t, want, FormatDuration(secs), "secs=%d", secs)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("05/03/2025")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2025-03-05")
	require.Error(t, err)
}

func TestRunWireFieldNames(t *testing.T) {
	run := Run{ID: 1, Name: "Morning", Date: "01/01/2025", Distance: "5.2", Duration: "00:30:00", DurationSecs: 1800, Type: RecordTypeRun}
	body, err := json.Marshal(run)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"name":"Morning","date":"01/01/2025","distance":"5.2","duration":"00:30:00","durationSecs":1800,"type":"run"}`, string(body))
}

func TestWorkoutWithIDCopiesExercises(t *testing.T) {
	exercises := []Exercise{{Name: "Squat", Reps: "5", Weight: "100"}}
	w := Workout{Name: "Legs", Exercises: exercises}.WithID(4)

	exercises[0].Name = "changed"
	require.Equal(t, 4, w.ID)
	require.Equal(t, "Squat", w.Exercises[0].Name)
}
