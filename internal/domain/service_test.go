package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/kv"
	"example.com/fittrack/internal/store"
)

func newService(t *testing.T) *domain.Service {
	t.Helper()
	s := store.New(kv.NewMemoryMedium())
	return domain.NewService(s.Runs, s.Workouts)
}

func TestAddRunNormalizesTypeAndDuration(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	run, err := svc.AddRun(ctx, domain.Run{Name: "Morning", Date: "01/01/2025", Distance: "5.2", DurationSecs: 1800})
	require.NoError(t, err)
	require.Equal(t, 1, run.ID)
	require.Equal(t, domain.RecordTypeRun, run.Type)
	require.Equal(t, "00:30:00", run.Duration)

	run.Name = "Evening"
	run.Duration = ""
	run.DurationSecs = 3725
	require.NoError(t, svc.UpdateRun(ctx, run))

	runs, err := svc.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "Evening", runs[0].Name)
	require.Equal(t, "01:02:05", runs[0].Duration)
}

func TestRunDurationAlwaysDerivedFromSeconds(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	run, err := svc.AddRun(ctx, domain.Run{Name: "Tempo", Date: "01/01/2025", Distance: "8", Duration: "banana", DurationSecs: 2400})
	require.NoError(t, err)
	require.Equal(t, "00:40:00", run.Duration)

	run.Duration = "99:99:99"
	require.NoError(t, svc.UpdateRun(ctx, run))

	runs, err := svc.ListRuns(ctx)
	require.NoError(t, err)
	require.Equal(t, "00:40:00", runs[0].Duration)
}

func TestWorkoutLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	w, err := svc.AddWorkout(ctx, domain.Workout{
		Name:      "Push",
		Date:      "02/01/2025",
		Exercises: []domain.Exercise{{Name: "Bench", Reps: "5", Weight: "80"}},
		Type:      "something-else",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RecordTypeWorkout, w.Type)

	w.Exercises = append(w.Exercises, domain.Exercise{Name: "Dips", Reps: "10", Weight: "0"})
	require.NoError(t, svc.UpdateWorkout(ctx, w))

	workouts, err := svc.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 2)

	require.NoError(t, svc.DeleteWorkout(ctx, w.ID))
	workouts, err = svc.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Empty(t, workouts)
}

func TestTimelineOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.AddRun(ctx, domain.Run{Name: "old run", Date: "01/01/2025", Distance: "5", DurationSecs: 1500})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "undated", Date: "sometime", Distance: "3", DurationSecs: 900})
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, domain.Workout{Name: "same day workout", Date: "10/01/2025"})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "same day run", Date: "10/01/2025", Distance: "8", DurationSecs: 2400})
	require.NoError(t, err)

	entries, err := svc.ListTimeline(ctx)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if e.Run != nil {
			names = append(names, e.Run.Name)
		} else {
			names = append(names, e.Workout.Name)
		}
	}
	require.Equal(t, []string{"same day workout", "same day run", "old run", "undated"}, names)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.AddRun(ctx, domain.Run{Name: "r", Date: "01/01/2025", Distance: "1", DurationSecs: 300})
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, domain.Workout{Name: "w", Date: "01/01/2025"})
	require.NoError(t, err)

	require.NoError(t, svc.ClearAll(ctx))

	entries, err := svc.ListTimeline(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	run, err := svc.AddRun(ctx, domain.Run{Name: "again", Date: "02/01/2025", Distance: "1", DurationSecs: 300})
	require.NoError(t, err)
	require.Equal(t, 1, run.ID)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.AddRun(ctx, domain.Run{Name: "a", Date: "01/01/2025", Distance: "5", DurationSecs: 1500})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "b", Date: "03/01/2025", Distance: "10", DurationSecs: 3300})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "c", Date: "02/01/2025", Distance: "n/a", DurationSecs: 600})
	require.NoError(t, err)
	_, err = svc.AddWorkout(ctx, domain.Workout{Name: "w", Date: "02/01/2025", Exercises: []domain.Exercise{
		{Name: "Squat", Reps: "5", Weight: "100"},
		{Name: "Plank", Reps: "1", Weight: "bodyweight"},
	}})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, summary.Runs)
	require.Equal(t, 1, summary.Workouts)
	require.InDelta(t, 15.0, summary.TotalDistance, 1e-9)
	require.Equal(t, 5400, summary.TotalRunSeconds)
	require.InDelta(t, 320.0, summary.AveragePaceSecsPerKm, 1e-9)
	require.Equal(t, 2, summary.Exercises)
	require.InDelta(t, 500.0, summary.TotalVolume, 1e-9)
	require.Equal(t, "03/01/2025", summary.LastRecordDate)
}

func TestRunTrendGroupsByDay(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.AddRun(ctx, domain.Run{Name: "pm", Date: "02/01/2025", Distance: "4", DurationSecs: 1200})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "am", Date: "02/01/2025", Distance: "6", DurationSecs: 1800})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "first", Date: "01/01/2025", Distance: "5", DurationSecs: 1500})
	require.NoError(t, err)
	_, err = svc.AddRun(ctx, domain.Run{Name: "bad", Date: "", Distance: "5", DurationSecs: 1500})
	require.NoError(t, err)

	points, err := svc.RunTrend(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, "01/01/2025", points[0].Date)
	require.Equal(t, "02/01/2025", points[1].Date)
	require.InDelta(t, 10.0, points[1].Distance, 1e-9)
	require.Equal(t, 3000, points[1].DurationSecs)
	require.InDelta(t, 300.0, points[1].PaceSecsPerKm, 1e-9)
}
