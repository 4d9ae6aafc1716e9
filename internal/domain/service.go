// Package domain defines fitness records and the operations the presentation layer uses.
package domain

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Repository captures the table operations the service depends on.
type Repository[R any] interface {
	List(ctx context.Context) ([]R, error)
	Add(ctx context.Context, partial R) (R, error)
	Update(ctx context.Context, record R) error
	Delete(ctx context.Context, id int) error
	Clear(ctx context.Context) error
}

// Service orchestrates run and workout workflows.
type Service struct {
	runs     Repository[Run]
	workouts Repository[Workout]
}

// NewService constructs a Service.
func NewService(runs Repository[Run], workouts Repository[Workout]) *Service {
	return &Service{runs: runs, workouts: workouts}
}

// ListRuns returns every run in stored order.
func (s *Service) ListRuns(ctx context.Context) ([]Run, error) {
	return s.runs.List(ctx)
}

// AddRun stores a new run and returns it with its assigned id.
func (s *Service) AddRun(ctx context.Context, run Run) (Run, error) {
	return s.runs.Add(ctx, NormalizeRun(run))
}

// UpdateRun replaces the run with the same id.
func (s *Service) UpdateRun(ctx context.Context, run Run) error {
	return s.runs.Update(ctx, NormalizeRun(run))
}

// DeleteRun removes the run with id.
func (s *Service) DeleteRun(ctx context.Context, id int) error {
	return s.runs.Delete(ctx, id)
}

// ClearRuns drops the whole runs table.
func (s *Service) ClearRuns(ctx context.Context) error {
	return s.runs.Clear(ctx)
}

// ListWorkouts returns every workout in stored order.
func (s *Service) ListWorkouts(ctx context.Context) ([]Workout, error) {
	return s.workouts.List(ctx)
}

// AddWorkout stores a new workout and returns it with its assigned id.
func (s *Service) AddWorkout(ctx context.Context, workout Workout) (Workout, error) {
	workout.Type = RecordTypeWorkout
	return s.workouts.Add(ctx, workout)
}

// UpdateWorkout replaces the workout with the same id.
func (s *Service) UpdateWorkout(ctx context.Context, workout Workout) error {
	workout.Type = RecordTypeWorkout
	return s.workouts.Update(ctx, workout)
}

// DeleteWorkout removes the workout with id.
func (s *Service) DeleteWorkout(ctx context.Context, id int) error {
	return s.workouts.Delete(ctx, id)
}

// ClearWorkouts drops the whole workouts table.
func (s *Service) ClearWorkouts(ctx context.Context) error {
	return s.workouts.Clear(ctx)
}

// ClearAll drops workouts then runs.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.workouts.Clear(ctx); err != nil {
		return err
	}
	return s.runs.Clear(ctx)
}

// NormalizeRun stamps the run type and derives Duration from DurationSecs.
// A caller-supplied Duration is always replaced.
func NormalizeRun(run Run) Run {
	run.Type = RecordTypeRun
	run.Duration = FormatDuration(run.DurationSecs)
	return run
}

// TimelineEntry is one row of the combined runs and workouts feed.
// Exactly one of Run and Workout is set.
type TimelineEntry struct {
	Type    string
	Date    string
	Run     *Run
	Workout *Workout
}

// ListTimeline returns workouts and runs together, newest date first.
// Entries whose date does not parse sort last; ties keep workouts before runs
// and stored order within a table.
func (s *Service) ListTimeline(ctx context.Context) ([]TimelineEntry, error) {
	workouts, err := s.workouts.List(ctx)
	if err != nil {
		return nil, err
	}
	runs, err := s.runs.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]TimelineEntry, 0, len(workouts)+len(runs))
	for i := range workouts {
		entries = append(entries, TimelineEntry{Type: RecordTypeWorkout, Date: workouts[i].Date, Workout: &workouts[i]})
	}
	for i := range runs {
		entries = append(entries, TimelineEntry{Type: RecordTypeRun, Date: runs[i].Date, Run: &runs[i]})
	}

	days := make([]time.Time, len(entries))
	for i, e := range entries {
		days[i], _ = ParseDate(e.Date)
	}
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		da, db := days[idx[a]], days[idx[b]]
		if da.IsZero() || db.IsZero() {
			return !da.IsZero() && db.IsZero()
		}
		return da.After(db)
	})

	out := make([]TimelineEntry, len(entries))
	for i, j := range idx {
		out[i] = entries[j]
	}
	return out, nil
}

// Summary aggregates totals across both tables.
type Summary struct {
	Runs                 int
	Workouts             int
	TotalDistance        float64
	TotalRunSeconds      int
	AveragePaceSecsPerKm float64
	Exercises            int
	TotalVolume          float64
	LastRecordDate       string
}

// Summary computes totals. Distances, reps and weights that do not parse as
// numbers are skipped.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.ListTimeline(ctx)
	if err != nil {
		return Summary{}, err
	}

	var (
		summary   Summary
		pacedDist float64
		pacedSecs int
	)
	for _, e := range entries {
		if summary.LastRecordDate == "" {
			if _, err := ParseDate(e.Date); err == nil {
				summary.LastRecordDate = e.Date
			}
		}
		switch {
		case e.Run != nil:
			summary.Runs++
			summary.TotalRunSeconds += e.Run.DurationSecs
			if km, ok := parseNumber(e.Run.Distance); ok {
				summary.TotalDistance += km
				if km > 0 && e.Run.DurationSecs > 0 {
					pacedDist += km
					pacedSecs += e.Run.DurationSecs
				}
			}
		case e.Workout != nil:
			summary.Workouts++
			summary.Exercises += len(e.Workout.Exercises)
			summary.TotalVolume += workoutVolume(*e.Workout)
		}
	}
	if pacedDist > 0 {
		summary.AveragePaceSecsPerKm = float64(pacedSecs) / pacedDist
	}
	return summary, nil
}

// TrendPoint is one day of run totals.
type TrendPoint struct {
	Date          string
	Day           time.Time
	Distance      float64
	DurationSecs  int
	PaceSecsPerKm float64
}

// RunTrend groups runs by date, oldest first. Runs with unparseable dates are skipped.
func (s *Service) RunTrend(ctx context.Context) ([]TrendPoint, error) {
	runs, err := s.runs.List(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*TrendPoint)
	for _, run := range runs {
		day, err := ParseDate(run.Date)
		if err != nil {
			continue
		}
		point, ok := byDay[day]
		if !ok {
			point = &TrendPoint{Date: day.Format(DateLayout), Day: day}
			byDay[day] = point
		}
		if km, ok := parseNumber(run.Distance); ok {
			point.Distance += km
		}
		point.DurationSecs += run.DurationSecs
	}

	points := make([]TrendPoint, 0, len(byDay))
	for _, p := range byDay {
		if p.Distance > 0 && p.DurationSecs > 0 {
			p.PaceSecsPerKm = float64(p.DurationSecs) / p.Distance
		}
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
	return points, nil
}

func workoutVolume(w Workout) float64 {
	var total float64
	for _, ex := range w.Exercises {
		reps, okReps := parseNumber(ex.Reps)
		weight, okWeight := parseNumber(ex.Weight)
		if okReps && okWeight {
			total += reps * weight
		}
	}
	return total
}

func parseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
