package api

import "example.com/fittrack/internal/domain"

// ListRunsResponse packages the runs table.
type ListRunsResponse struct {
	Items []domain.Run `json:"items"`
}

// ListWorkoutsResponse packages the workouts table.
type ListWorkoutsResponse struct {
	Items []domain.Workout `json:"items"`
}

// TimelineResponse carries runs and workouts in one feed, newest first.
type TimelineResponse struct {
	Items []any `json:"items"`
}

// SummaryResponse describes totals across both tables.
type SummaryResponse struct {
	Runs                 int     `json:"runs"`
	Workouts             int     `json:"workouts"`
	TotalDistance        float64 `json:"total_distance"`
	TotalRunSeconds      int     `json:"total_run_seconds"`
	TotalRunDuration     string  `json:"total_run_duration"`
	AveragePaceSecsPerKm float64 `json:"average_pace_secs_per_km"`
	Exercises            int     `json:"exercises"`
	TotalVolume          float64 `json:"total_volume"`
	LastRecordDate       string  `json:"last_record_date,omitempty"`
}

// TrendPointView is one day of the run trend series.
type TrendPointView struct {
	Date          string  `json:"date"`
	Distance      float64 `json:"distance"`
	DurationSecs  int     `json:"duration_secs"`
	PaceSecsPerKm float64 `json:"pace_secs_per_km"`
}

// RunTrendResponse is the chart series for runs.
type RunTrendResponse struct {
	Points []TrendPointView `json:"points"`
}

// NewSummaryResponse renders s, formatting the total run time as hh:mm:ss.
func NewSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		Runs:                 s.Runs,
		Workouts:             s.Workouts,
		TotalDistance:        s.TotalDistance,
		TotalRunSeconds:      s.TotalRunSeconds,
		TotalRunDuration:     domain.FormatDuration(s.TotalRunSeconds),
		AveragePaceSecsPerKm: s.AveragePaceSecsPerKm,
		Exercises:            s.Exercises,
		TotalVolume:          s.TotalVolume,
		LastRecordDate:       s.LastRecordDate,
	}
}
