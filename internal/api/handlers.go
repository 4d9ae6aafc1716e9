// Package api exposes the local HTTP surface used by the presentation layer.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/store"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	logger  zerolog.Logger
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/runs", h.runs)
	mux.HandleFunc("/v1/runs/", h.runByID)
	mux.HandleFunc("/v1/runs/trend", h.runTrend)
	mux.HandleFunc("/v1/workouts", h.workouts)
	mux.HandleFunc("/v1/workouts/", h.workoutByID)
	mux.HandleFunc("/v1/records", h.records)
	mux.HandleFunc("/v1/summary", h.summary)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for process supervisors.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) runs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		runs, err := h.service.ListRuns(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ListRunsResponse{Items: runs})
	case http.MethodPost:
		var req RunRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}
		run, err := h.service.AddRun(r.Context(), req.ToRun(0))
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, run)
	case http.MethodDelete:
		if err := h.service.ClearRuns(r.Context()); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) runByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, strings.TrimPrefix(r.URL.Path, "/v1/runs/"))
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		runs, err := h.service.ListRuns(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		for _, run := range runs {
			if run.ID == id {
				writeJSON(w, http.StatusOK, run)
				return
			}
		}
		writeError(w, http.StatusNotFound, "not_found", "run not found")
	case http.MethodPut:
		var req RunRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}
		if err := h.service.UpdateRun(r.Context(), req.ToRun(id)); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := h.service.DeleteRun(r.Context(), id); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) runTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	points, err := h.service.RunTrend(r.Context())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	resp := RunTrendResponse{Points: make([]TrendPointView, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, TrendPointView{
			Date:          p.Date,
			Distance:      p.Distance,
			DurationSecs:  p.DurationSecs,
			PaceSecsPerKm: p.PaceSecsPerKm,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		workouts, err := h.service.ListWorkouts(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ListWorkoutsResponse{Items: workouts})
	case http.MethodPost:
		var req WorkoutRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}
		workout, err := h.service.AddWorkout(r.Context(), req.ToWorkout(0))
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, workout)
	case http.MethodDelete:
		if err := h.service.ClearWorkouts(r.Context()); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) workoutByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, strings.TrimPrefix(r.URL.Path, "/v1/workouts/"))
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		workouts, err := h.service.ListWorkouts(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		for _, workout := range workouts {
			if workout.ID == id {
				writeJSON(w, http.StatusOK, workout)
				return
			}
		}
		writeError(w, http.StatusNotFound, "not_found", "workout not found")
	case http.MethodPut:
		var req WorkoutRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}
		if err := h.service.UpdateWorkout(r.Context(), req.ToWorkout(id)); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := h.service.DeleteWorkout(r.Context(), id); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries, err := h.service.ListTimeline(r.Context())
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		items := make([]any, 0, len(entries))
		for _, e := range entries {
			if e.Run != nil {
				items = append(items, e.Run)
			} else {
				items = append(items, e.Workout)
			}
		}
		writeJSON(w, http.StatusOK, TimelineResponse{Items: items})
	case http.MethodDelete:
		if err := h.service.ClearAll(r.Context()); err != nil {
			h.writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	s, err := h.service.Summary(r.Context())
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewSummaryResponse(s))
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req validatable) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return false
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return false
	}
	return true
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid_id", err.Error())
	case errors.Is(err, store.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, store.ErrCorruptData):
		h.logger.Error().Err(err).Msg("corrupt table data")
		writeError(w, http.StatusInternalServerError, "corrupt_data", err.Error())
	case errors.Is(err, store.ErrMediumUnavailable):
		h.logger.Error().Err(err).Msg("storage medium unavailable")
		writeError(w, http.StatusServiceUnavailable, "storage_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func parseID(w http.ResponseWriter, raw string) (int, bool) {
	if raw == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing record id")
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "record id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
