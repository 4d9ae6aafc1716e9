package api

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"example.com/fittrack/internal/domain"
)

type validatable interface {
	Validate() error
}

// RunRequest is the payload for POST /v1/runs and PUT /v1/runs/{id}.
type RunRequest struct {
	Name         string `json:"name" validate:"required"`
	Date         string `json:"date" validate:"required,datetime=02/01/2006"`
	Distance     string `json:"distance" validate:"required,distance"`
	DurationSecs int    `json:"durationSecs" validate:"gt=0"`
}

func (r *RunRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Date = strings.TrimSpace(r.Date)
	r.Distance = strings.TrimSpace(r.Distance)
}

// Validate trims r and checks it against the run rules.
func (r *RunRequest) Validate() error {
	r.normalize()
	return sharedValidator.Struct(r)
}

// ToRun converts r into a run with id.
func (r RunRequest) ToRun(id int) domain.Run {
	return domain.Run{
		ID:           id,
		Name:         r.Name,
		Date:         r.Date,
		Distance:     r.Distance,
		DurationSecs: r.DurationSecs,
		Type:         domain.RecordTypeRun,
	}
}

// ExerciseRequest is one exercise line of a workout payload.
type ExerciseRequest struct {
	Name   string `json:"name" validate:"required"`
	Reps   string `json:"reps" validate:"required"`
	Weight string `json:"weight" validate:"required"`
}

// WorkoutRequest is the payload for POST /v1/workouts and PUT /v1/workouts/{id}.
type WorkoutRequest struct {
	Name      string            `json:"name" validate:"required"`
	Date      string            `json:"date" validate:"required,datetime=02/01/2006"`
	Exercises []ExerciseRequest `json:"exercises" validate:"required,min=1,dive"`
}

func (r *WorkoutRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Date = strings.TrimSpace(r.Date)
	for i := range r.Exercises {
		r.Exercises[i].Name = strings.TrimSpace(r.Exercises[i].Name)
		r.Exercises[i].Reps = strings.TrimSpace(r.Exercises[i].Reps)
		r.Exercises[i].Weight = strings.TrimSpace(r.Exercises[i].Weight)
	}
}

// Validate trims r and checks it against the workout rules.
func (r *WorkoutRequest) Validate() error {
	r.normalize()
	return sharedValidator.Struct(r)
}

// ToWorkout converts r into a workout with id.
func (r WorkoutRequest) ToWorkout(id int) domain.Workout {
	exercises := make([]domain.Exercise, 0, len(r.Exercises))
	for _, ex := range r.Exercises {
		exercises = append(exercises, domain.Exercise{Name: ex.Name, Reps: ex.Reps, Weight: ex.Weight})
	}
	return domain.Workout{
		ID:        id,
		Name:      r.Name,
		Date:      r.Date,
		Exercises: exercises,
		Type:      domain.RecordTypeWorkout,
	}
}

// requestValidator reports validation failures using JSON field names.
type requestValidator struct {
	v *validator.Validate
}

var sharedValidator = newRequestValidator()

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Validation funcs only fail to register on an empty tag.
	_ = v.RegisterValidation("distance", validDistance)
	return &requestValidator{v: v}
}

// Struct validates req and flattens failures into one message.
func (rv *requestValidator) Struct(req interface{}) error {
	err := rv.v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "datetime":
		return field + " must be a dd/mm/yyyy date"
	case "distance":
		return field + " must be a non-negative number"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// validDistance accepts finite, non-negative decimal strings.
func validDistance(fl validator.FieldLevel) bool {
	km, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && km >= 0 && !math.IsInf(km, 0)
}
