package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"example.com/fittrack/internal/api"
)

func newWorkoutsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "Manage recorded workouts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List workouts in stored order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				workouts, err := a.service.ListWorkouts(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), workouts)
			},
		},
		newWorkoutAddCommand(a),
		newWorkoutUpdateCommand(a),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete the workout with id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return a.service.DeleteWorkout(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every workout",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.service.ClearWorkouts(cmd.Context())
			},
		},
	)
	return cmd
}

type workoutFlags struct {
	name      string
	date      string
	exercises []string
}

func (f *workoutFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "workout name")
	cmd.Flags().StringVar(&f.date, "date", "", "workout date as dd/mm/yyyy")
	cmd.Flags().StringArrayVar(&f.exercises, "exercise", nil, "exercise as name:reps:weight (repeatable)")
}

func (f *workoutFlags) request() (api.WorkoutRequest, error) {
	req := api.WorkoutRequest{Name: f.name, Date: f.date}
	for _, raw := range f.exercises {
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return api.WorkoutRequest{}, fmt.Errorf("exercise %q: want name:reps:weight", raw)
		}
		req.Exercises = append(req.Exercises, api.ExerciseRequest{Name: parts[0], Reps: parts[1], Weight: parts[2]})
	}
	if err := req.Validate(); err != nil {
		return api.WorkoutRequest{}, err
	}
	return req, nil
}

func newWorkoutAddCommand(a *app) *cobra.Command {
	var flags workoutFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new workout",
		Example: `  fittrack workouts add --name Legs --date 01/01/2025 --exercise Squat:5:100 --exercise Lunge:10:20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			workout, err := a.service.AddWorkout(cmd.Context(), req.ToWorkout(0))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), workout)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newWorkoutUpdateCommand(a *app) *cobra.Command {
	var flags workoutFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the workout with id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			req, err := flags.request()
			if err != nil {
				return err
			}
			return a.service.UpdateWorkout(cmd.Context(), req.ToWorkout(id))
		},
	}
	flags.bind(cmd)
	return cmd
}
