package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"example.com/fittrack/internal/api"
)

var errConfirmationRequired = errors.New("refusing to delete all records without --yes")

type timelineLine struct {
	Type string      `json:"type"`
	Date string      `json:"date"`
	Item interface{} `json:"item"`
}

func newTimelineCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "List runs and workouts together, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.service.ListTimeline(cmd.Context())
			if err != nil {
				return err
			}
			lines := make([]timelineLine, 0, len(entries))
			for _, e := range entries {
				line := timelineLine{Type: e.Type, Date: e.Date}
				if e.Run != nil {
					line.Item = e.Run
				} else {
					line.Item = e.Workout
				}
				lines = append(lines, line)
			}
			return printJSON(cmd.OutOrStdout(), lines)
		},
	}
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals across runs and workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.service.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), api.NewSummaryResponse(s))
		},
	}
}

func newClearAllCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear-all",
		Short: "Delete every run and workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errConfirmationRequired
			}
			return a.service.ClearAll(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all records")
	return cmd
}
