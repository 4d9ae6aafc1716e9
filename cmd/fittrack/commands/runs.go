package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"example.com/fittrack/internal/api"
)

func newRunsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage recorded runs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List runs in stored order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				runs, err := a.service.ListRuns(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), runs)
			},
		},
		newRunAddCommand(a),
		newRunUpdateCommand(a),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete the run with id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return a.service.DeleteRun(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every run",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.service.ClearRuns(cmd.Context())
			},
		},
	)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, req *api.RunRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "run name")
	cmd.Flags().StringVar(&req.Date, "date", "", "run date as dd/mm/yyyy")
	cmd.Flags().StringVar(&req.Distance, "distance", "", "distance in km")
	cmd.Flags().IntVar(&req.DurationSecs, "duration-secs", 0, "duration in seconds")
}

func newRunAddCommand(a *app) *cobra.Command {
	var req api.RunRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new run",
		Example: `  fittrack runs add --name Morning --date 01/01/2025 --distance 5.2 --duration-secs 1800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
			run, err := a.service.AddRun(cmd.Context(), req.ToRun(0))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), run)
		},
	}
	bindRunFlags(cmd, &req)
	return cmd
}

func newRunUpdateCommand(a *app) *cobra.Command {
	var req api.RunRequest
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the run with id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if err := req.Validate(); err != nil {
				return err
			}
			return a.service.UpdateRun(cmd.Context(), req.ToRun(id))
		},
	}
	bindRunFlags(cmd, &req)
	return cmd
}
