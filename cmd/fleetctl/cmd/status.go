package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <jobId> <newStatus>",
		Short: "Update a job's status (SCHEDULED, IN_PROGRESS, COMPLETED, CANCELLED).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			j, err := svc.UpdateStatus(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("job %s is now %s\n", j.ID, j.Status)
			return nil
		},
	}
}
