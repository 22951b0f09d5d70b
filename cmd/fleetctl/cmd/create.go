package cmd

import (
	"context"
	"fmt"

	"github.com/FleetSched/FleetSched/internal/job"
	"github.com/spf13/cobra"
)

func createCmd() *cobra.Command {
	var in job.CreateJobInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a scheduled job.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			j, err := svc.CreateJob(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("created job %s for %s at %s %s (status %s)\n",
				j.ID, in.ClientName, j.PickupDate, j.PickupTime, j.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ClientName, "client", "", "client name (created on first use)")
	cmd.Flags().StringVar(&in.PickupDate, "date", "", "pickup date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.PickupTime, "time", "", "pickup time (HH:MM)")
	cmd.Flags().StringVar(&in.PickupLocation, "from", "", "pickup location")
	cmd.Flags().StringVar(&in.DropOffLocation, "to", "", "drop-off location")
	return cmd
}
