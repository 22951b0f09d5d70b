package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func assignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a driver or vehicle to a job.",
	}
	cmd.AddCommand(assignDriverCmd(), assignVehicleCmd())
	return cmd
}

func assignDriverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "driver <jobId> <driverId>",
		Short: "Assign an active driver to a job.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			j, err := svc.AssignDriver(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			name := args[1]
			if j.Driver != nil {
				name = j.Driver.Name
			}
			fmt.Printf("job %s assigned to driver %s\n", j.ID, name)
			return nil
		},
	}
}

func assignVehicleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicle <jobId> <vehicleId>",
		Short: "Assign an active vehicle to a job.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			j, err := svc.AssignVehicle(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}

			desc := args[1]
			if j.Vehicle != nil {
				desc = j.Vehicle.Make + " " + j.Vehicle.Model
			}
			fmt.Printf("job %s assigned to vehicle %s\n", j.ID, desc)
			return nil
		},
	}
}
