package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/FleetSched/FleetSched/internal/job"
	"github.com/spf13/cobra"
)

func scheduleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the daily schedule, ordered by pickup time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(job.DateLayout)
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			sched, err := svc.DailySchedule(context.Background(), date)
			if err != nil {
				return err
			}

			if len(sched.Jobs) == 0 {
				fmt.Printf("no jobs scheduled for %s\n", sched.Date)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tJOB\tCLIENT\tFROM\tTO\tSTATUS\tDRIVER\tVEHICLE")
			for _, j := range sched.Jobs {
				driver := "-"
				if j.Driver != nil {
					driver = j.Driver.Name
				}
				vehicle := "-"
				if j.Vehicle != nil {
					vehicle = j.Vehicle.Make + " " + j.Vehicle.Model
				}
				client := "-"
				if j.Client != nil {
					client = j.Client.Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					j.PickupTime, j.ID, client, j.PickupLocation, j.DropOffLocation, j.Status, driver, vehicle)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	return cmd
}
