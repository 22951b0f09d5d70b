package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources <drivers|vehicles|clients>",
		Short: "List schedulable resources.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			switch args[0] {
			case "drivers":
				drivers, err := svc.Drivers(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
				for _, d := range drivers {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Email, d.Phone)
				}
			case "vehicles":
				vehicles, err := svc.Vehicles(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tPLATE")
				for _, v := range vehicles {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", v.ID, v.Make, v.Model, v.Year, v.Plate)
				}
			case "clients":
				clients, err := svc.Clients(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "ID\tNAME")
				for _, c := range clients {
					fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
				}
			default:
				return fmt.Errorf("unknown resource %q (want drivers, vehicles or clients)", args[0])
			}

			return w.Flush()
		},
	}
}
