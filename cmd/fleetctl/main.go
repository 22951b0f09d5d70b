package main

import (
	"os"

	"github.com/FleetSched/FleetSched/cmd/fleetctl/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
