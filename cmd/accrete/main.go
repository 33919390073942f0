package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accrete",
	Short: "Dole/Fogg stochastic planetary accretion simulator",
	Long: `accrete simulates the formation of a planetary system from a
primordial circumstellar dust-and-gas cloud, following Dole's 1969
stochastic aggregation model as extended by Fogg. Given a stellar mass and
a random seed it produces a deterministic set of planets and an ordered
event log of every step the simulation took.`,
}

func main() {
	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
