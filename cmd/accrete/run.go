package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeonidGrr/accrete-sub000/engine"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one accretion simulation and print the resulting system as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccretion(cmd)
		},
	}

	cmd.Flags().Uint64("seed", 2, "random seed")
	cmd.Flags().Float64("mass", 1.0, "stellar mass, in solar masses")
	cmd.Flags().Int("planets-limit", 0, "stop after this many planets (0 = unlimited)")
	cmd.Flags().Int("post-accretion-intensity", 0, "number of outer bodies to inject after the main loop")
	cmd.Flags().Bool("events", false, "also print the event log")

	return cmd
}

func runAccretion(cmd *cobra.Command) error {
	seed, _ := cmd.Flags().GetUint64("seed")
	mass, _ := cmd.Flags().GetFloat64("mass")
	planetsLimit, _ := cmd.Flags().GetInt("planets-limit")
	intensity, _ := cmd.Flags().GetInt("post-accretion-intensity")
	withEvents, _ := cmd.Flags().GetBool("events")

	builder := engine.NewBuilder(seed, mass).WithPostAccretionIntensity(intensity)
	if planetsLimit > 0 {
		builder = builder.WithPlanetsLimit(planetsLimit)
	}

	params, err := builder.Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	eng, err := engine.New(params, nil)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	system, log, err := eng.Run()
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	out := struct {
		System any `json:"system"`
		Events any `json:"events,omitempty"`
	}{System: system}
	if withEvents {
		out.Events = log.Events()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
