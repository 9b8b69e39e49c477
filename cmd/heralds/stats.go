package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-kind document counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), runStats)
		},
	}
}

func runStats(ctx context.Context, d *Deps) error {
	counts := []struct {
		kind  string
		count func(context.Context) (int, error)
	}{
		{"characters", d.Characters.Count},
		{"creatures", d.Creatures.Count},
		{"items", d.Items.Count},
		{"places", d.Places.Count},
		{"worlds", d.Worlds.Count},
	}

	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %d\n", c.kind, n)
	}
	return nil
}
