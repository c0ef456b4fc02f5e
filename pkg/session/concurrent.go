package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Factory creates the i-th simulator of a concurrent run
type Factory func(i int) (*Simulator, error)

// RunConcurrent runs n independent sessions of up to hands rounds each
// The first error cancels the remaining sessions
func RunConcurrent(ctx context.Context, n int, factory Factory, hands, ante, trips int) ([]Stats, error) {
	sims := make([]*Simulator, n)
	for i := range sims {
		sim, err := factory(i)
		if err != nil {
			return nil, err
		}

		sims[i] = sim
	}

	stats := make([]Stats, n)
	g, ctx := errgroup.WithContext(ctx)
	for i, sim := range sims {
		i, sim := i, sim
		g.Go(func() error {
			s, err := sim.Run(ctx, hands, ante, trips)
			stats[i] = s
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}

	return stats, nil
}

// Summarize adds up the totals and hand counts of many sessions
func Summarize(all []Stats) Stats {
	var sum Stats
	for _, s := range all {
		sum.HandsPlayed += s.HandsPlayed
		sum.HandsWon += s.HandsWon
		sum.HandsTied += s.HandsTied
		sum.HandsFolded += s.HandsFolded
		sum.Profit += s.Profit
		sum.FinalStack += s.FinalStack
		sum.AuditMismatches += s.AuditMismatches
		sum.Totals = sum.Totals.Add(s.Totals)
		if s.Duration > sum.Duration {
			sum.Duration = s.Duration
		}

		if sum.Strategy == "" {
			sum.Strategy = s.Strategy
		}
	}

	return sum
}
