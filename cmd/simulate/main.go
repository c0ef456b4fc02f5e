package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"ultimate-holdem-server/internal/config"
	"ultimate-holdem-server/internal/rng"
	"ultimate-holdem-server/pkg/db"
	"ultimate-holdem-server/pkg/model"
	"ultimate-holdem-server/pkg/session"
	"ultimate-holdem-server/pkg/strategy"
)

func main() {
	defaults := config.Instance().Simulation

	hands := flag.Int("hands", defaults.Hands, "hands to play per session")
	ante := flag.Int("ante", defaults.Ante, "the ante for every hand")
	trips := flag.Int("trips", defaults.Trips, "the trips bet for every hand (0 for none)")
	seed := flag.Int64("seed", defaults.Seed, "shuffle seed (0 for a random shuffle)")
	sessions := flag.Int("sessions", defaults.Sessions, "independent sessions to run concurrently")
	strategyName := flag.String("strategy", defaults.Strategy, fmt.Sprintf("the player strategy %v", strategy.Names()))
	audit := flag.Bool("audit", false, "check every showdown against the reference evaluator")
	record := flag.Bool("record", false, "record every round in the database")
	asJSON := flag.Bool("json", false, "print the results as JSON")
	flag.Parse()

	if lvl, err := logrus.ParseLevel(config.Instance().Log.Level); err == nil {
		logrus.SetLevel(lvl)
	}

	opts, err := config.Instance().Table.Options()
	if err != nil {
		logrus.WithError(err).Fatal("invalid table configuration")
	}

	if _, err := strategy.FromString(*strategyName); err != nil {
		logrus.WithError(err).Fatal("invalid strategy")
	}

	if *sessions < 1 {
		logrus.Fatal("sessions must be at least one")
	}

	var recorder session.Recorder
	if *record {
		if err := db.Migrate(); err != nil {
			logrus.WithError(err).Fatal("could not run migrations")
		}

		recorder = model.Recorder{}
	}

	factory := func(i int) (*session.Simulator, error) {
		strat, err := strategy.FromString(*strategyName)
		if err != nil {
			return nil, err
		}

		var gen rng.Generator = rng.Crypto{}
		if *seed != 0 {
			gen = rng.NewSeeded(*seed + int64(i))
		}

		sim, err := session.New(logrus.StandardLogger(), opts, strat, gen)
		if err != nil {
			return nil, err
		}

		sim.SetAudit(*audit)
		if recorder != nil {
			sim.SetRecorder(recorder)
		}

		return sim, nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	stats, err := session.RunConcurrent(ctx, *sessions, factory, *hands, *ante, *trips)
	if err != nil {
		logrus.WithError(err).Error("simulation stopped early")
	}

	summary := session.Summarize(stats)

	switch {
	case *asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]interface{}{
			"summary":  summary,
			"sessions": stats,
		})
	case term.IsTerminal(int(os.Stdout.Fd())):
		printTable(stats, summary)
	default:
		printPlain(stats, summary)
	}

	if err != nil {
		os.Exit(1)
	}
}

func row(name string, s session.Stats) []string {
	return []string{
		name,
		strconv.Itoa(s.HandsPlayed),
		strconv.Itoa(s.HandsWon),
		strconv.Itoa(s.HandsTied),
		strconv.Itoa(s.HandsFolded),
		fmt.Sprintf("%.1f%%", s.WinRate()*100),
		strconv.Itoa(s.Totals.MainPot),
		strconv.Itoa(s.Totals.Blind),
		strconv.Itoa(s.Totals.Trips),
		strconv.Itoa(s.Profit),
		fmt.Sprintf("%.2f", s.AverageProfit()),
	}
}

var header = []string{"Session", "Hands", "Won", "Tied", "Folded", "Win rate", "Main pot", "Blind", "Trips", "Profit", "Avg"}

func printTable(stats []session.Stats, summary session.Stats) {
	pterm.DefaultSection.Printfln("Ultimate Texas Hold'em: %s strategy", summary.Strategy)

	data := pterm.TableData{header}
	for _, s := range stats {
		data = append(data, row(s.SessionID.String()[:8], s))
	}

	if len(stats) > 1 {
		data = append(data, row("total", summary))
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logrus.WithError(err).Error("could not render table")
	}

	for _, s := range stats {
		if s.Bankrupt {
			pterm.Warning.Printfln("session %s went bankrupt after %d hands", s.SessionID, s.HandsPlayed)
		}

		if s.AuditMismatches > 0 {
			pterm.Error.Printfln("session %s had %d audit mismatches", s.SessionID, s.AuditMismatches)
		}
	}
}

func printPlain(stats []session.Stats, summary session.Stats) {
	for _, s := range stats {
		fmt.Printf("%s\thands=%d\twon=%d\ttied=%d\tfolded=%d\tprofit=%d\tbankrupt=%t\tmismatches=%d\n",
			s.SessionID, s.HandsPlayed, s.HandsWon, s.HandsTied, s.HandsFolded, s.Profit, s.Bankrupt, s.AuditMismatches)
	}

	fmt.Printf("total\thands=%d\twon=%d\tprofit=%d\twinRate=%.4f\n", summary.HandsPlayed, summary.HandsWon, summary.Profit, summary.WinRate())
}
