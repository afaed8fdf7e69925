package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"knightchase/internal/chase"
	"knightchase/internal/config"
	"knightchase/internal/engine"
)

type cliConfig struct {
	Env       config.Env
	BoardPath string
	Scenario  string
	Radius    int // <0 表示不跑
	Rounds    int
	Sequences bool
	Trace     bool
}

func parseConfig(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig
	env, err := config.LoadEnv()
	if err != nil {
		return cliConfig{}, err
	}
	cfg.Env = env

	fs.StringVar(&cfg.BoardPath, "board", "", "board text file")
	fs.StringVar(&cfg.Scenario, "scenario", "", "YAML scenario batch file")
	fs.IntVar(&cfg.Radius, "radius", -1, "count fleeing units within this many jumps")
	fs.IntVar(&cfg.Rounds, "rounds", -1, "simulate this many rounds and count captures")
	fs.BoolVar(&cfg.Sequences, "sequences", false, "count move sequences that capture every fleeing unit")
	fs.BoolVar(&cfg.Trace, "trace", false, "log every simulated round")
	fs.StringVar(&cfg.Env.Locale, "locale", cfg.Env.Locale, "locale for number formatting")
	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if cfg.BoardPath == "" && cfg.Scenario == "" {
		return cliConfig{}, errors.New("one of -board or -scenario is required")
	}
	return cfg, nil
}

func run(cfg cliConfig, out io.Writer) error {
	tag, err := language.Parse(cfg.Env.Locale)
	if err != nil {
		log.Printf("unknown locale %q, falling back to en-US", cfg.Env.Locale)
		tag = language.AmericanEnglish
	}
	pr := message.NewPrinter(tag)

	scenarios, err := collectScenarios(cfg)
	if err != nil {
		return err
	}

	q := chase.Query{Limits: cfg.Env.QueryLimits()}
	if cfg.Trace {
		q.OnRound = func(r chase.RoundReport) {
			log.Printf("round %d: frontier=%d captured=%d escaped=%d live=%d total=%d",
				r.Round, r.FrontierSize, len(r.Captured), len(r.Escaped), r.Live, r.TotalCaptured)
		}
	}
	e := engine.NewEngine()
	e.Limits = cfg.Env.EngineLimits()

	for _, sc := range scenarios {
		b, err := sc.ParseBoard()
		if err != nil {
			return err
		}
		rows, cols := b.Dimensions()
		log.Printf("%s: board %dx%d, %d fleeing units", sc.Name, rows, cols, len(b.Units()))

		if sc.Radius != nil {
			n, err := q.CountWithinRadius(b, *sc.Radius)
			if err != nil {
				return fmt.Errorf("%s: radius: %w", sc.Name, err)
			}
			pr.Fprintf(out, "%s radius=%d: %d\n", sc.Name, *sc.Radius, n)
		}
		if sc.Rounds != nil {
			n, err := q.SimulateRounds(b, *sc.Rounds)
			if err != nil {
				return fmt.Errorf("%s: rounds: %w", sc.Name, err)
			}
			pr.Fprintf(out, "%s rounds=%d: %d\n", sc.Name, *sc.Rounds, n)
		}
		if sc.Sequences {
			res, err := e.CountSequences(b)
			if err != nil {
				return fmt.Errorf("%s: sequences: %w", sc.Name, err)
			}
			log.Printf("%s: sequences searched %d nodes, %d states", sc.Name, res.Nodes, res.States)
			pr.Fprintf(out, "%s sequences: %d\n", sc.Name, res.Sequences)
		}
	}
	return nil
}

func collectScenarios(cfg cliConfig) ([]config.Scenario, error) {
	if cfg.Scenario != "" {
		return config.LoadScenarios(cfg.Scenario)
	}
	text, err := os.ReadFile(cfg.BoardPath)
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	sc := config.Scenario{
		Name:      cfg.BoardPath,
		Board:     string(text),
		Sequences: cfg.Sequences,
	}
	if cfg.Radius >= 0 {
		v := uint32(cfg.Radius)
		sc.Radius = &v
	}
	if cfg.Rounds >= 0 {
		v := uint32(cfg.Rounds)
		sc.Rounds = &v
	}
	return []config.Scenario{sc}, nil
}
