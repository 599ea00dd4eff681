package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"inventory-game/internal/analysis"
	"inventory-game/internal/config"
	"inventory-game/internal/demand"
	"inventory-game/internal/model"
	"inventory-game/internal/policy"
	"inventory-game/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "play":
		cmdPlay(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli play --config examples/config.yaml --out results/game.csv")
	fmt.Println("  cli simulate --config examples/config.yaml --orders orders.csv --out results/ledger.csv")
	fmt.Println("  cli simulate --config examples/config.yaml --policy base-stock:80")
	fmt.Println("  cli rank --config examples/config.yaml --policies constant:40,constant:60,base-stock:80")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - play is the interactive game: one order per period, demand revealed after")
	fmt.Println("  - simulate replays a full order sequence (from a CSV with an 'order' column, or a policy)")
	fmt.Println("  - rank benchmarks canned policies over the configured demand series")
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: write the ledger CSV here when the game ends")
	_ = fs.Parse(args)

	cfg, src := loadGame(*cfgPath)
	params := cfg.Game.ToModelParams()

	engine, err := sim.New(params)
	if err != nil {
		panic(err)
	}
	if err := engine.ResetRun(params.StartingInventory); err != nil {
		panic(err)
	}

	fmt.Printf("Inventory game: %d periods, unit cost %.2f, holding %.2f%%/yr, shortage %.2f/unit\n",
		params.Horizon, params.UnitCost, params.AnnualHoldingRatePct, params.ShortagePenaltyPerUnit)
	fmt.Printf("Demand: %s. Order before demand is revealed; unmet demand is lost.\n\n", src.Name())

	ledger := make([]model.PeriodRecord, 0, params.Horizon)
	in := bufio.NewScanner(os.Stdin)

	for !engine.Finished() {
		period := engine.NextPeriod()
		fmt.Printf("Day %d/%d | on hand: %.0f | cumulative cost: %.2f\n",
			period, params.Horizon, engine.CurrentInventory(), engine.CumulativeCost())
		qty, ok := promptOrder(in)
		if !ok {
			fmt.Println("\nGame abandoned.")
			return
		}

		d, err := src.DemandFor(period)
		if err != nil {
			panic(err)
		}
		rec, err := engine.StepPeriod(period, qty, d)
		if err != nil {
			fmt.Printf("  rejected: %v\n", err)
			continue
		}
		ledger = append(ledger, rec)

		fmt.Printf("  demand %.0f | sold %.0f | short %.0f | end inventory %.0f | day cost %.2f\n\n",
			rec.Demand, rec.Fulfilled, rec.Unmet, rec.EndInventory, rec.PeriodCost)
	}

	printSummary(analysis.Summarize(ledger))
	writeLedger(*outPath, ledger)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	ordersPath := fs.String("orders", "", "CSV with an 'order' column, one row per period")
	policySpec := fs.String("policy", "", "Policy instead of an orders file, e.g. constant:40 or base-stock:80")
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg, src := loadGame(*cfgPath)
	params := cfg.Game.ToModelParams()

	var (
		result *sim.Result
		err    error
	)
	switch {
	case *ordersPath != "":
		orders, lerr := loadOrdersCSV(*ordersPath)
		if lerr != nil {
			panic(lerr)
		}
		if len(orders) > params.Horizon {
			orders = orders[:params.Horizon]
		}
		result, err = sim.Run(params, orders, src)
	case *policySpec != "":
		p, perr := parsePolicy(*policySpec)
		if perr != nil {
			panic(perr)
		}
		result, err = analysis.Replay(params, src, p)
	default:
		fmt.Println("--orders or --policy is required")
		os.Exit(2)
	}
	if err != nil {
		panic(err)
	}

	writeLedger(*outPath, result.Ledger)
	fmt.Printf("Wrote %d rows to %s\n", len(result.Ledger), *outPath)
	printSummary(analysis.Summarize(result.Ledger))
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	specs := fs.String("policies", "constant:40,constant:60,base-stock:60,base-stock:80",
		"Comma-separated policy specs (name:value)")
	_ = fs.Parse(args)

	cfg, src := loadGame(*cfgPath)
	params := cfg.Game.ToModelParams()

	policies := make([]policy.Policy, 0)
	labels := make(map[policy.Policy]string)
	for _, s := range strings.Split(*specs, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		p, err := parsePolicy(s)
		if err != nil {
			panic(err)
		}
		policies = append(policies, p)
		labels[p] = s
	}

	ranked := make([]analysis.PolicyResult, 0, len(policies))
	for _, p := range policies {
		res, err := analysis.Replay(params, src, p)
		if err != nil {
			panic(err)
		}
		s := analysis.Summarize(res.Ledger)
		ranked = append(ranked, analysis.PolicyResult{Policy: labels[p], Summary: s})
	}
	// Cheapest first.
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j].TotalCost < ranked[i].TotalCost {
				ranked[i], ranked[j] = ranked[j], ranked[i]
			}
		}
	}

	fmt.Printf("%-4s %-18s %-12s %-10s %-8s %-12s\n", "rank", "policy", "total$", "fill", "short", "avg-inv")
	for i, r := range ranked {
		fmt.Printf("%-4d %-18s %-12.2f %-10.3f %-8d %-12.2f\n",
			i+1, r.Policy, r.TotalCost, r.FillRate, r.PeriodsShort, r.AvgEndInventory)
	}
}

func loadGame(cfgPath string) (*config.Config, demand.Source) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	src, err := cfg.BuildSource(filepath.Dir(cfgPath))
	if err != nil {
		panic(err)
	}
	return cfg, src
}

func promptOrder(in *bufio.Scanner) (float64, bool) {
	for {
		fmt.Print("  order qty (or q to quit): ")
		if !in.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(in.Text())
		if text == "q" || text == "quit" {
			return 0, false
		}
		qty, err := strconv.ParseFloat(text, 64)
		if err != nil || qty < 0 {
			fmt.Println("  enter a non-negative number")
			continue
		}
		return qty, true
	}
}

func printSummary(s analysis.Summary) {
	fmt.Println("Game over.")
	fmt.Printf("  total cost:     %.2f (purchase %.2f + holding %.2f + shortage %.2f)\n",
		s.TotalCost, s.TotalPurchaseCost, s.TotalHoldingCost, s.TotalShortageCost)
	fmt.Printf("  fill rate:      %.3f (%.0f of %.0f units)\n", s.FillRate, s.TotalFulfilled, s.TotalDemand)
	fmt.Printf("  periods short:  %d of %d\n", s.PeriodsShort, s.Periods)
	fmt.Printf("  end inventory:  %.0f (peak %.0f, avg %.1f)\n", s.EndingInventory, s.PeakEndInventory, s.AvgEndInventory)
}

func writeLedger(path string, ledger []model.PeriodRecord) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := sim.WriteLedgerCSV(path, ledger); err != nil {
		panic(err)
	}
}

// loadOrdersCSV reads an order sequence from a tabular file with a named
// "order" column, the mirror image of the demand series format.
func loadOrdersCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	col := -1
	for i, name := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(name), "order") {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("%s: no \"order\" column in header %v", path, rows[0])
	}

	orders := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if col >= len(row) {
			return nil, fmt.Errorf("%s: row %d has no order value", path, i+2)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid order %q", path, i+2, row[col])
		}
		orders = append(orders, v)
	}
	return orders, nil
}

func parsePolicy(spec string) (policy.Policy, error) {
	name, arg, found := strings.Cut(spec, ":")
	if !found {
		return nil, fmt.Errorf("invalid policy spec %q, expected name:value", spec)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid policy value in %q", spec)
	}
	switch strings.TrimSpace(name) {
	case "constant":
		return &policy.Constant{Qty: v}, nil
	case "base-stock":
		return &policy.BaseStock{Level: v}, nil
	default:
		return nil, fmt.Errorf("unsupported policy: %q", name)
	}
}
