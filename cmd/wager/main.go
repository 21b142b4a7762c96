// Command wager converts betting odds between decimal, fractional, and
// moneyline form.
//
// Usage:
//
//	wager <odd>...          convert each odd and print all three forms
//	wager devig <a> <b>     remove the vig from a two-way market
//
// Odds are accepted in any form: "1.5", "1/2", "-200", "+1200".
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nficca/wager/internal/config"
	"github.com/nficca/wager/internal/history"
	"github.com/nficca/wager/odds"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if args[0] == "devig" {
		if len(args) != 3 {
			usage()
			os.Exit(2)
		}
		if err := devig(args[1], args[2]); err != nil {
			log.Fatalf("devig: %v", err)
		}
		return
	}

	var store *history.DB
	if cfg.HistoryEnabled {
		var err error
		store, err = history.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("Opening history database: %v", err)
		}
		defer store.Close()
	}

	for _, input := range args {
		if err := report(input, cfg.Stake, store); err != nil {
			log.Printf("%q: %v", input, err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wager <odd>...")
	fmt.Fprintln(os.Stderr, "       wager devig <oddA> <oddB>")
}

// report parses input, prints it in all three forms, and records the
// conversion if a history store is open.
func report(input string, stake float64, store *history.DB) error {
	odd, err := odds.Parse(input)
	if err != nil {
		return err
	}

	dec, err := odd.ToDecimal()
	if err != nil {
		return err
	}
	frac, err := odd.ToFractional()
	if err != nil {
		return err
	}
	ml, err := odd.ToMoneyline()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", input)
	fmt.Printf("  decimal:     %s\n", dec)
	fmt.Printf("  fractional:  %s\n", frac)
	fmt.Printf("  moneyline:   %s\n", ml)
	fmt.Printf("  implied:     %.2f%%\n", odd.ImpliedProbability()*100)
	fmt.Printf("  payout:      %.2f on a %.2f stake\n", odd.Payout(stake), stake)

	if store != nil {
		if _, err := store.Add(history.Record{
			Input:       input,
			Decimal:     dec.Value(),
			Fractional:  frac.String(),
			Moneyline:   ml.String(),
			ImpliedProb: odd.ImpliedProbability(),
		}); err != nil {
			return fmt.Errorf("recording conversion: %w", err)
		}
	}

	return nil
}

// devig parses a two-way market and prints the fair probabilities and
// fair decimal prices with the vig removed.
func devig(inputA, inputB string) error {
	a, err := odds.Parse(inputA)
	if err != nil {
		return fmt.Errorf("%q: %w", inputA, err)
	}
	b, err := odds.Parse(inputB)
	if err != nil {
		return fmt.Errorf("%q: %w", inputB, err)
	}

	probA, probB := odds.RemoveVigFromOdds(a, b)
	if probA == 0 || probB == 0 {
		return fmt.Errorf("market %s / %s has no valid implied probabilities", a, b)
	}

	overround := (a.ImpliedProbability() + b.ImpliedProbability() - 1) * 100

	fmt.Printf("market: %s / %s (%.2f%% vig)\n", a, b, overround)
	fmt.Printf("  %-8s fair prob %.2f%%  fair price %.4f\n", a, probA*100, 1/probA)
	fmt.Printf("  %-8s fair prob %.2f%%  fair price %.4f\n", b, probB*100, 1/probB)

	return nil
}
