package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/poker-hands/domain/deck"
	"github.com/luca-patrignani/poker-hands/domain/poker"
)

var errUsage = errors.New("usage: poker [-v] eval <hand>... | poker [-v] deal [-players N] [-seed S]")

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	if err := run(os.Args[1:], logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("poker", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}

	args = fs.Args()
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "eval":
		hands, err := parseHands(args[1:])
		if err != nil {
			return err
		}
		logger.Debug("parsed hands", "count", len(hands))
		return printShowdown(hands)
	case "deal":
		hands, err := dealHands(args[1:], logger)
		if err != nil {
			return err
		}
		return printShowdown(hands)
	default:
		return errUsage
	}
}

// parseHands reads one hand per argument ("As Ks Qs Js Ts") or, when every
// argument is a single card, groups consecutive cards by five.
func parseHands(args []string) ([]poker.Hand, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	if !strings.ContainsAny(strings.Join(args, ""), " \t") {
		if len(args)%poker.HandSize != 0 {
			return nil, fmt.Errorf("%w: %d cards do not make whole hands", poker.ErrHandSize, len(args))
		}
		grouped := make([]string, 0, len(args)/poker.HandSize)
		for i := 0; i < len(args); i += poker.HandSize {
			grouped = append(grouped, strings.Join(args[i:i+poker.HandSize], " "))
		}
		args = grouped
	}

	hands := make([]poker.Hand, 0, len(args))
	for i, s := range args {
		h, err := poker.ParseHand(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func dealHands(args []string, logger *slog.Logger) ([]poker.Hand, error) {
	fs := flag.NewFlagSet("deal", flag.ContinueOnError)
	players := fs.Int("players", 4, "number of hands to deal (1-10)")
	seed := fs.Int64("seed", 0, "seed for a reproducible shuffle (0 uses a crypto source)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *players < 1 || *players*poker.HandSize > deck.Size {
		return nil, fmt.Errorf("players must be in range 1..=%d, got %d", deck.Size/poker.HandSize, *players)
	}

	var opts []deck.Option
	if *seed != 0 {
		opts = append(opts, deck.WithSource(deck.NewSeededSource(*seed)))
	}
	d := deck.New(opts...)
	d.Shuffle()

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()

	hands := make([]poker.Hand, 0, *players)
	for i := 0; i < *players; i++ {
		h, err := d.DealHand()
		if err != nil {
			return nil, err
		}
		logger.Debug("dealt hand", "seat", i+1, "hand", h.String(), "left", d.Size())
		hands = append(hands, h)
	}
	return hands, nil
}
