package main

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/poker-hands/domain/poker"
	"github.com/pterm/pterm"
)

// result is one evaluated hand as shown at showdown.
type result struct {
	seat        int
	hand        poker.Hand
	value       poker.HandValue
	description string
}

func evaluate(hands []poker.Hand) ([]result, error) {
	results := make([]result, 0, len(hands))
	for i, h := range hands {
		desc, err := poker.Describe(h)
		if err != nil {
			return nil, fmt.Errorf("describe hand %d: %w", i+1, err)
		}
		results = append(results, result{seat: i + 1, hand: h, value: h.Value(), description: desc})
	}
	return results, nil
}

func renderHand(h poker.Hand) string {
	symbols := make([]string, 0, poker.HandSize)
	for _, c := range h.Cards() {
		symbols = append(symbols, c.Symbol())
	}
	return strings.Join(symbols, " ")
}

func renderValue(v poker.HandValue) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func getResultTable(results []result) (string, error) {
	data := pterm.TableData{{"Seat", "Hand", "Category", "Value", "Description"}}
	for _, r := range results {
		data = append(data, []string{
			fmt.Sprint(r.seat),
			renderHand(r.hand),
			r.value.Type().String(),
			renderValue(r.value),
			r.description,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func getWinnerPanel(results []result) (string, error) {
	hands := make([]poker.Hand, len(results))
	for i, r := range results {
		hands[i] = r.hand
	}
	winners, err := poker.Winners(hands...)
	if err != nil {
		return "", err
	}

	infoString := ""
	for _, r := range results {
		if r.value.Compare(winners[0].Value()) != 0 {
			continue
		}
		infoString += pterm.Sprintfln("Seat %s wins with %s (%s)", pterm.LightCyan(r.seat), r.hand, r.value.Type())
	}
	if len(winners) > 1 {
		infoString += pterm.Sprintfln("%d-way split", len(winners))
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(infoString), nil
}

func printShowdown(hands []poker.Hand) error {
	results, err := evaluate(hands)
	if err != nil {
		return err
	}
	table, err := getResultTable(results)
	if err != nil {
		return err
	}
	panel, err := getWinnerPanel(results)
	if err != nil {
		return err
	}
	pterm.Println(table)
	pterm.Println(panel)
	return nil
}
