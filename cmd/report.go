package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"refmap/internal/types"
)

// printResults writes the aggregated table ordered by region code, with a
// totals line and the highest/lowest Choice A shares underneath.
func printResults(w io.Writer, results []types.RegionResultRow) {
	nameWidth := regionNameWidth()

	fmt.Fprintln(w, strings.Repeat("-", nameWidth+70))
	fmt.Fprintf(w, "%-6s %-*s %12s %12s %10s %12s %12s\n",
		"Region", nameWidth, "Name", "Registered", "Abstentions", "Null", "Choice A", "Choice B")

	var total types.RegionResultRow
	for _, r := range results {
		fmt.Fprintf(w, "%-6s %-*s %12d %12d %10d %12d %12d\n",
			r.RegionCode, nameWidth, truncate(r.RegionName, nameWidth),
			r.Registered, r.Abstentions, r.Null, r.ChoiceA, r.ChoiceB)
		total.Registered += r.Registered
		total.Abstentions += r.Abstentions
		total.Null += r.Null
		total.ChoiceA += r.ChoiceA
		total.ChoiceB += r.ChoiceB
	}

	fmt.Fprintf(w, "%-6s %-*s %12d %12d %10d %12d %12d\n",
		"TOTAL", nameWidth, "", total.Registered, total.Abstentions, total.Null, total.ChoiceA, total.ChoiceB)
	fmt.Fprintln(w, strings.Repeat("-", nameWidth+70))

	printExtremes(w, results)
}

// printExtremes names the regions where Choice A did best and worst, among
// regions with at least one expressed ballot.
func printExtremes(w io.Writer, results []types.RegionResultRow) {
	var best, worst *types.RegionResultRow
	for i := range results {
		r := &results[i]
		if r.Expressed() == 0 {
			continue
		}
		if best == nil || choiceAShare(*r) > choiceAShare(*best) {
			best = r
		}
		if worst == nil || choiceAShare(*r) < choiceAShare(*worst) {
			worst = r
		}
	}
	if best == nil {
		return
	}
	fmt.Fprintf(w, "Strongest Choice A : %s (%s) at %.1f%%\n",
		best.RegionName, best.RegionCode, 100*choiceAShare(*best))
	fmt.Fprintf(w, "Weakest Choice A   : %s (%s) at %.1f%%\n",
		worst.RegionName, worst.RegionCode, 100*choiceAShare(*worst))
}

// renderRegionDetail prints one region's tallies in a readable panel.
func renderRegionDetail(w io.Writer, r types.RegionResultRow) {
	expressed := r.Expressed()

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Region            : %s (%s)\n", r.RegionName, r.RegionCode)
	fmt.Fprintf(w, "Registered        : %d\n", r.Registered)
	fmt.Fprintf(w, "Abstentions       : %d", r.Abstentions)
	if r.Registered > 0 {
		fmt.Fprintf(w, " (%.1f%%)", 100*float64(r.Abstentions)/float64(r.Registered))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Null ballots      : %d\n", r.Null)
	fmt.Fprintf(w, "Expressed         : %d\n", expressed)
	fmt.Fprintf(w, "Choice A          : %d\n", r.ChoiceA)
	fmt.Fprintf(w, "Choice B          : %d\n", r.ChoiceB)
	if expressed > 0 {
		fmt.Fprintf(w, "Choice A share    : %.2f%%\n", 100*choiceAShare(r))
	} else {
		fmt.Fprintln(w, "Choice A share    : undefined (no expressed ballots)")
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
}

func choiceAShare(r types.RegionResultRow) float64 {
	return float64(r.ChoiceA) / float64(r.ChoiceA+r.ChoiceB)
}

// regionNameWidth leaves room for the numeric columns on narrow terminals.
func regionNameWidth() int {
	const def = 28
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return def
	}
	if w := width - 70; w < def {
		if w < 12 {
			return 12
		}
		return w
	}
	return def
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
