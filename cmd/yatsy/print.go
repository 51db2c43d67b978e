package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/timpalpant/go-yatsy"
)

const clearScreen = "\x1b[2J"

func printWelcome(w io.Writer) {
	fmt.Fprintln(w, "\n--- Welcome to Command Line Yatsy! ---")
	printHelp(w)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `Enter "r" followed by indices to reroll dice. Indices are 1 based and separated by spaces.`)
	fmt.Fprintln(w, `Enter "p" to pick a result from the available options.`)
	fmt.Fprintln(w, `Enter "s" to show the current score card.`)
	fmt.Fprintln(w, `Enter "q" to quit or "reset" to start a new game.`)
	fmt.Fprintln(w, `Enter "h" to show this help message.`)
}

func printRoundHeader(w io.Writer, round int) {
	fmt.Fprintf(w, "\n--- %s round ---\n", humanize.Ordinal(round))
}

func printState(w io.Writer, game *yatsy.Game) {
	fmt.Fprintf(w, "\nDice: %s, Rerolls left: %d\n", game.Hand(), game.RerollsLeft())
}

func formatSlot(slot yatsy.Slot) string {
	switch slot.State {
	case yatsy.Claimed:
		return fmt.Sprintf("%dp", slot.Score)
	case yatsy.Struck:
		return "x"
	}
	return "-"
}

func printScorecard(w io.Writer, card *yatsy.Scorecard) {
	fmt.Fprintln(w, "\n--- Score Card ---")
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, c := range yatsy.Categories() {
		fmt.Fprintf(tw, "%s\t%s\n", formatSlot(card.Slot(c)), c)
		if c == yatsy.Sixes {
			fmt.Fprintf(tw, "%dp\tUpper sum (bonus at %d)\n", card.UpperSum(), yatsy.UpperBonusThreshold)
			fmt.Fprintf(tw, "%dp\tBonus\n", card.Bonus())
		}
	}
	tw.Flush()
	fmt.Fprintf(w, "---\nTotal: %dp\n", card.Total())
}

func printGameOver(w io.Writer, card *yatsy.Scorecard) {
	fmt.Fprintln(w, "\n--- Game over! Thanks for playing! ---")
	fmt.Fprintf(w, "Final score: %dp\n", card.Total())
}
