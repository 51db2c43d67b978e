package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/timpalpant/go-yatsy"
)

// shell drives a game from line-based commands on in, writing
// everything the player sees to out.
type shell struct {
	game *yatsy.Game
	in   *lineReader
	out  io.Writer

	// Whether reset should clear the terminal.
	clearScreen bool
	shownRound  int
}

func newShell(game *yatsy.Game, in io.Reader, out io.Writer, clearScreen bool) *shell {
	return &shell{
		game:        game,
		in:          newLineReader(in),
		out:         out,
		clearScreen: clearScreen,
	}
}

// run plays until the game is over, the player quits, or input runs out.
func (s *shell) run() {
	printWelcome(s.out)
	for {
		if s.game.IsOver() {
			printGameOver(s.out, s.game.Scorecard())
			return
		}

		if s.game.Round() != s.shownRound {
			s.shownRound = s.game.Round()
			printRoundHeader(s.out, s.shownRound)
		}
		printState(s.out, s.game)

		cmd, err := s.readCommand()
		if err != nil {
			return
		}

		switch cmd.kind {
		case cmdReroll:
			if err := s.game.Reroll(cmd.positions...); err != nil {
				fmt.Fprintln(s.out, userMessage(err))
			}
		case cmdPick:
			if err := s.pick(); err != nil {
				return
			}
		case cmdScores:
			printScorecard(s.out, s.game.Scorecard())
		case cmdHelp:
			printHelp(s.out)
		case cmdQuit:
			return
		case cmdReset:
			s.reset()
		}
	}
}

// readCommand reads lines until one parses. The only error is io.EOF.
func (s *shell) readCommand() (command, error) {
	for {
		line, err := s.in.readLine()
		if err != nil {
			return command{}, err
		}

		cmd, err := parseCommand(line)
		if err != nil {
			glog.V(2).Infof("Rejected command: %v", err)
			fmt.Fprintln(s.out, "Invalid command. Try again.")
			continue
		}
		return cmd, nil
	}
}

// readPick reads lines until one is a number. The only error is io.EOF.
func (s *shell) readPick() (int, error) {
	for {
		line, err := s.in.readLine()
		if err != nil {
			return 0, err
		}

		n, err := parsePick(line)
		if err != nil {
			glog.V(2).Infof("Rejected pick: %v", err)
			fmt.Fprintln(s.out, "Invalid input. Try again.")
			continue
		}
		return n, nil
	}
}

// pick offers the hand's scoring options plus a trailing strike entry,
// and resolves the round with the player's choice.
func (s *shell) pick() error {
	options := s.game.Options()
	if len(options) == 0 {
		fmt.Fprintln(s.out, "No open category scores with this hand.")
		return s.strike()
	}

	for {
		fmt.Fprintln(s.out, "Pick a result:")
		for i, opt := range options {
			fmt.Fprintf(s.out, "%d: %s\n", i+1, opt)
		}
		strikeEntry := len(options) + 1
		fmt.Fprintf(s.out, "%d: Strike row\n", strikeEntry)

		n, err := s.readPick()
		if err != nil {
			return err
		}

		switch {
		case n < 1 || n > strikeEntry:
			fmt.Fprintln(s.out, "Invalid selection. Try again.")
		case n == strikeEntry:
			return s.strike()
		default:
			s.apply(yatsy.Action{Category: options[n-1].Category})
			return nil
		}
	}
}

func (s *shell) strike() error {
	open := s.game.Scorecard().OpenCategories()
	for {
		fmt.Fprintln(s.out, "Strike a result:")
		for i, c := range open {
			fmt.Fprintf(s.out, "%d: %s\n", i+1, c)
		}

		n, err := s.readPick()
		if err != nil {
			return err
		}

		if n < 1 || n > len(open) {
			fmt.Fprintln(s.out, "Invalid selection. Try again.")
			continue
		}

		s.apply(yatsy.Action{Category: open[n-1], Strike: true})
		return nil
	}
}

func (s *shell) apply(action yatsy.Action) {
	if err := s.game.Apply(action); err != nil {
		// Menus only offer open categories.
		glog.Errorf("Unable to apply %s: %v", action, err)
		fmt.Fprintln(s.out, userMessage(err))
		return
	}
	printScorecard(s.out, s.game.Scorecard())
}

func (s *shell) reset() {
	if s.clearScreen {
		fmt.Fprint(s.out, clearScreen)
	}
	s.game.Reset()
	s.shownRound = 0
	printWelcome(s.out)
}

// userMessage is the text shown to the player for a rejected request.
func userMessage(err error) string {
	if hint := errors.FlattenHints(err); hint != "" {
		return hint
	}
	return err.Error()
}
