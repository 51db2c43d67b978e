package yatsy

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
)

const RerollsPerRound = 2

// Action is the choice made by the player to end a round: either
// claim the hand's score in Category, or strike Category.
type Action struct {
	Category Category
	Strike   bool
}

func (a Action) String() string {
	if a.Strike {
		return fmt.Sprintf("strike %s", a.Category)
	}
	return fmt.Sprintf("claim %s", a.Category)
}

// Game is the state of a single-player game: the scorecard and the
// current round. It is the only thing that draws from the Source.
type Game struct {
	src Source

	card        *Scorecard
	hand        Hand
	rerollsLeft int
	round       int
}

func NewGame(src Source) *Game {
	g := &Game{src: src}
	g.Reset()
	return g
}

// Reset discards the scorecard and starts over from the first round.
func (g *Game) Reset() {
	g.card = NewScorecard()
	g.round = 0
	g.startRound()
}

func (g *Game) startRound() {
	g.round++
	g.hand = NewRandomHand(g.src)
	g.rerollsLeft = RerollsPerRound
	glog.V(1).Infof("Round %d: rolled %s", g.round, g.hand)
}

func (g *Game) Hand() Hand            { return g.hand }
func (g *Game) RerollsLeft() int      { return g.rerollsLeft }
func (g *Game) Round() int            { return g.round }
func (g *Game) Scorecard() *Scorecard { return g.card }

// Whether the game is over, i.e. every category has been resolved.
func (g *Game) IsOver() bool {
	return g.card.IsComplete()
}

// Reroll replaces the dice at the given 0-based positions. Duplicate
// and out-of-range positions are ignored. On error the hand and the
// remaining rerolls are unchanged.
func (g *Game) Reroll(positions ...int) error {
	if g.rerollsLeft <= 0 {
		return ErrNoRerollsLeft
	}

	mask := NewDiceMask(positions...)
	if mask.Len() == 0 {
		return ErrNoDiceSelected
	}

	g.hand = g.hand.Reroll(g.src, mask)
	g.rerollsLeft--
	glog.V(1).Infof("Rerolled positions %v: %s (%d rerolls left)",
		mask.Positions(), g.hand, g.rerollsLeft)
	return nil
}

// Options lists the open categories the current hand scores in.
func (g *Game) Options() []CategoryScore {
	all := Evaluate(g.hand)
	result := make([]CategoryScore, 0, len(all))
	for _, cs := range all {
		if g.card.IsOpen(cs.Category) {
			result = append(result, cs)
		}
	}
	return result
}

// Apply resolves the action against the scorecard and, unless the
// card is now complete, moves on to the next round.
func (g *Game) Apply(action Action) error {
	if !action.Category.IsValid() {
		return errors.Newf("invalid category %d", int(action.Category))
	}
	if !g.card.IsOpen(action.Category) {
		return errors.Wrapf(ErrCategoryNotOpen, "cannot %s", action)
	}

	if action.Strike {
		g.card.Strike(action.Category)
	} else {
		g.card.Claim(action.Category, Score(g.hand, action.Category))
	}
	glog.V(1).Infof("Round %d: %s with %s, total = %d",
		g.round, action, g.hand, g.card.Total())

	if !g.IsOver() {
		g.startRound()
	}
	return nil
}
