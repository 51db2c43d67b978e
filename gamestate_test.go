package yatsy

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	g := NewGame(newSeqSource(1, 2, 3, 4, 5))
	assert.Equal(t, NewHand(1, 2, 3, 4, 5), g.Hand())
	assert.Equal(t, RerollsPerRound, g.RerollsLeft())
	assert.Equal(t, 1, g.Round())
	assert.False(t, g.IsOver())
	assert.Equal(t, Categories(), g.Scorecard().OpenCategories())
}

func TestGameReroll(t *testing.T) {
	g := NewGame(newSeqSource(1, 2, 3, 4, 5, 6, 6, 6))

	require.NoError(t, g.Reroll(0, 0, 9))
	assert.Equal(t, NewHand(6, 2, 3, 4, 5), g.Hand())
	assert.Equal(t, 1, g.RerollsLeft())

	require.NoError(t, g.Reroll(4, 1))
	assert.Equal(t, NewHand(6, 6, 3, 4, 6), g.Hand())
	assert.Equal(t, 0, g.RerollsLeft())

	err := g.Reroll(2)
	require.True(t, errors.Is(err, ErrNoRerollsLeft), "got %v", err)
	assert.Equal(t, "You have no rerolls left!", errors.FlattenHints(err))
	assert.Equal(t, NewHand(6, 6, 3, 4, 6), g.Hand())
	assert.Equal(t, 0, g.RerollsLeft())
}

func TestGameRerollNothingSelected(t *testing.T) {
	g := NewGame(newSeqSource(1, 2, 3, 4, 5))

	for _, positions := range [][]int{nil, {5}, {-1, 7}} {
		err := g.Reroll(positions...)
		require.True(t, errors.Is(err, ErrNoDiceSelected), "positions %v: got %v", positions, err)
		assert.Equal(t, "You must reroll between 1 and 5 dice!", errors.FlattenHints(err))
	}
	assert.Equal(t, NewHand(1, 2, 3, 4, 5), g.Hand())
	assert.Equal(t, RerollsPerRound, g.RerollsLeft())
}

func TestGameOptions(t *testing.T) {
	g := NewGame(newSeqSource(2, 2, 2, 3, 3))
	g.Scorecard().Strike(FullHouse)
	g.Scorecard().Claim(Twos, 4)

	want := []CategoryScore{
		{Threes, 6},
		{Pair, 6},
		{TwoPairs, 10},
		{ThreeOfAKind, 6},
		{Chance, 12},
	}
	if diff := cmp.Diff(want, g.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
}

func TestGameApply(t *testing.T) {
	g := NewGame(newSeqSource(1, 2, 3, 4, 5, 6, 6, 6, 6, 6, 6))

	require.NoError(t, g.Reroll(0))
	require.NoError(t, g.Apply(Action{Category: LargeStraight}))
	assert.Equal(t, Slot{State: Claimed, Score: 20}, g.Scorecard().Slot(LargeStraight))

	// The next round starts with a fresh hand and rerolls.
	assert.Equal(t, 2, g.Round())
	assert.Equal(t, RerollsPerRound, g.RerollsLeft())
	assert.Equal(t, NewHand(6, 6, 6, 6, 6), g.Hand())

	require.NoError(t, g.Apply(Action{Category: Ones, Strike: true}))
	assert.Equal(t, Slot{State: Struck}, g.Scorecard().Slot(Ones))
	assert.Equal(t, 3, g.Round())
}

func TestGameApplyResolvedCategory(t *testing.T) {
	g := NewGame(newSeqSource(5, 5, 5, 5, 5))
	require.NoError(t, g.Apply(Action{Category: Yatsy}))
	require.NoError(t, g.Reroll(0))
	hand := g.Hand()

	for _, action := range []Action{{Category: Yatsy}, {Category: Yatsy, Strike: true}} {
		err := g.Apply(action)
		require.True(t, errors.Is(err, ErrCategoryNotOpen), "%s: got %v", action, err)
	}

	err := g.Apply(Action{Category: Category(NumCategories)})
	require.Error(t, err)

	assert.Equal(t, Slot{State: Claimed, Score: 50}, g.Scorecard().Slot(Yatsy))
	assert.Equal(t, 2, g.Round())
	assert.Equal(t, hand, g.Hand())
	assert.Equal(t, 1, g.RerollsLeft())
}

func TestGamePlaysToCompletion(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(7)))
	for i := 0; i < NumCategories; i++ {
		require.False(t, g.IsOver())
		assert.Equal(t, i+1, g.Round())

		action := Action{Category: g.Scorecard().OpenCategories()[0], Strike: true}
		if options := g.Options(); len(options) > 0 {
			action = Action{Category: options[0].Category}
		}
		require.NoError(t, g.Apply(action))
	}

	assert.True(t, g.IsOver())
	assert.Equal(t, NumCategories, g.Round())
	assert.Positive(t, g.Scorecard().Total())
}

func TestGameReset(t *testing.T) {
	g := NewGame(newSeqSource(3, 3, 3, 3, 3, 1, 2, 3, 4, 5))
	require.NoError(t, g.Apply(Action{Category: Threes}))
	require.NoError(t, g.Reroll(0))

	g.Reset()
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, RerollsPerRound, g.RerollsLeft())
	assert.Equal(t, Categories(), g.Scorecard().OpenCategories())
	assert.Equal(t, 0, g.Scorecard().Total())
}
