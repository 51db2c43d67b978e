package yatsy

import (
	"fmt"
	"slices"
)

const NumDice = 5
const numSides = 6

// Hand represents an ordered roll of five dice.
// Scoring treats it as a multiset; the order only matters to the
// player picking positions to reroll.
type Hand [NumDice]uint8

func NewHand(dice ...uint8) Hand {
	if len(dice) != NumDice {
		panic(fmt.Errorf("cannot create Hand with %d dice, need %d",
			len(dice), NumDice))
	}

	for _, die := range dice {
		if die < 1 || die > numSides {
			panic(fmt.Errorf("cannot create Hand with die = %d", die))
		}
	}

	h := Hand{}
	copy(h[:], dice)
	return h
}

// Source of randomness for rolling dice. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

func rollDie(src Source) uint8 {
	return uint8(src.Intn(numSides) + 1)
}

// NewRandomHand rolls five fresh dice.
func NewRandomHand(src Source) Hand {
	var h Hand
	for i := range h {
		h[i] = rollDie(src)
	}
	return h
}

// Reroll returns a copy of the hand with the dice at the masked
// positions replaced by fresh rolls. All other dice are kept.
func (h Hand) Reroll(src Source, mask DiceMask) Hand {
	for i := range h {
		if mask.IsSet(i) {
			h[i] = rollDie(src)
		}
	}
	return h
}

// Counts is the face histogram of the hand: Counts()[f-1] is the
// number of dice showing face f.
func (h Hand) Counts() [numSides]int {
	var counts [numSides]int
	for _, die := range h {
		counts[die-1]++
	}
	return counts
}

func (h Hand) Sum() int {
	total := 0
	for _, die := range h {
		total += int(die)
	}
	return total
}

func (h Hand) Sorted() Hand {
	slices.Sort(h[:])
	return h
}

func (h Hand) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d, %d]", h[0], h[1], h[2], h[3], h[4])
}

// Make all distinct permutations of N dice, as the faces of the
// first N positions of a Hand.
func makeHands(nDice int) []Hand {
	if nDice <= 0 {
		return nil
	} else if nDice == 1 {
		result := make([]Hand, 0, numSides)
		for i := uint8(1); i <= numSides; i++ {
			result = append(result, Hand{i})
		}
		return result
	}

	subResult := makeHands(nDice - 1)
	result := make([]Hand, 0, numSides*len(subResult))
	for _, hand := range subResult {
		for i := uint8(1); i <= numSides; i++ {
			hand[nDice-1] = i
			result = append(result, hand)
		}
	}
	return result
}

var allHands = makeHands(NumDice)

// AllHands returns every ordered hand of five dice (6^5 of them).
// The returned slice is a copy and may be modified.
func AllHands() []Hand {
	return slices.Clone(allHands)
}
