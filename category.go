package yatsy

import "fmt"

type Category int

// Categories in canonical scorecard order. The first six make up the
// upper section.
const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	Pair
	TwoPairs
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	Chance
	Yatsy
)

const NumCategories = 15
const numUpperCategories = 6

var categoryNames = [NumCategories]string{
	Ones:          "Ones",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	Pair:          "Pair",
	TwoPairs:      "Two Pairs",
	ThreeOfAKind:  "Three of a Kind",
	FourOfAKind:   "Four of a Kind",
	SmallStraight: "Small Straight",
	LargeStraight: "Large Straight",
	FullHouse:     "Full House",
	Chance:        "Chance",
	Yatsy:         "Yatsy",
}

var allCategories = func() [NumCategories]Category {
	var result [NumCategories]Category
	for i := range result {
		result[i] = Category(i)
	}
	return result
}()

// Categories returns all fifteen categories in canonical order.
func Categories() []Category {
	result := allCategories
	return result[:]
}

func (c Category) IsValid() bool {
	return c >= Ones && c <= Yatsy
}

// IsUpper reports whether c is one of the face-sum categories Ones - Sixes.
func (c Category) IsUpper() bool {
	return c >= Ones && c < Ones+numUpperCategories
}

// Face is the die face counted by an upper-section category, or 0.
func (c Category) Face() uint8 {
	if !c.IsUpper() {
		return 0
	}
	return uint8(c-Ones) + 1
}

func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// CategoryScore is the score a hand would earn in a category.
type CategoryScore struct {
	Category Category
	Score    int
}

func (cs CategoryScore) String() string {
	return fmt.Sprintf("%dp\t%s", cs.Score, cs.Category)
}
