package yatsy

import (
	"fmt"
	"strings"
)

const (
	UpperBonusThreshold = 63
	UpperBonus          = 50
)

type SlotState uint8

const (
	Open SlotState = iota
	Claimed
	Struck
)

func (s SlotState) String() string {
	switch s {
	case Open:
		return "open"
	case Claimed:
		return "claimed"
	case Struck:
		return "struck"
	}
	return fmt.Sprintf("SlotState(%d)", uint8(s))
}

// Slot is one row of the scorecard. Score is only meaningful when
// the slot has been claimed.
type Slot struct {
	State SlotState
	Score int
}

// Points this slot contributes to the total.
func (s Slot) Points() int {
	if s.State == Claimed {
		return s.Score
	}
	return 0
}

// Scorecard holds one slot per category. Slots only ever move from
// Open to Claimed or Struck, and never change again afterwards.
// The zero value is an empty card.
type Scorecard struct {
	slots [NumCategories]Slot
}

func NewScorecard() *Scorecard {
	return &Scorecard{}
}

func (sc *Scorecard) Slot(c Category) Slot {
	return sc.slots[c]
}

func (sc *Scorecard) IsOpen(c Category) bool {
	return sc.slots[c].State == Open
}

// OpenCategories lists every open category in canonical order.
func (sc *Scorecard) OpenCategories() []Category {
	result := make([]Category, 0, NumCategories)
	for c, slot := range sc.slots {
		if slot.State == Open {
			result = append(result, Category(c))
		}
	}
	return result
}

// Claim records score in category c. Claiming a slot that is already
// claimed or struck is ignored.
func (sc *Scorecard) Claim(c Category, score int) {
	if !sc.IsOpen(c) {
		return
	}
	if score < 0 {
		panic(fmt.Errorf("cannot claim %s with negative score %d", c, score))
	}
	sc.slots[c] = Slot{State: Claimed, Score: score}
}

// Strike zeroes category c for the rest of the game. c must be open.
func (sc *Scorecard) Strike(c Category) {
	if !sc.IsOpen(c) {
		panic(fmt.Errorf("cannot strike %s: slot is %s", c, sc.slots[c].State))
	}
	sc.slots[c] = Slot{State: Struck}
}

func (sc *Scorecard) IsComplete() bool {
	for _, slot := range sc.slots {
		if slot.State == Open {
			return false
		}
	}
	return true
}

// UpperSum is the sum of claimed scores in Ones - Sixes.
func (sc *Scorecard) UpperSum() int {
	total := 0
	for _, slot := range sc.slots[:numUpperCategories] {
		total += slot.Points()
	}
	return total
}

// Bonus is awarded as soon as the upper sum reaches the threshold,
// whether or not the upper section is fully resolved.
func (sc *Scorecard) Bonus() int {
	if sc.UpperSum() >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

func (sc *Scorecard) Total() int {
	total := 0
	for _, slot := range sc.slots {
		total += slot.Points()
	}
	return total + sc.Bonus()
}

func (sc *Scorecard) String() string {
	var b strings.Builder
	for c, slot := range sc.slots {
		if c > 0 {
			b.WriteString(", ")
		}
		switch slot.State {
		case Claimed:
			fmt.Fprintf(&b, "%s=%d", Category(c), slot.Score)
		case Struck:
			fmt.Fprintf(&b, "%s=x", Category(c))
		default:
			fmt.Fprintf(&b, "%s=-", Category(c))
		}
	}
	fmt.Fprintf(&b, "; Total=%d", sc.Total())
	return b.String()
}
