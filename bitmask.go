package yatsy

import "math/bits"

// DiceMask is a set of 0-based die positions within a Hand.
type DiceMask uint8

// NewDiceMask builds the set of positions to reroll. Duplicates
// collapse and positions outside the hand are dropped.
func NewDiceMask(positions ...int) DiceMask {
	var m DiceMask
	for _, i := range positions {
		if i < 0 || i >= NumDice {
			continue
		}
		m.Set(i)
	}
	return m
}

func (m *DiceMask) Set(i int) {
	*m |= DiceMask(1) << i
}

func (m *DiceMask) Clear(i int) {
	*m &^= DiceMask(1) << i
}

func (m DiceMask) IsSet(i int) bool {
	return m&(DiceMask(1)<<i) != 0
}

// Len is the number of positions in the set.
func (m DiceMask) Len() int {
	return bits.OnesCount8(uint8(m))
}

// Positions lists the set positions in increasing order.
func (m DiceMask) Positions() []int {
	result := make([]int, 0, m.Len())
	for i := 0; i < NumDice; i++ {
		if m.IsSet(i) {
			result = append(result, i)
		}
	}
	return result
}
