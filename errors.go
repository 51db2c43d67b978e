package yatsy

import "github.com/cockroachdb/errors"

var (
	ErrNoRerollsLeft = errors.WithHint(
		errors.New("no rerolls left"),
		"You have no rerolls left!")
	ErrNoDiceSelected = errors.WithHint(
		errors.New("no dice selected for reroll"),
		"You must reroll between 1 and 5 dice!")
	ErrCategoryNotOpen = errors.New("category is not open")
)
