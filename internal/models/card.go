package models

// Card is a single numbered card. Valid values span
// [constants.LowestCard, constants.HighestCard] and each value appears exactly
// once per deck.
type Card int
