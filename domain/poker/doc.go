// Package poker classifies and ranks 5-card poker hands.
//
// # Core Types
//
// Card: An immutable playing card with rank (2-14, ace high) and suit.
//
// Hand: Exactly five cards. Exposes the derived values used for
// classification: suit histogram, ordered ranks, longest rank run and rank
// multiplicities.
//
// HandValue: The comparable value of a hand, [category, tiebreakers...].
// Values compare lexicographically, so any two hands can be ranked.
//
// HandType: The nine categories, HighCard (1) through StraightFlush (9).
//
// # Hand Evaluation
//
// Classify checks categories from strongest to weakest and appends rank
// tiebreakers in priority order. In the wheel (A-2-3-4-5) the ace plays low
// and is reported as 1, so the wheel loses to a six-high straight.
//
// Winners returns every hand tied for the best value. Suits never break ties.
//
// # Notation
//
// ParseCard and ParseHand read the two-character notation ("As", "Td", "2c");
// Card.String and Hand.String write it back.
package poker
