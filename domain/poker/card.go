package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Rank is the face value of a card, 2 through 14 (Ace plays high).
type Rank uint8

// Card rank constants for face cards and ace
const (
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A (low only in the wheel straight)
)

const (
	minRank Rank = 2
	maxRank Rank = Ace
)

// Suit is one of the four card groups. It only matters for flushes.
type Suit uint8

// Card suit constants (0-3), ordered as the h, d, c, s notation
const (
	Heart   Suit = 0 // ♥ (red)
	Diamond Suit = 1 // ♦ (red)
	Club    Suit = 2 // ♣ (black)
	Spade   Suit = 3 // ♠ (black)
)

// Card represents a playing card with rank and suit. It is immutable once
// constructed and compares by value.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//   - suit: 0-3 (Heart, Diamond, Club, Spade)
//
// Returns the Card or an error if rank or suit is invalid.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < minRank || rank > maxRank || suit > Spade {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Rank returns the rank value of the Card (2-14).
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit value of the Card (0-3: hearts, diamonds, clubs, spades).
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the two-character notation of the Card, e.g. "As", "Td", "2c".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Symbol renders the Card for a terminal using suit glyphs, with red suits
// coloured.
func (c Card) Symbol() string {
	var suit string
	switch c.suit {
	case Heart:
		suit = pterm.LightRed("♥")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Club:
		suit = pterm.Gray("♣")
	case Spade:
		suit = pterm.Gray("♠")
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

func (r Rank) String() string {
	if r < minRank || r > maxRank {
		return "?"
	}
	return string(rankChars[r-minRank])
}

func (s Suit) String() string {
	if s > Spade {
		return "?"
	}
	return string(suitChars[s])
}
