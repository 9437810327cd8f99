package poker

import (
	"errors"
	"fmt"
	"strings"
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "hdcs"
)

// ErrInvalidNotation is returned when a card token is not of the form
// {2-9,T,J,Q,K,A}{h,d,c,s}.
var ErrInvalidNotation = errors.New("invalid card notation")

// ParseCard creates a Card from a two-character string like "As", "Th" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	r := strings.IndexByte(rankChars, s[0])
	u := strings.IndexByte(suitChars, s[1])
	if r < 0 || u < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return NewCard(Rank(r)+minRank, Suit(u))
}

// ParseHand creates a Hand from whitespace-separated card tokens like
// "As Ks Th 7c 4s".
func ParseHand(s string) (Hand, error) {
	tokens := strings.Fields(s)
	cards := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// MustParseHand is like ParseHand but panics on error. Meant for fixtures.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the space-joined notation of the cards in construction order.
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
