package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Strength scores h with the paulhankin/poker table evaluator. Higher is
// better. It agrees with Classify on ordering and is used to cross-check it.
func Strength(h Hand) (int16, error) {
	cards, err := makeReferenceHand(h)
	if err != nil {
		return 0, err
	}
	return poker.Eval5(&cards), nil
}

// Describe returns a human-readable description of h, e.g. "ace-high flush".
func Describe(h Hand) (string, error) {
	cards, err := makeReferenceHand(h)
	if err != nil {
		return "", err
	}
	return poker.Describe(cards[:])
}

func makeReferenceHand(h Hand) ([5]poker.Card, error) {
	var out [5]poker.Card
	for i, c := range h.cards {
		card, err := toReferenceCard(c)
		if err != nil {
			return [5]poker.Card{}, fmt.Errorf("invalid hand card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}

var referenceSuits = [...]poker.Suit{
	Heart:   poker.Heart,
	Diamond: poker.Diamond,
	Club:    poker.Club,
	Spade:   poker.Spade,
}

// toReferenceCard maps a Card onto the library's encoding, where the ace
// is rank 1. The zero Card has rank 0 and is rejected by MakeCard.
func toReferenceCard(c Card) (poker.Card, error) {
	rank := poker.Rank(c.rank)
	if c.rank == Ace {
		rank = 1
	}
	return poker.MakeCard(referenceSuits[c.suit], rank)
}
