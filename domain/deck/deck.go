package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/poker-hands/domain/poker"
)

// Size of the canonical deck: 4 suits × 13 ranks.
const Size = 52

// ErrNotEnoughCards is returned when a full hand cannot be dealt.
var ErrNotEnoughCards = errors.New("not enough cards left in deck")

// Deck is a pool of the 52 canonical cards split between cards still in the
// deck and cards dealt out. Together they always hold every card once.
//
// A Deck is not safe for concurrent use; callers serialize Deal and Shuffle.
type Deck struct {
	cards  []poker.Card
	dealt  []poker.Card
	source Source
}

// Option configures a Deck built by New.
type Option func(*Deck)

// WithSource sets the random source used by Shuffle.
func WithSource(src Source) Option {
	return func(d *Deck) {
		d.source = src
	}
}

// New returns a full, unshuffled deck. Without WithSource it shuffles from
// a crypto-grade kyber random stream.
func New(opts ...Option) *Deck {
	d := &Deck{
		cards: canonical(),
		dealt: make([]poker.Card, 0, Size),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.source == nil {
		d.source = NewCryptoSource()
	}
	return d
}

// canonical lists the 52 cards suit by suit, two through ace.
func canonical() []poker.Card {
	cards := make([]poker.Card, 0, Size)
	for suit := poker.Heart; suit <= poker.Spade; suit++ {
		for rank := poker.Rank(2); rank <= poker.Ace; rank++ {
			card, err := poker.NewCard(rank, suit)
			if err != nil {
				panic(err)
			}
			cards = append(cards, card)
		}
	}
	return cards
}

// Size returns the number of cards still in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Dealt returns a copy of the cards dealt since the last Shuffle.
func (d *Deck) Dealt() []poker.Card {
	return append([]poker.Card(nil), d.dealt...)
}

// Deal removes up to n cards from the deck and returns them. When fewer
// than n remain it returns what is left, possibly nothing. The order of
// the returned cards carries no meaning.
func (d *Deck) Deal(n int) []poker.Card {
	n = max(0, min(n, len(d.cards)))
	cut := len(d.cards) - n
	out := append([]poker.Card(nil), d.cards[cut:]...)
	d.cards = d.cards[:cut]
	d.dealt = append(d.dealt, out...)
	return out
}

// DealHand deals five cards as a Hand. If fewer than five remain it fails
// and no card is moved.
func (d *Deck) DealHand() (poker.Hand, error) {
	if len(d.cards) < poker.HandSize {
		return poker.Hand{}, fmt.Errorf("%w: %d left, need %d", ErrNotEnoughCards, len(d.cards), poker.HandSize)
	}
	return poker.NewHand(d.Deal(poker.HandSize)...)
}

// Shuffle returns every dealt card to the deck and then applies a
// Fisher–Yates permutation to all 52 cards.
//
// On a zero Deck it first fills the pool and picks the crypto source.
func (d *Deck) Shuffle() {
	if d.source == nil {
		d.source = NewCryptoSource()
	}
	if len(d.cards)+len(d.dealt) == 0 {
		d.cards = canonical()
	}
	d.cards = append(d.cards, d.dealt...)
	d.dealt = d.dealt[:0]
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.source.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
