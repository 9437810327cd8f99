package deck

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/poker-hands/domain/poker"
)

func checkCanonical(t *testing.T, cards []poker.Card) {
	t.Helper()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}
	seen := map[poker.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	for _, c := range canonical() {
		if !seen[c] {
			t.Fatalf("missing card %s", c)
		}
	}
}

func allCards(d *Deck) []poker.Card {
	return append(append([]poker.Card(nil), d.cards...), d.dealt...)
}

func TestNewDeck(t *testing.T) {
	d := New(WithSource(NewSeededSource(1)))
	if d.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Size())
	}
	if len(d.Dealt()) != 0 {
		t.Fatalf("expected no dealt cards, got %d", len(d.Dealt()))
	}
	checkCanonical(t, allCards(d))
}

func TestDeal(t *testing.T) {
	d := New(WithSource(NewSeededSource(1)))
	cards := d.Deal(5)
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if d.Size() != 47 {
		t.Fatalf("expected 47 cards left, got %d", d.Size())
	}
	seen := map[poker.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate dealt card %s", c)
		}
		seen[c] = true
	}
	for _, c := range d.cards {
		if seen[c] {
			t.Fatalf("dealt card %s still in deck", c)
		}
	}
	if len(d.Dealt()) != 5 {
		t.Fatalf("expected 5 dealt cards, got %d", len(d.Dealt()))
	}
	checkCanonical(t, allCards(d))
}

func TestDealMoreThanLeft(t *testing.T) {
	d := New(WithSource(NewSeededSource(1)))
	d.Deal(50)
	cards := d.Deal(5)
	if len(cards) != 2 {
		t.Fatalf("expected the last 2 cards, got %d", len(cards))
	}
	if d.Size() != 0 {
		t.Fatalf("expected empty deck, got %d", d.Size())
	}
	if cards := d.Deal(1); len(cards) != 0 {
		t.Fatalf("expected no cards from empty deck, got %d", len(cards))
	}
	if cards := d.Deal(-3); len(cards) != 0 {
		t.Fatalf("expected no cards for negative count, got %d", len(cards))
	}
	checkCanonical(t, allCards(d))
}

func TestDealHand(t *testing.T) {
	d := New(WithSource(NewSeededSource(1)))
	for i := 0; i < 10; i++ {
		if _, err := d.DealHand(); err != nil {
			t.Fatal(err)
		}
	}
	_, err := d.DealHand()
	if !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("expected ErrNotEnoughCards, got %v", err)
	}
	if d.Size() != 2 {
		t.Fatalf("failed deal must not move cards, %d left", d.Size())
	}
}

func TestShuffleRestoresDeck(t *testing.T) {
	d := New(WithSource(NewSeededSource(1)))
	d.Deal(5)
	d.Shuffle()
	if d.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Size())
	}
	if len(d.Dealt()) != 0 {
		t.Fatalf("expected no dealt cards, got %d", len(d.Dealt()))
	}
	checkCanonical(t, d.cards)
}

func TestShuffleWithCryptoSource(t *testing.T) {
	d := New()
	d.Deal(17)
	d.Shuffle()
	checkCanonical(t, d.cards)
}
