package deck

import (
	"reflect"
	"testing"
)

func TestSeededShuffleIsDeterministic(t *testing.T) {
	a := New(WithSource(NewSeededSource(7)))
	b := New(WithSource(NewSeededSource(7)))
	a.Shuffle()
	b.Shuffle()
	if !reflect.DeepEqual(a.cards, b.cards) {
		t.Fatal("expected identical shuffled decks for same seed")
	}
}

func TestSeededShuffleDiffersBySeed(t *testing.T) {
	a := New(WithSource(NewSeededSource(7)))
	b := New(WithSource(NewSeededSource(11)))
	a.Shuffle()
	b.Shuffle()
	if reflect.DeepEqual(a.cards, b.cards) {
		t.Fatal("expected shuffled decks to differ for different seeds")
	}
}

func TestShufflePermutes(t *testing.T) {
	d := New(WithSource(NewSeededSource(3)))
	d.Shuffle()
	if reflect.DeepEqual(d.cards, canonical()) {
		t.Fatal("shuffled deck is identical to the canonical order")
	}
}

func TestSourcesStayInRange(t *testing.T) {
	sources := map[string]Source{
		"seeded": NewSeededSource(5),
		"crypto": NewCryptoSource(),
	}
	for name, src := range sources {
		for n := 1; n <= Size; n++ {
			for i := 0; i < 20; i++ {
				if v := src.Intn(n); v < 0 || v >= n {
					t.Fatalf("%s: Intn(%d) returned %d", name, n, v)
				}
			}
		}
	}
}

func TestCryptoSourceReachesZero(t *testing.T) {
	src := NewCryptoSource()
	if v := src.Intn(1); v != 0 {
		t.Fatalf("Intn(1) returned %d", v)
	}
	var counts [2]int
	for i := 0; i < 2000; i++ {
		counts[src.Intn(2)]++
	}
	if counts[0] < 800 || counts[1] < 800 {
		t.Fatalf("Intn(2) is skewed: %v", counts)
	}
}

func TestCryptoShuffleMovesBottomCard(t *testing.T) {
	bottom := canonical()[0]
	moved := 0
	for i := 0; i < 200; i++ {
		d := New()
		d.Shuffle()
		if d.cards[0] != bottom {
			moved++
		}
	}
	// expected about 196 of 200
	if moved < 180 {
		t.Fatalf("bottom card moved in only %d of 200 shuffles", moved)
	}
}

// Every position should see every card over many shuffles.
func TestShuffleCoversPositions(t *testing.T) {
	sources := map[string]Source{
		"seeded": NewSeededSource(99),
		"crypto": NewCryptoSource(),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			d := New(WithSource(src))
			var seen [Size]map[string]bool
			for i := range seen {
				seen[i] = map[string]bool{}
			}
			for round := 0; round < 2000; round++ {
				d.Shuffle()
				for i, c := range d.cards {
					seen[i][c.String()] = true
				}
			}
			for i := range seen {
				if len(seen[i]) != Size {
					t.Fatalf("position %d saw %d distinct cards", i, len(seen[i]))
				}
			}
		})
	}
}

func TestZeroDeckShuffle(t *testing.T) {
	var d Deck
	d.Shuffle()
	if d.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Size())
	}
	checkCanonical(t, d.cards)
}
