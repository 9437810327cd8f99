package poker

import (
	"errors"
	"slices"
)

// HandType is the category of a hand. Higher beats lower.
type HandType uint8

const (
	HighCard HandType = iota + 1
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

var handTypeNames = [...]string{
	HighCard:      "high card",
	Pair:          "pair",
	TwoPair:       "two pair",
	Trips:         "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	Quads:         "four of a kind",
	StraightFlush: "straight flush",
}

// HandTypes returns the nine categories in ascending order.
func HandTypes() []HandType {
	return []HandType{HighCard, Pair, TwoPair, Trips, Straight, Flush, FullHouse, Quads, StraightFlush}
}

func (t HandType) String() string {
	if t < HighCard || t > StraightFlush {
		return "unknown"
	}
	return handTypeNames[t]
}

// HandValue is the comparable value of a hand: the category followed by
// rank tiebreakers in priority order. Two values compare lexicographically.
type HandValue []int

// Type returns the category stored in the first element.
func (v HandValue) Type() HandType {
	if len(v) == 0 {
		return 0
	}
	return HandType(v[0])
}

// Compare returns -1, 0 or +1 as v is worse than, equal to or better than o.
func (v HandValue) Compare(o HandValue) int {
	return slices.Compare(v, o)
}

// Key packs the value into one integer: the category followed by five
// 2-digit rank fields, zero-padded. Keys order exactly as Compare does.
func (v HandValue) Key() uint64 {
	var key uint64
	for i := 0; i <= HandSize; i++ {
		key *= 100
		if i < len(v) {
			key += uint64(v[i])
		}
	}
	return key
}

// Classify computes the HandValue of h. The first matching category wins.
func Classify(h Hand) HandValue {
	suited := h.MaxSuitCount() == HandSize
	run := h.LongestRankRun() == HandSize
	counts := h.OccurrenceCounts()

	var t HandType
	var groups []int
	switch {
	case suited && run:
		t, groups = StraightFlush, []int{1}
	case counts[0] == 4:
		t, groups = Quads, []int{4, 1}
	case slices.Equal(counts, []int{3, 2}):
		t, groups = FullHouse, []int{3, 2}
	case suited:
		t, groups = Flush, []int{1}
	case run:
		t, groups = Straight, []int{1}
	case slices.Equal(counts, []int{3, 1, 1}):
		t, groups = Trips, []int{3, 1}
	case slices.Equal(counts, []int{2, 2, 1}):
		t, groups = TwoPair, []int{2, 1}
	case slices.Equal(counts, []int{2, 1, 1, 1}):
		t, groups = Pair, []int{2, 1}
	default:
		t, groups = HighCard, []int{1}
	}

	value := HandValue{int(t)}
	for _, n := range groups {
		value = append(value, h.RanksWithOccurrence(n)...)
	}
	return value
}

// Value is shorthand for Classify(h).
func (h Hand) Value() HandValue {
	return Classify(h)
}

// ErrNoHands is returned when winners are requested from an empty set.
var ErrNoHands = errors.New("no hands to compare")

// Compare returns -1, 0 or +1 as a is worse than, equal to or better than b.
func Compare(a, b Hand) int {
	return a.Value().Compare(b.Value())
}

// Winners returns every hand sharing the best value, keeping input order.
// Ties are not broken: suits and seating never matter.
func Winners(hands ...Hand) ([]Hand, error) {
	if len(hands) == 0 {
		return nil, ErrNoHands
	}

	values := make([]HandValue, len(hands))
	best := 0
	for i, h := range hands {
		values[i] = h.Value()
		if values[i].Compare(values[best]) > 0 {
			best = i
		}
	}

	winners := []Hand{}
	for i, h := range hands {
		if values[i].Compare(values[best]) == 0 {
			winners = append(winners, h)
		}
	}
	return winners, nil
}
