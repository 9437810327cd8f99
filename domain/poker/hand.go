package poker

import (
	"errors"
	"fmt"
	"sort"
)

// HandSize is the number of cards in every Hand.
const HandSize = 5

// ErrHandSize is returned when a Hand is built from other than HandSize cards.
var ErrHandSize = errors.New("a hand must have exactly 5 cards")

// Hand is an ordered collection of exactly five cards. Cards keep the order
// they were given in; every derived value below is computed on demand.
type Hand struct {
	cards [HandSize]Card
}

// NewHand creates a Hand from exactly five cards. Duplicate cards are not
// rejected.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w, got %d", ErrHandSize, len(cards))
	}
	var h Hand
	copy(h.cards[:], cards)
	return h, nil
}

// Cards returns a copy of the cards in construction order.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards[:]...)
}

// MaxSuitCount returns the size of the largest suit group (1-5). A value of
// 5 means the hand is flush-eligible.
func (h Hand) MaxSuitCount() int {
	var counters [Spade + 1]int
	for _, c := range h.cards {
		counters[c.suit]++
	}
	best := 0
	for _, n := range counters {
		best = max(best, n)
	}
	return best
}

// OrderedRanks returns the ranks sorted ascending, ace counted as 14.
func (h Hand) OrderedRanks() []int {
	ranks := make([]int, 0, HandSize)
	for _, c := range h.cards {
		ranks = append(ranks, int(c.rank))
	}
	sort.Ints(ranks)
	return ranks
}

// IsWheel reports whether the hand holds exactly 2, 3, 4, 5 and an ace.
func (h Hand) IsWheel() bool {
	r := h.OrderedRanks()
	return r[0] == 2 && r[1] == 3 && r[2] == 4 && r[3] == 5 && r[4] == int(Ace)
}

// LongestRankRun returns the length of the longest run of consecutive ranks.
// The wheel counts as a run of 5 since the ace plays low there.
func (h Hand) LongestRankRun() int {
	if h.IsWheel() {
		return HandSize
	}
	r := h.OrderedRanks()
	run, longest := 1, 1
	for i := 1; i < len(r); i++ {
		if r[i] == r[i-1]+1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// RankOccurrence returns the multiplicity of every rank, indexed by rank.
// Indexes 0 and 1 are always zero.
func (h Hand) RankOccurrence() [maxRank + 1]int {
	var occ [maxRank + 1]int
	for _, c := range h.cards {
		occ[c.rank]++
	}
	return occ
}

// OccurrenceCounts returns the non-zero rank multiplicities sorted
// descending, e.g. [3 2] for a full house or [2 2 1] for two pair.
func (h Hand) OccurrenceCounts() []int {
	counts := make([]int, 0, HandSize)
	for _, n := range h.RankOccurrence() {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

// RanksWithOccurrence returns the ranks appearing exactly n times, highest
// first. For n == 1 on a wheel it returns [5 4 3 2 1], reporting the ace as 1.
func (h Hand) RanksWithOccurrence(n int) []int {
	if n == 1 && h.IsWheel() {
		return []int{5, 4, 3, 2, 1}
	}
	occ := h.RankOccurrence()
	ranks := []int{}
	for r := maxRank; r >= minRank; r-- {
		if occ[r] == n {
			ranks = append(ranks, int(r))
		}
	}
	return ranks
}
