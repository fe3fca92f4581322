// Package engine implements the debate rules: combination scoring,
// banking, and damage resolution. Everything here is deterministic
// given its inputs; randomness comes in only through the dice.Roller
// the banker is configured with.
package engine

import (
	"sort"

	"github.com/KirkDiggler/debate-api/internal/entities"
)

// scoreKey orders candidate insults. All three components are
// maximized, in priority order: total dice including echo bonus, real
// dice alone, then face sum.
type scoreKey struct {
	total int
	size  int
	sum   int
}

func keyFor(in *entities.Insult) scoreKey {
	return scoreKey{
		total: in.Size() + in.EchoDice,
		size:  in.Size(),
		sum:   in.Damage,
	}
}

func (k scoreKey) beats(other scoreKey) bool {
	if k.total != other.total {
		return k.total > other.total
	}
	if k.size != other.size {
		return k.size > other.size
	}
	return k.sum > other.sum
}

// FindBestInsult returns the single best-scoring combination for the
// given rolled values, or nil when no usable value exists. Blank
// sentinels and non-positive values are ignored.
//
// The candidate generation order is fixed: when two candidates tie on
// the full score key, the one generated first wins. Reordering the
// steps below changes observable outcomes.
func FindBestInsult(values []int) *entities.Insult {
	live := make([]int, 0, len(values))
	var counts [7]int
	for _, v := range values {
		if v >= 1 && v <= 6 {
			live = append(live, v)
			counts[v]++
		}
	}
	if len(live) == 0 {
		return nil
	}

	var best *entities.Insult
	var bestKey scoreKey
	consider := func(candidate *entities.Insult) {
		key := keyFor(candidate)
		if best == nil || key.beats(bestKey) {
			best = candidate
			bestKey = key
		}
	}

	ofAKind := func(count int, category string, echo int) {
		for v := 1; v <= 6; v++ {
			if counts[v] >= count {
				dice := make([]int, count)
				for i := range dice {
					dice[i] = v
				}
				consider(entities.NewInsult(category, dice, echo))
			}
		}
	}

	distinct := make([]int, 0, 6)
	for v := 1; v <= 6; v++ {
		if counts[v] > 0 {
			distinct = append(distinct, v)
		}
	}
	straights := func(length int, category string, echo int) {
		if len(live) < length {
			return
		}
		for i := 0; i+length <= len(distinct); i++ {
			run := true
			for j := 1; j < length; j++ {
				if distinct[i+j] != distinct[i]+j {
					run = false
					break
				}
			}
			if !run {
				continue
			}
			dice := make([]int, length)
			for j := range dice {
				dice[j] = distinct[i] + j
			}
			consider(entities.NewInsult(category, dice, echo))
		}
	}

	// 1. six of a kind
	ofAKind(6, entities.CategoryAstonishing, 4)
	// 2. six-term straight
	straights(6, entities.CategorySurprising, 1)
	// 3. five of a kind
	ofAKind(5, entities.CategoryDistressing, 3)
	// 4. five-term straight
	straights(5, entities.CategorySolid, 0)

	// 5. two distinct triplets, highest two values only
	trips := make([]int, 0, 6)
	for v := 6; v >= 1; v-- {
		if counts[v] >= 3 {
			trips = append(trips, v)
		}
	}
	if len(trips) >= 2 {
		dice := []int{trips[0], trips[0], trips[0], trips[1], trips[1], trips[1]}
		consider(entities.NewInsult(entities.CategorySurprising, dice, 1))
	}

	// 6. four of a kind plus a distinct pair, every combination
	for qv := 1; qv <= 6; qv++ {
		if counts[qv] < 4 {
			continue
		}
		for pv := 1; pv <= 6; pv++ {
			if pv == qv || counts[pv] < 2 {
				continue
			}
			dice := []int{qv, qv, qv, qv, pv, pv}
			consider(entities.NewInsult(entities.CategorySurprising, dice, 1))
		}
	}

	// 7. four of a kind alone
	ofAKind(4, entities.CategoryShocking, 2)
	// 8. four-term then three-term straights
	straights(4, entities.CategorySolid, 0)
	straights(3, entities.CategorySolid, 0)
	// 9. triplets
	ofAKind(3, entities.CategorySurprising, 1)
	// 10. pairs
	ofAKind(2, entities.CategorySolid, 0)

	// 11. single highest value, the guaranteed fallback
	high := live[0]
	for _, v := range live[1:] {
		if v > high {
			high = v
		}
	}
	consider(entities.NewInsult(entities.CategorySolid, []int{high}, 0))

	return best
}

// sortedCopy returns an ascending copy of values.
func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}
