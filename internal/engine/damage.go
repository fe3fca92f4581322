package engine

import "github.com/KirkDiggler/debate-api/internal/entities"

// ResolveDamage computes the unblocked damage when the attacker's
// banked dice values clash against the defender's.
//
// Both multisets are walked in ascending order with a defender cursor
// that never rewinds. A defender blocks the current attack if its value
// is at least the attack value; smaller defenders are skipped for good,
// since they cannot block any later, larger attack either. Spending the
// smallest sufficient defender first preserves large defenders for
// large attacks, which minimizes total unblocked damage under these
// blocking rules.
//
// Multiplicative modifiers are the caller's concern and apply to the
// returned total, not per die.
func ResolveDamage(attackers, defenders []int) int {
	attack := sortedCopy(attackers)
	defend := sortedCopy(defenders)

	unblocked := 0
	j := 0
	for _, a := range attack {
		for j < len(defend) && defend[j] < a {
			j++
		}
		if j < len(defend) {
			j++ // defender consumed, attack fully blocked
			continue
		}
		unblocked += a
	}
	return unblocked
}

// FlattenInsults collects every dice value across a player's banked
// insults into one multiset for clash resolution.
func FlattenInsults(insults []*entities.Insult) []int {
	var values []int
	for _, in := range insults {
		values = append(values, in.Dice...)
	}
	return values
}
