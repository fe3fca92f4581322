package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller implements dice.Roller, returning a fixed sequence of
// results. Rolling past the end of the script fails, which keeps tests
// honest about how many rolls they expect.
type ScriptedRoller struct {
	rolls []int
	next  int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns the given results in
// order.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted result. The die size is ignored.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if r.next >= len(r.rolls) {
		return 0, fmt.Errorf("scripted roller exhausted after %d rolls", len(r.rolls))
	}
	v := r.rolls[r.next]
	r.next++
	return v, nil
}

// RollN returns the next count scripted results.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Remaining reports how many scripted results are left.
func (r *ScriptedRoller) Remaining() int {
	return len(r.rolls) - r.next
}
