package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/entities"
)

func TestResolveDamage(t *testing.T) {
	testCases := []struct {
		name      string
		attackers []int
		defenders []int
		want      int
	}{
		{
			name:      "every attack blocked",
			attackers: []int{1, 3, 5},
			defenders: []int{2, 4, 6},
			want:      0,
		},
		{
			name:      "skipped defenders never rewind",
			attackers: []int{1, 3, 5},
			defenders: []int{2, 2, 6},
			// 2 blocks 1, the second 2 is skipped for good, 6 blocks
			// 3, nothing is left for 5.
			want: 5,
		},
		{
			name:      "too-small defender is spent without blocking",
			attackers: []int{4, 4},
			defenders: []int{1},
			want:      8,
		},
		{
			name:      "no attackers",
			attackers: nil,
			defenders: []int{3, 4},
			want:      0,
		},
		{
			name:      "no defenders",
			attackers: []int{2, 5, 6},
			defenders: nil,
			want:      13,
		},
		{
			name:      "equal values block",
			attackers: []int{4},
			defenders: []int{4},
			want:      0,
		},
		{
			name:      "input order does not matter",
			attackers: []int{5, 1, 3},
			defenders: []int{6, 2, 2},
			want:      5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.ResolveDamage(tc.attackers, tc.defenders)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveDamage_Monotonic(t *testing.T) {
	attackers := []int{2, 3, 5, 6}
	defenders := []int{1, 4, 4}

	base := engine.ResolveDamage(attackers, defenders)

	for v := 1; v <= 6; v++ {
		moreDefense := engine.ResolveDamage(attackers, append([]int{v}, defenders...))
		assert.LessOrEqual(t, moreDefense, base, "adding defender %d increased damage", v)

		moreAttack := engine.ResolveDamage(append([]int{v}, attackers...), defenders)
		assert.GreaterOrEqual(t, moreAttack, base, "adding attacker %d decreased damage", v)
	}
}

func TestFlattenInsults(t *testing.T) {
	insults := []*entities.Insult{
		entities.NewInsult(entities.CategorySolid, []int{2, 2}, 0),
		entities.NewInsult(entities.CategorySurprising, []int{4, 4, 4}, 1),
	}

	assert.Equal(t, []int{2, 2, 4, 4, 4}, engine.FlattenInsults(insults))
	assert.Nil(t, engine.FlattenInsults(nil))
}
