package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/testutils"
)

func TestRollDie_MapsFaceIndexToValue(t *testing.T) {
	d := entities.NewDie("d1", "Bliss", entities.BehaviorBliss, [6]int{2, 3, 4, 5, 6, 6})
	roller := testutils.NewScriptedRoller(3)

	value, err := engine.RollDie(roller, d)
	require.NoError(t, err)

	assert.Equal(t, 4, value)
	assert.Equal(t, 4, d.LastValue)
}

func TestRollPool_BlankDiceContributeSentinels(t *testing.T) {
	blank := [6]int{entities.BlankFace, entities.BlankFace, entities.BlankFace,
		entities.BlankFace, entities.BlankFace, entities.BlankFace}
	dice := []*entities.Die{
		entities.NewDie("d1", "Normal", entities.BehaviorNone, [6]int{1, 2, 3, 4, 5, 6}),
		entities.NewDie("d2", "Abyssal", entities.BehaviorAbyssal, blank),
		entities.NewDie("d3", "Normal", entities.BehaviorNone, [6]int{1, 2, 3, 4, 5, 6}),
	}
	player := entities.NewPlayer("p1", "Tester", dice)
	roller := testutils.NewScriptedRoller(6, 1)

	pool, err := engine.RollPool(roller, player)
	require.NoError(t, err)

	// One entry per die, blanks included, so the pool traces sources.
	require.Equal(t, 3, pool.Len())
	assert.Equal(t, []int{6, entities.BlankFace, 1}, pool.Values())
	assert.Equal(t, []int{6, 1}, pool.LiveValues())
}

func TestRollDie_SpecialFacesCanRollBlank(t *testing.T) {
	// Spite faces: two blanks, then 1,1,6,6.
	spite := entities.NewDie("sp", "Spite", entities.BehaviorSpite,
		[6]int{entities.BlankFace, entities.BlankFace, 1, 1, 6, 6})
	roller := testutils.NewScriptedRoller(1)

	value, err := engine.RollDie(roller, spite)
	require.NoError(t, err)

	assert.Equal(t, entities.BlankFace, value)
}
