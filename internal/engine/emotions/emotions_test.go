package emotions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/debate-api/internal/engine/emotions"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/testutils"
)

func newContext() *emotions.Context {
	return &emotions.Context{
		Self:     entities.NewPlayer("self", "Self", nil),
		Opponent: entities.NewPlayer("opp", "Opponent", nil),
	}
}

func TestRegistry_NamesResolve(t *testing.T) {
	for _, name := range emotions.Names() {
		hook, err := emotions.New(name)
		require.NoError(t, err, "hook %s", name)
		assert.Equal(t, name, hook.Name())
	}
}

func TestRegistry_CanonicalLookup(t *testing.T) {
	for _, alias := range []string{
		"Persecutory Delusions",
		"persecutory-delusions",
		"PERSECUTORY_DELUSIONS",
	} {
		hook, err := emotions.New(alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, "persecutory delusions", hook.Name())
	}
}

func TestCreateAll_ReportsUnknownNames(t *testing.T) {
	hooks, unknown := emotions.CreateAll([]string{"foreboding", "ennui", "tantrum"})
	assert.Len(t, hooks, 2)
	assert.Equal(t, []string{"ennui"}, unknown)
}

type panickyHook struct{ emotions.Base }

func (panickyHook) OnRoundStart(*emotions.Context) error {
	panic("hook bug")
}

func TestInvoke_RecoversPanics(t *testing.T) {
	hook := &panickyHook{Base: emotions.NewBase("panicky")}

	result := emotions.Invoke(emotions.StageRoundStart, hook, newContext())

	assert.True(t, result.Failed())
	assert.Equal(t, "panicky", result.Emotion)
	assert.Equal(t, emotions.StageRoundStart, result.Stage)

	// Other stages still run untouched.
	result = emotions.Invoke(emotions.StageBank, hook, newContext())
	assert.False(t, result.Failed())
}

func TestForeboding_GrantsFumbleShield(t *testing.T) {
	hook, err := emotions.New("foreboding")
	require.NoError(t, err)

	ctx := newContext()
	result := emotions.Invoke(emotions.StageTrigger, hook, ctx)

	require.False(t, result.Failed())
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenFumbleShield))
}

func TestTantrum_DamagesBoth(t *testing.T) {
	hook, err := emotions.New("tantrum")
	require.NoError(t, err)

	ctx := newContext()
	emotions.Invoke(emotions.StageTrigger, hook, ctx)

	assert.Equal(t, entities.MaxHealth-1, ctx.Self.Health)
	assert.Equal(t, entities.MaxHealth-1, ctx.Opponent.Health)
}

func TestAbsolution_PrefersOwnNeurosis(t *testing.T) {
	hook, err := emotions.New("absolution")
	require.NoError(t, err)

	ctx := newContext()
	ctx.Self.AddToken(entities.TokenNeurosis, 1)
	ctx.Opponent.AddToken(entities.TokenNeurosis, 1)

	emotions.Invoke(emotions.StageTrigger, hook, ctx)
	assert.Equal(t, 0, ctx.Self.TokenCount(entities.TokenNeurosis))
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenForgiveness))
	assert.Equal(t, 1, ctx.Opponent.TokenCount(entities.TokenNeurosis))

	// With none of its own, it cleanses the opponent for double.
	emotions.Invoke(emotions.StageTrigger, hook, ctx)
	assert.Equal(t, 0, ctx.Opponent.TokenCount(entities.TokenNeurosis))
	assert.Equal(t, 3, ctx.Self.TokenCount(entities.TokenForgiveness))
}

func TestOutburst_BurstsEveryThirdTrigger(t *testing.T) {
	hook, err := emotions.New("outburst")
	require.NoError(t, err)

	ctx := newContext()
	for i := 0; i < 2; i++ {
		emotions.Invoke(emotions.StageTrigger, hook, ctx)
	}
	assert.Equal(t, entities.MaxHealth, ctx.Opponent.Health)

	emotions.Invoke(emotions.StageTrigger, hook, ctx)
	assert.Equal(t, entities.MaxHealth-3, ctx.Opponent.Health)

	// Counter resets after the burst.
	emotions.Invoke(emotions.StageTrigger, hook, ctx)
	assert.Equal(t, entities.MaxHealth-3, ctx.Opponent.Health)
}

func TestCognitiveDissonance_FlipsTheMostValuableDie(t *testing.T) {
	hook, err := emotions.New("cognitive dissonance")
	require.NoError(t, err)

	ctx := newContext()
	pool := entities.NewLivePool()
	// 5,5,2: flipping the 2 to a 5 upgrades the pair to a triplet.
	pool.Append(5, nil)
	pool.Append(5, nil)
	pool.Append(2, nil)
	ctx.Pool = pool

	result := emotions.Invoke(emotions.StageAfterRoll, hook, ctx)
	require.False(t, result.Failed())

	assert.Equal(t, []int{5, 5, 5}, pool.Values())
}

func TestCognitiveDissonance_LeavesPoolWhenNoFlipHelps(t *testing.T) {
	hook, err := emotions.New("cognitive dissonance")
	require.NoError(t, err)

	ctx := newContext()
	pool := entities.NewLivePool()
	pool.Append(6, nil)
	pool.Append(6, nil)
	pool.Append(6, nil)
	ctx.Pool = pool

	emotions.Invoke(emotions.StageAfterRoll, hook, ctx)
	assert.Equal(t, []int{6, 6, 6}, pool.Values())
}

func TestIntrusiveThought_RerollsAfterTrigger(t *testing.T) {
	hook, err := emotions.New("intrusive thought")
	require.NoError(t, err)

	ctx := newContext()
	emotions.Invoke(emotions.StageTrigger, hook, ctx)

	pool := entities.NewLivePool()
	pool.Append(4, nil)
	pool.Append(6, nil)
	pool.Append(entities.BlankFace, nil)
	ctx.Pool = pool
	ctx.Roller = testutils.NewScriptedRoller(1, 3)

	result := emotions.Invoke(emotions.StageAfterRoll, hook, ctx)
	require.False(t, result.Failed())

	assert.Equal(t, []int{1, 3, entities.BlankFace}, pool.Values())
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenNeurosis), "one neurosis per rerolled 1")

	// Without a fresh trigger the next roll is untouched.
	ctx.Roller = testutils.NewScriptedRoller()
	result = emotions.Invoke(emotions.StageAfterRoll, hook, ctx)
	require.False(t, result.Failed())
	assert.Equal(t, []int{1, 3, entities.BlankFace}, pool.Values())
}

func TestProjection_TransfersNeurosisFirst(t *testing.T) {
	hook, err := emotions.New("projection")
	require.NoError(t, err)

	ctx := newContext()
	ctx.Self.AddToken(entities.TokenNeurosis, 1)
	ctx.Self.AddToken(entities.TokenRegret, 1)

	emotions.Invoke(emotions.StageTrigger, hook, ctx)

	assert.Equal(t, 0, ctx.Self.TokenCount(entities.TokenNeurosis))
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenRegret))
	assert.Equal(t, 1, ctx.Opponent.TokenCount(entities.TokenNeurosis))
}

func TestPlaceboEffect_ParksNeurosisUntilDebateEnd(t *testing.T) {
	hook, err := emotions.New("placebo effect")
	require.NoError(t, err)

	ctx := newContext()
	ctx.Self.AddToken(entities.TokenNeurosis, 3)

	emotions.Invoke(emotions.StageTrigger, hook, ctx)
	assert.Equal(t, 0, ctx.Self.TokenCount(entities.TokenNeurosis))

	emotions.Invoke(emotions.StageDebateEnd, hook, ctx)
	assert.Equal(t, 3, ctx.Self.TokenCount(entities.TokenNeurosis))
}

func TestMarxistAccelerationism_LevelsTheGap(t *testing.T) {
	hook, err := emotions.New("marxist accelerationism")
	require.NoError(t, err)

	ctx := newContext()
	ctx.Opponent.TakeDamage(6)

	emotions.Invoke(emotions.StageTrigger, hook, ctx)

	assert.Equal(t, entities.MaxHealth-2, ctx.Self.Health)
	assert.Equal(t, entities.MaxHealth-4, ctx.Opponent.Health)
}

func TestSchadenfreude_EurekaOnOpponentFumble(t *testing.T) {
	hook, err := emotions.New("schadenfreude")
	require.NoError(t, err)

	ctx := newContext()
	ctx.Data = map[string]any{"opponent_fumbled": true}
	emotions.Invoke(emotions.StageFumble, hook, ctx)
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenEureka))

	ctx.Data = map[string]any{"self_fumbled": true}
	emotions.Invoke(emotions.StageFumble, hook, ctx)
	assert.Equal(t, 1, ctx.Self.TokenCount(entities.TokenEureka))
}
