package debate

import (
	"log/slog"

	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/engine/emotions"
	"github.com/KirkDiggler/debate-api/internal/entities"
)

// side carries one player's per-debate runtime: the resolved archetype
// and instantiated behavior hooks, plus per-round scratch state.
type side struct {
	player    *entities.Player
	archetype *archetypes.Archetype
	hooks     []emotions.Emotion

	// Per-round scratch, reset at the top of each round.
	pool    *entities.LivePool
	effects *archetypes.RollEffects
	queued  engine.QueuedEffects
	fumbled bool
	result  *entities.RoundResult
}

// debateState binds both sides for the duration of a debate.
type debateState struct {
	orch *orchestrator
	a    *side
	b    *side
}

// invokeHooks runs one side's hooks for a stage, isolating failures.
// A failing or panicking hook is logged and skipped; it never affects
// the round outcome.
func (s *debateState) invokeHooks(stage emotions.Stage, self, opponent *side, round int, data map[string]any) {
	for _, hook := range self.hooks {
		ctx := &emotions.Context{
			Self:     self.player,
			Opponent: opponent.player,
			Round:    round,
			Pool:     self.pool,
			Roller:   s.orch.roller,
			Data:     data,
		}
		if res := emotions.Invoke(stage, hook, ctx); res.Failed() {
			slog.Warn("Behavior hook failed",
				"hook", res.Emotion,
				"stage", string(res.Stage),
				"player_id", self.player.ID,
				"error", res.Err,
			)
		}
	}
}

// invokeBoth runs a stage for both sides with no extra payload.
func (s *debateState) invokeBoth(stage emotions.Stage, round int, data map[string]any) {
	s.invokeHooks(stage, s.a, s.b, round, data)
	s.invokeHooks(stage, s.b, s.a, round, data)
}

// resolveRound runs one full round: roll, hooks, deferred steals,
// fumble checks, banking, clash, and the token cascade.
func (o *orchestrator) resolveRound(state *debateState, round int) *entities.RoundPair {
	a, b := state.a, state.b
	a.resetRound()
	b.resetRound()

	state.invokeBoth(emotions.StageRoundStart, round, nil)

	o.rollSide(a)
	o.rollSide(b)

	state.invokeHooks(emotions.StageAfterRoll, a, b, round, nil)
	state.invokeHooks(emotions.StageAfterRoll, b, a, round, nil)

	resolveDeferredSteal(a, b)
	resolveDeferredSteal(b, a)

	// Paired pilfer sixes this round set up a steal for the next one.
	if a.effects.PilferSixes >= 2 {
		a.player.PendingSteal = true
	}
	if b.effects.PilferSixes >= 2 {
		b.player.PendingSteal = true
	}

	a.fumbled = checkForcedFumble(a)
	b.fumbled = checkForcedFumble(b)

	o.bankOrFumble(state, a, b, round)
	o.bankOrFumble(state, b, a, round)

	resolveClash(a, b)

	// Token effects only cascade on a clean round.
	if !a.fumbled && !b.fumbled {
		runTokenCascade(a, b)
	}

	state.invokeBoth(emotions.StageClashEnd, round, nil)

	return &entities.RoundPair{A: a.result, B: b.result}
}

func (s *side) resetRound() {
	s.pool = nil
	s.effects = nil
	s.queued = engine.QueuedEffects{}
	s.fumbled = false
	s.result = nil
}

// rollSide rolls the player's dice, applies immediate on-roll effects,
// and injects any echo values staged last round.
func (o *orchestrator) rollSide(s *side) {
	pool, err := engine.RollPool(o.roller, s.player)
	if err != nil {
		// The default roller cannot fail on a d6; a scripted roller
		// running dry leaves the remaining dice blank.
		slog.Warn("Roll failed, treating remaining dice as blank",
			"player_id", s.player.ID,
			"error", err,
		)
		if pool == nil {
			pool = entities.NewLivePool()
		}
	}

	effects := s.archetype.CollectRollEffects(s.player)
	if effects.Heal > 0 {
		s.player.Heal(effects.Heal)
	}
	if effects.Damage > 0 {
		s.player.TakeDamage(effects.Damage)
	}
	if effects.ForgivenessTokens > 0 {
		s.player.AddToken(entities.TokenForgiveness, effects.ForgivenessTokens)
	}

	for _, echo := range s.player.DrainEchoes() {
		pool.Append(echo, nil)
	}

	s.pool = pool
	s.effects = effects
}

// resolveDeferredSteal moves the victim's highest live value into the
// thief's pool when a steal was set up last round.
func resolveDeferredSteal(thief, victim *side) {
	if !thief.player.PendingSteal {
		return
	}
	thief.player.PendingSteal = false

	entry, ok := victim.pool.RemoveHighest()
	if !ok {
		return
	}
	thief.pool.Append(entry.Value, entry.Die)
}

// checkForcedFumble applies the forced-fumble condition, consuming
// bust protection when it absorbs one.
func checkForcedFumble(s *side) bool {
	if !s.effects.ForceFumble {
		return false
	}
	if s.player.BustProtection {
		s.player.BustProtection = false
		return false
	}
	return true
}

// bankOrFumble banks the side's pool, or applies the fumble penalty
// and notifies both sides' hooks.
func (o *orchestrator) bankOrFumble(state *debateState, self, opponent *side, round int) {
	if self.fumbled {
		state.invokeHooks(emotions.StageFumble, self, opponent, round,
			map[string]any{"self_fumbled": true})
		state.invokeHooks(emotions.StageFumble, opponent, self, round,
			map[string]any{"opponent_fumbled": true})

		// Held regret converts 1:1 into damage, then clears.
		if regret := self.player.ClearTokens(entities.TokenRegret); regret > 0 {
			self.player.TakeDamage(regret)
		}

		self.result = &entities.RoundResult{
			PlayerID:   self.player.ID,
			PlayerName: self.player.Name,
			Fumbled:    true,
		}
		return
	}

	state.invokeHooks(emotions.StageBank, self, opponent, round, nil)

	out, err := o.banker.Bank(&engine.BankInput{
		Player:        self.player,
		Pool:          self.pool,
		ResolveHumors: self.archetype.ResolvesHumors,
	})
	if err != nil {
		// Bank only fails on a dry scripted roller; score the round as
		// banked-nothing rather than abort the debate.
		slog.Warn("Banking failed",
			"player_id", self.player.ID,
			"error", err,
		)
		self.result = &entities.RoundResult{
			PlayerID:   self.player.ID,
			PlayerName: self.player.Name,
		}
		return
	}

	self.result = out.Result
	self.queued = out.Queued

	state.invokeHooks(emotions.StageCommit, self, opponent, round, nil)
}

// resolveClash applies blocked damage in both directions. A fumbling
// player banks nothing, so only the clean side attacks; two fumbles
// mean no clash at all.
func resolveClash(a, b *side) {
	if a.fumbled && b.fumbled {
		return
	}

	attackA := engine.FlattenInsults(a.result.Insults)
	attackB := engine.FlattenInsults(b.result.Insults)

	damageAtoB := engine.ResolveDamage(attackA, attackB)
	damageBtoA := engine.ResolveDamage(attackB, attackA)

	// Penance doubling applies to both directions, once per side.
	if a.player.DoubleDamage {
		damageAtoB *= 2
		damageBtoA *= 2
	}
	if b.player.DoubleDamage {
		damageAtoB *= 2
		damageBtoA *= 2
	}

	b.player.TakeDamage(damageAtoB)
	a.player.TakeDamage(damageBtoA)

	a.result.DamageToOpponent = damageAtoB
	a.result.DamageFromOpponent = damageBtoA
	b.result.DamageToOpponent = damageBtoA
	b.result.DamageFromOpponent = damageAtoB
}

// runTokenCascade applies the round's queued token effects in a fixed
// order: direct bonus damage, neurosis grants, the neurosis tick,
// regret grants and transfers, then the forgiveness tick.
func runTokenCascade(a, b *side) {
	// Direct bonus damage.
	if a.effects.OppDamage > 0 {
		b.player.TakeDamage(a.effects.OppDamage)
	}
	if b.effects.OppDamage > 0 {
		a.player.TakeDamage(b.effects.OppDamage)
	}

	// Neurosis grants from on-roll effects and bank-time humors.
	b.player.AddToken(entities.TokenNeurosis, a.effects.OppNeurosis+a.queued.OppNeurosis)
	a.player.AddToken(entities.TokenNeurosis, b.effects.OppNeurosis+b.queued.OppNeurosis)

	// Neurosis tick: 1 damage, 1 token consumed.
	for _, s := range []*side{a, b} {
		if s.player.RemoveTokens(entities.TokenNeurosis, 1) > 0 {
			s.player.TakeDamage(1)
		}
	}

	// Self-inflicted regret.
	a.player.AddToken(entities.TokenRegret, a.effects.SelfRegret)
	b.player.AddToken(entities.TokenRegret, b.effects.SelfRegret)

	// Ridicule: push a held regret onto the opponent, or gain one.
	transferRidicule(a, b)
	transferRidicule(b, a)

	// Choleric humor regret, queued at bank time.
	b.player.AddToken(entities.TokenRegret, a.queued.OppRegret)
	a.player.AddToken(entities.TokenRegret, b.queued.OppRegret)

	// Forgiveness tick: 1 heal, 1 token consumed.
	for _, s := range []*side{a, b} {
		if s.player.RemoveTokens(entities.TokenForgiveness, 1) > 0 {
			s.player.Heal(1)
		}
	}
}

func transferRidicule(self, opponent *side) {
	if self.effects.RidiculeSixes == 0 {
		return
	}
	if self.player.RemoveTokens(entities.TokenRegret, 1) > 0 {
		opponent.player.AddToken(entities.TokenRegret, 1)
	} else {
		self.player.AddToken(entities.TokenRegret, 1)
	}
}
