package emotions

import (
	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/entities"
)

// Totem keys placed by hooks in this catalog.
const (
	TotemDeflectOneDamage = "deflect_one_damage"
	TotemCodependence     = "codependence_active"
	TotemHypervigilance   = "hypervigilance"
	TotemSetAsideLimit    = "set_aside_limit"
	TotemSmoldering       = "smoldering"
	TotemIntrusiveReroll  = "intrusive_reroll"
	TotemWaxyIndices      = "waxy_indices"
	TotemPlaceboTokens    = "placebo_tokens"
	TotemSuperegoShield   = "superego_shield"
)

// Foreboding grants a fumble-shield when triggered.
type Foreboding struct{ Base }

// OnTrigger grants one fumble-shield token.
func (e *Foreboding) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenFumbleShield, 1)
	return nil
}

// Catalepsy marks an opponent live die waxy for the round.
type Catalepsy struct{ Base }

// OnTrigger freezes the opponent's highest live value by recording its
// index; waxy values are skipped by reroll effects.
func (e *Catalepsy) OnTrigger(ctx *Context) error {
	if ctx.Pool == nil {
		return nil
	}
	best, bestValue := -1, 0
	for i := 0; i < ctx.Pool.Len(); i++ {
		if v := ctx.Pool.Entry(i).Value; v > bestValue {
			best, bestValue = i, v
		}
	}
	if best >= 0 {
		markWaxy(ctx.Opponent, best)
	}
	return nil
}

// Tantrum damages both players when triggered.
type Tantrum struct{ Base }

// OnTrigger deals 1 damage to each side.
func (e *Tantrum) OnTrigger(ctx *Context) error {
	ctx.Self.TakeDamage(1)
	ctx.Opponent.TakeDamage(1)
	return nil
}

// PersecutoryDelusions trades self regret for double opponent regret.
type PersecutoryDelusions struct{ Base }

// OnTrigger takes 1 regret and gives the opponent 2.
func (e *PersecutoryDelusions) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenRegret, 1)
	ctx.Opponent.AddToken(entities.TokenRegret, 2)
	return nil
}

// Absolution converts neurosis into forgiveness.
type Absolution struct{ Base }

// OnTrigger removes 1 neurosis from self for 1 forgiveness, or from
// the opponent for 2.
func (e *Absolution) OnTrigger(ctx *Context) error {
	if ctx.Self.RemoveTokens(entities.TokenNeurosis, 1) > 0 {
		ctx.Self.AddToken(entities.TokenForgiveness, 1)
	} else if ctx.Opponent.RemoveTokens(entities.TokenNeurosis, 1) > 0 {
		ctx.Self.AddToken(entities.TokenForgiveness, 2)
	}
	return nil
}

// CognitiveDissonance may flip one live die to its opposite face after
// a roll.
type CognitiveDissonance struct{ Base }

// OnAfterRoll evaluates flipping each live value to its complement and
// keeps the single flip that most improves the best combination.
func (e *CognitiveDissonance) OnAfterRoll(ctx *Context) error {
	if ctx.Pool == nil {
		return nil
	}

	score := func(values []int) (int, int, int) {
		best := engine.FindBestInsult(values)
		if best == nil {
			return 0, 0, 0
		}
		return best.Size() + best.EchoDice, best.Size(), best.Damage
	}

	base := ctx.Pool.Values()
	bestTotal, bestSize, bestSum := score(base)
	bestIdx, bestFlip := -1, 0

	for i, v := range base {
		if v < 1 || v > 6 {
			continue
		}
		flipped := 7 - v
		if flipped == v {
			continue
		}
		candidate := make([]int, len(base))
		copy(candidate, base)
		candidate[i] = flipped
		total, size, sum := score(candidate)
		if total > bestTotal ||
			(total == bestTotal && size > bestSize) ||
			(total == bestTotal && size == bestSize && sum > bestSum) {
			bestTotal, bestSize, bestSum = total, size, sum
			bestIdx, bestFlip = i, flipped
		}
	}

	if bestIdx >= 0 {
		ctx.Pool.SetValue(bestIdx, bestFlip)
	}
	return nil
}

// Outburst accumulates counters and bursts at three.
type Outburst struct {
	Base
	counters int
}

// OnTrigger places a counter; at three, deals 3 to the opponent and
// resets.
func (e *Outburst) OnTrigger(ctx *Context) error {
	e.counters++
	if e.counters >= 3 {
		e.counters = 0
		ctx.Opponent.TakeDamage(3)
	}
	return nil
}

// Chivalry ends banking early in exchange for a small reward.
type Chivalry struct{ Base }

// OnTrigger forces an immediate commit, grants 1 rehash, and heals 1.
func (e *Chivalry) OnTrigger(ctx *Context) error {
	ctx.Self.ForceCommit = true
	ctx.Self.AddToken(entities.TokenRehash, 1)
	ctx.Self.Heal(1)
	return nil
}

// MarxistAccelerationism levels the health gap.
type MarxistAccelerationism struct{ Base }

// OnTrigger makes the highest-health side lose 2 and the lowest heal 2,
// with all ties included on both ends.
func (e *MarxistAccelerationism) OnTrigger(ctx *Context) error {
	selfHealth, oppHealth := ctx.Self.Health, ctx.Opponent.Health
	hi, lo := selfHealth, oppHealth
	if oppHealth > hi {
		hi = oppHealth
	}
	if selfHealth < lo {
		lo = selfHealth
	}
	if selfHealth == hi {
		ctx.Self.TakeDamage(2)
	}
	if oppHealth == hi {
		ctx.Opponent.TakeDamage(2)
	}
	if selfHealth == lo {
		ctx.Self.Heal(2)
	}
	if oppHealth == lo {
		ctx.Opponent.Heal(2)
	}
	return nil
}

// MasochisticRapture hurts now and pays out at six counters.
type MasochisticRapture struct {
	Base
	counters int
}

// OnTrigger deals 2 self-damage; at six counters, increments the win
// counter and resets.
func (e *MasochisticRapture) OnTrigger(ctx *Context) error {
	ctx.Self.TakeDamage(2)
	e.counters++
	if e.counters >= 6 {
		e.counters = 0
		ctx.Self.WinCounter++
	}
	return nil
}

// Schadenfreude feeds on opponent failure.
type Schadenfreude struct{ Base }

// OnTrigger gains 1 neurosis.
func (e *Schadenfreude) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenNeurosis, 1)
	return nil
}

// OnFumble gains 1 eureka when the opponent fumbled.
func (e *Schadenfreude) OnFumble(ctx *Context) error {
	if ctx.Flag("opponent_fumbled") {
		ctx.Self.AddToken(entities.TokenEureka, 1)
	}
	return nil
}

// OppositionalDefiance deflects single points of damage.
type OppositionalDefiance struct{ Base }

// OnTrigger gains 1 neurosis and places the deflection totem.
func (e *OppositionalDefiance) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenNeurosis, 1)
	ctx.Self.SetTotem(TotemDeflectOneDamage, true)
	return nil
}

// Codependence links fates with the opponent.
type Codependence struct{ Base }

// OnTrigger gains 1 neurosis and, if absent, places a totem linked to
// the opponent.
func (e *Codependence) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenNeurosis, 1)
	if _, ok := ctx.Self.Totem(TotemCodependence); !ok {
		ctx.Self.SetTotem(TotemCodependence, ctx.Opponent.ID)
	}
	return nil
}

// Hypervigilance trades damage for regret while its totem is active.
type Hypervigilance struct{ Base }

// OnTrigger gains 2 neurosis and places the totem.
func (e *Hypervigilance) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenNeurosis, 2)
	ctx.Self.SetTotem(TotemHypervigilance, true)
	return nil
}

// UndueCertainty sets dice aside at a regret cost.
type UndueCertainty struct{ Base }

// OnTrigger gains 2 regret and records the set-aside allowance.
func (e *UndueCertainty) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenRegret, 2)
	ctx.Self.SetTotem(TotemSetAsideLimit, 2)
	return nil
}

// SmolderingResentment stores up extra damage for later.
type SmolderingResentment struct{ Base }

// OnTrigger places the smoldering totem.
func (e *SmolderingResentment) OnTrigger(ctx *Context) error {
	ctx.Self.SetTotem(TotemSmoldering, true)
	return nil
}

// OnDebateEnd punishes a totem still unspent: 2 damage and 1 regret.
func (e *SmolderingResentment) OnDebateEnd(ctx *Context) error {
	if _, ok := ctx.Self.Totem(TotemSmoldering); ok {
		ctx.Self.RemoveTotem(TotemSmoldering)
		ctx.Self.TakeDamage(2)
		ctx.Self.AddToken(entities.TokenRegret, 1)
	}
	return nil
}

// PathologicalEnvy steals eureka or stews in neurosis.
type PathologicalEnvy struct{ Base }

// OnTrigger steals 1 eureka if the opponent holds more, else gains 1
// neurosis.
func (e *PathologicalEnvy) OnTrigger(ctx *Context) error {
	oppEureka := ctx.Opponent.TokenCount(entities.TokenEureka)
	if oppEureka > ctx.Self.TokenCount(entities.TokenEureka) && oppEureka > 0 {
		ctx.Opponent.RemoveTokens(entities.TokenEureka, 1)
		ctx.Self.AddToken(entities.TokenEureka, 1)
	} else {
		ctx.Self.AddToken(entities.TokenNeurosis, 1)
	}
	return nil
}

// IntrusiveThought forces a full reroll on the next roll.
type IntrusiveThought struct{ Base }

// OnTrigger marks the next roll for a forced reroll.
func (e *IntrusiveThought) OnTrigger(ctx *Context) error {
	ctx.Self.SetTotem(TotemIntrusiveReroll, true)
	return nil
}

// OnAfterRoll rerolls every live value, gaining 1 neurosis per die
// that lands on 1, then clears the mark.
func (e *IntrusiveThought) OnAfterRoll(ctx *Context) error {
	if _, ok := ctx.Self.Totem(TotemIntrusiveReroll); !ok {
		return nil
	}
	if ctx.Pool == nil || ctx.Roller == nil {
		return nil
	}
	for i := 0; i < ctx.Pool.Len(); i++ {
		v := ctx.Pool.Entry(i).Value
		if v < 1 || v > 6 {
			continue
		}
		rolled, err := ctx.Roller.Roll(6)
		if err != nil {
			return err
		}
		ctx.Pool.SetValue(i, rolled)
		if rolled == 1 {
			ctx.Self.AddToken(entities.TokenNeurosis, 1)
		}
	}
	ctx.Self.RemoveTotem(TotemIntrusiveReroll)
	return nil
}

// Habituation spends eureka to fix a die face.
type Habituation struct{ Base }

// OnTrigger spends 1 eureka to set the highest live value to 6 and
// mark it waxy, or gains 1 rehash when none is held.
func (e *Habituation) OnTrigger(ctx *Context) error {
	if ctx.Self.RemoveTokens(entities.TokenEureka, 1) == 0 {
		ctx.Self.AddToken(entities.TokenRehash, 1)
		return nil
	}
	if ctx.Pool == nil {
		return nil
	}
	best, bestValue := -1, 0
	for i := 0; i < ctx.Pool.Len(); i++ {
		if v := ctx.Pool.Entry(i).Value; v > bestValue {
			best, bestValue = i, v
		}
	}
	if best >= 0 {
		ctx.Pool.SetValue(best, 6)
		markWaxy(ctx.Self, best)
	}
	return nil
}

// Overstimulated converts rehash into token removal.
type Overstimulated struct{ Base }

// OnTrigger removes 1 rehash to remove 1 token of another type,
// preferring neurosis over regret.
func (e *Overstimulated) OnTrigger(ctx *Context) error {
	if ctx.Self.RemoveTokens(entities.TokenRehash, 1) == 0 {
		return nil
	}
	if ctx.Self.RemoveTokens(entities.TokenNeurosis, 1) == 0 {
		ctx.Self.RemoveTokens(entities.TokenRegret, 1)
	}
	return nil
}

// Projection pushes a token onto the opponent.
type Projection struct{ Base }

// OnTrigger transfers one token, preferring neurosis, then regret,
// then forgiveness.
func (e *Projection) OnTrigger(ctx *Context) error {
	for _, token := range []entities.Token{
		entities.TokenNeurosis,
		entities.TokenRegret,
		entities.TokenForgiveness,
	} {
		if ctx.Self.RemoveTokens(token, 1) > 0 {
			ctx.Opponent.AddToken(token, 1)
			return nil
		}
	}
	return nil
}

// PlaceboEffect parks neurosis until the debate ends.
type PlaceboEffect struct{ Base }

// OnTrigger moves all neurosis into the placebo totem.
func (e *PlaceboEffect) OnTrigger(ctx *Context) error {
	n := ctx.Self.ClearTokens(entities.TokenNeurosis)
	held, _ := ctx.Self.Totem(TotemPlaceboTokens)
	current, _ := held.(int)
	ctx.Self.SetTotem(TotemPlaceboTokens, current+n)
	return nil
}

// OnDebateEnd converts the parked tokens back to neurosis.
func (e *PlaceboEffect) OnDebateEnd(ctx *Context) error {
	held, ok := ctx.Self.Totem(TotemPlaceboTokens)
	if !ok {
		return nil
	}
	ctx.Self.RemoveTotem(TotemPlaceboTokens)
	if n, _ := held.(int); n > 0 {
		ctx.Self.AddToken(entities.TokenNeurosis, n)
	}
	return nil
}

// SuperegoShield grants forgiveness behind a restriction totem.
type SuperegoShield struct{ Base }

// OnTrigger gains 1 forgiveness and places the shield totem.
func (e *SuperegoShield) OnTrigger(ctx *Context) error {
	ctx.Self.AddToken(entities.TokenForgiveness, 1)
	ctx.Self.SetTotem(TotemSuperegoShield, true)
	return nil
}

// markWaxy records a frozen pool index on the player's waxy totem.
func markWaxy(player *entities.Player, index int) {
	held, _ := player.Totem(TotemWaxyIndices)
	indices, _ := held.(map[int]bool)
	if indices == nil {
		indices = make(map[int]bool)
	}
	indices[index] = true
	player.SetTotem(TotemWaxyIndices, indices)
}
