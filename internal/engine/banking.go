package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
)

// CommitPolicy decides when to stop banking. It receives the number of
// insults banked so far and the number of pool entries remaining, and
// returns true to commit. The default stands in for player choice;
// richer policies can be injected without touching banking mechanics.
type CommitPolicy func(banked, remaining int) bool

// DefaultCommitPolicy commits after two insults are banked or when
// fewer than four pool entries remain.
func DefaultCommitPolicy(banked, remaining int) bool {
	return banked >= 2 || remaining < 4
}

// BankerConfig holds the dependencies for the banking engine.
type BankerConfig struct {
	Roller dice.Roller

	// CommitPolicy defaults to DefaultCommitPolicy when nil.
	CommitPolicy CommitPolicy
}

// Validate ensures all required dependencies are provided.
func (c *BankerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Banker drains a live pool into committed insults, applying bank-time
// die modifiers and the archetype's post-bank humor resolution.
type Banker struct {
	roller dice.Roller
	commit CommitPolicy
}

// NewBanker creates a banking engine with the provided dependencies.
func NewBanker(cfg *BankerConfig) (*Banker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	commit := cfg.CommitPolicy
	if commit == nil {
		commit = DefaultCommitPolicy
	}

	return &Banker{
		roller: cfg.Roller,
		commit: commit,
	}, nil
}

// BankInput carries one player's banking pass for a round.
type BankInput struct {
	Player *entities.Player
	Pool   *entities.LivePool

	// ResolveHumors enables the archetype-level post-bank aggregate.
	ResolveHumors bool
}

// QueuedEffects are opponent-facing effects produced during banking.
// They are applied later in the round's token cascade, not here.
type QueuedEffects struct {
	OppNeurosis int
	OppRegret   int
}

// BankOutput is the result of one banking pass.
type BankOutput struct {
	Result *entities.RoundResult
	Queued QueuedEffects
}

// Bank consumes the live pool, producing committed insults and
// mutating the player through bank-time modifiers. An empty insult
// list is valid only when the very first evaluation finds nothing; the
// caller must already have ruled out a fumble.
func (b *Banker) Bank(input *BankInput) (*BankOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Pool == nil {
		return nil, errors.InvalidArgument("pool is required")
	}

	player := input.Player
	pool := input.Pool

	result := &entities.RoundResult{
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		InitialValues: pool.Values(),
	}
	result.DeriveShape()

	var insults []*entities.Insult
	var sources [][]*entities.Die
	usedAbyssal := false

	for {
		best := FindBestInsult(pool.Values())
		if best == nil {
			break
		}

		// Consume the winning values: always the first pool entry with
		// a matching value, recording its source die.
		used := make([]*entities.Die, 0, best.Size())
		for _, value := range best.Dice {
			entry, ok := pool.RemoveFirst(value)
			if !ok {
				continue
			}
			used = append(used, entry.Die)
		}

		if err := b.applyBankModifiers(player, best, used, &usedAbyssal, result); err != nil {
			return nil, err
		}

		insults = append(insults, best)
		sources = append(sources, used)

		if player.ForceCommit {
			player.ForceCommit = false
			break
		}
		if b.commit(len(insults), pool.Len()) {
			break
		}
	}

	queued := QueuedEffects{}
	if input.ResolveHumors && len(insults) > 0 {
		if err := b.resolveHumors(player, insults, sources, &queued); err != nil {
			return nil, err
		}
	}

	total := 0
	for _, in := range insults {
		total += in.Damage
	}

	result.Insults = insults
	result.TotalDamage = total
	result.InsultsBanked = len(insults)

	return &BankOutput{Result: result, Queued: queued}, nil
}

// applyBankModifiers runs the die-keyed bank-time effects for one
// freshly banked insult, in fixed order.
func (b *Banker) applyBankModifiers(player *entities.Player, insult *entities.Insult, used []*entities.Die, usedAbyssal *bool, result *entities.RoundResult) error {
	// Bust protection on a banked maximum face.
	for _, d := range used {
		if d != nil && d.Behavior == entities.BehaviorCatastrophize && d.LastValue == 6 {
			player.BustProtection = true
		}
	}

	// High-minded raise: duplicate the insult's last value.
	for _, d := range used {
		if d != nil && d.Behavior == entities.BehaviorHighMinded && d.LastValue == 6 {
			if insult.Size() >= 1 {
				insult.AddDie(insult.Dice[insult.Size()-1])
			}
			break
		}
	}

	// Grounded pair echo: a matched pair gains a literal 1.
	if insult.IsPair() {
		for _, d := range used {
			if d != nil && d.Behavior == entities.BehaviorGrounded {
				insult.AddDie(1)
				result.EchoesSummoned++
				break
			}
		}
	}

	// Penance double-damage flag, debate scoped.
	for _, d := range used {
		if d != nil && d.Behavior == entities.BehaviorPenance && d.LastValue >= 4 {
			player.DoubleDamage = true
		}
	}

	// Apathetic heal on bank.
	for _, d := range used {
		if d != nil && d.Behavior == entities.BehaviorApathetic {
			player.Heal(2)
			break
		}
	}

	// Abyssal copy-lowest, once per round, keyed off the player owning
	// the die rather than it contributing a value (it never rolls).
	if !*usedAbyssal && insult.Size() > 0 && player.HasDieBehavior(entities.BehaviorAbyssal) {
		insult.AddDie(insult.Lowest())
		*usedAbyssal = true
	}

	// Nostalgia echoes stage for the next roll, not this one.
	for i, d := range used {
		if d == nil || d.Behavior != entities.BehaviorNostalgia {
			continue
		}
		echo := d.LastValue
		if i < insult.Size() {
			echo = insult.Dice[i]
		}
		player.StageEcho(echo)
		result.EchoesSummoned++
	}

	return nil
}

// humorOrder fixes the tie-break order when buckets share the top sum.
var humorOrder = []entities.Humor{
	entities.HumorSanguine,
	entities.HumorPhlegmatic,
	entities.HumorMelancholic,
	entities.HumorCholeric,
}

// resolveHumors runs the archetype-level post-bank aggregate: banked
// dice are grouped into humor buckets, and the bucket(s) with the
// highest total apply their effect. Ties share, up to two buckets.
func (b *Banker) resolveHumors(player *entities.Player, insults []*entities.Insult, sources [][]*entities.Die, queued *QueuedEffects) error {
	sums := make(map[entities.Humor]int)
	for i, insult := range insults {
		used := sources[i]
		for j, value := range insult.Dice {
			if j >= len(used) || used[j] == nil {
				continue
			}
			if humor := used[j].Humor; humor != entities.HumorNone {
				sums[humor] += value
			}
		}
	}

	top := 0
	for _, humor := range humorOrder {
		if sums[humor] > top {
			top = sums[humor]
		}
	}
	if top == 0 {
		return nil
	}

	chosen := make([]entities.Humor, 0, 2)
	for _, humor := range humorOrder {
		if sums[humor] == top && len(chosen) < 2 {
			chosen = append(chosen, humor)
		}
	}

	for _, humor := range chosen {
		switch humor {
		case entities.HumorSanguine:
			player.Heal(1)
		case entities.HumorMelancholic:
			queued.OppNeurosis++
		case entities.HumorCholeric:
			queued.OppRegret += 2
		case entities.HumorPhlegmatic:
			if err := b.rerollPhlegmatic(insults, sources); err != nil {
				return err
			}
		}
	}
	return nil
}

// rerollPhlegmatic rerolls the first banked phlegmatic die value in
// place, recomputing that insult's damage.
func (b *Banker) rerollPhlegmatic(insults []*entities.Insult, sources [][]*entities.Die) error {
	for i, used := range sources {
		for j, d := range used {
			if d == nil || d.Humor != entities.HumorPhlegmatic {
				continue
			}
			value, err := RollDie(b.roller, d)
			if err != nil {
				return err
			}
			if j < insults[i].Size() {
				insults[i].SetDie(j, value)
			}
			return nil
		}
	}
	return nil
}
