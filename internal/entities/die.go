// Package entities provides core data structures for debate-api.
package entities

// BlankFace marks a die face that produces no usable value when rolled.
// Blank results still occupy a slot in the live pool so banking can
// trace every die, but the combination finder ignores them.
const BlankFace = -1

// DieBehavior identifies the special rule a die carries. The set is
// closed on purpose: banking and roll-effect logic dispatch on these
// tags, so the full behavior surface stays auditable in one place.
type DieBehavior string

// Die behaviors.
const (
	// BehaviorNone is a plain die with no special rule.
	BehaviorNone DieBehavior = "none"

	// BehaviorBliss heals 1 when a 6 is rolled.
	BehaviorBliss DieBehavior = "bliss"

	// BehaviorComedown deals 1 self-damage when a 6 is rolled.
	BehaviorComedown DieBehavior = "comedown"

	// BehaviorHighMinded raises a banked insult by duplicating its last
	// value when this die banked a 6.
	BehaviorHighMinded DieBehavior = "high_minded"

	// BehaviorSpite deals 1 damage to the opponent when a 6 is rolled.
	BehaviorSpite DieBehavior = "spite"

	// BehaviorInebriation trades 1 self regret for 1 opponent neurosis
	// when a 6 is rolled.
	BehaviorInebriation DieBehavior = "inebriation"

	// BehaviorGrounded adds a literal echo value of 1 to an insult when
	// banked as part of a matched pair.
	BehaviorGrounded DieBehavior = "grounded"

	// BehaviorNostalgia stages an echo of the banked value for the
	// owner's next roll.
	BehaviorNostalgia DieBehavior = "nostalgia"

	// BehaviorPenance activates the debate-long double-damage flag when
	// banked at a value of 4 or higher.
	BehaviorPenance DieBehavior = "penance"

	// BehaviorAcedic heals 1 on a rolled 6 and grants a regret token if
	// the owner holds none.
	BehaviorAcedic DieBehavior = "acedic"

	// BehaviorPilfer counts toward the paired-sixes steal condition.
	BehaviorPilfer DieBehavior = "pilfer"

	// BehaviorCatastrophize forces a fumble on a rolled 1 and grants
	// bust protection when a 6 is banked.
	BehaviorCatastrophize DieBehavior = "catastrophize"

	// BehaviorRidicule transfers a regret token to the opponent on a
	// rolled 6, or gains one if none are held.
	BehaviorRidicule DieBehavior = "ridicule"

	// BehaviorApathetic heals 2 whenever this die is banked.
	BehaviorApathetic DieBehavior = "apathetic"

	// BehaviorAbyssal is all blank faces; once per round it appends a
	// copy of a banked insult's lowest value.
	BehaviorAbyssal DieBehavior = "abyssal"
)

// Humor classifies a die into one of the four commit-time buckets used
// by archetypes with post-bank humor resolution. HumorNone excludes the
// die from the aggregate.
type Humor string

// Humor buckets.
const (
	HumorNone        Humor = ""
	HumorSanguine    Humor = "sanguine"
	HumorPhlegmatic  Humor = "phlegmatic"
	HumorMelancholic Humor = "melancholic"
	HumorCholeric    Humor = "choleric"
)

// Die is a six-faced value producer. Faces are fixed at construction;
// LastValue is overwritten on every roll. Identity matters: bank-time
// modifiers key off which die produced a value, not just the value.
type Die struct {
	ID       string
	Name     string
	Behavior DieBehavior
	Humor    Humor
	Faces    [6]int

	// LastValue is the most recent rolled value, or BlankFace.
	LastValue int
}

// NewDie creates a die with the given faces. Blank faces are passed as
// BlankFace.
func NewDie(id, name string, behavior DieBehavior, faces [6]int) *Die {
	return &Die{
		ID:        id,
		Name:      name,
		Behavior:  behavior,
		Faces:     faces,
		LastValue: BlankFace,
	}
}

// GetID returns the die's unique identifier.
func (d *Die) GetID() string {
	return d.ID
}

// GetType returns the entity type for event payloads.
func (d *Die) GetType() string {
	return "die"
}

// CanRoll reports whether the die has at least one non-blank face. An
// all-blank die contributes only a sentinel to the live pool.
func (d *Die) CanRoll() bool {
	for _, f := range d.Faces {
		if f != BlankFace {
			return true
		}
	}
	return false
}

// SetRolled records a rolled face value. Rolling itself lives with the
// caller so the randomness source stays pluggable.
func (d *Die) SetRolled(value int) {
	d.LastValue = value
}

// Clone returns an independent copy of the die with a fresh identity.
func (d *Die) Clone(id string) *Die {
	c := *d
	c.ID = id
	c.LastValue = BlankFace
	return &c
}
