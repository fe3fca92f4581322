package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Player participates in event bus payloads as a toolkit entity.
var _ core.Entity = (*Player)(nil)

// MaxHealth is the starting and maximum health for competitive play.
const MaxHealth = 12

// Token names the counter types a player can hold. Counters never go
// negative; removal saturates at zero.
type Token string

// Token kinds.
const (
	TokenForgiveness  Token = "forgiveness"
	TokenNeurosis     Token = "neurosis"
	TokenRegret       Token = "regret"
	TokenEureka       Token = "eureka"
	TokenBreakthrough Token = "breakthrough"
	TokenRehash       Token = "rehash"
	TokenFumbleShield Token = "fumble-shield"
)

// Player holds all per-debate and cross-debate state for one side of a
// debate. Health mutations clamp to [0, MaxHealth].
type Player struct {
	ID        string
	Name      string
	Archetype string

	Health    int
	MaxHealth int

	tokens map[Token]int

	// BustProtection absorbs one forced fumble, then clears.
	BustProtection bool

	// DoubleDamage doubles clash damage in both directions for the rest
	// of the debate once a penance die banks a 4 or higher.
	DoubleDamage bool

	// PendingSteal marks that the paired-sixes steal condition fired
	// last round; the steal resolves at the start of the next roll.
	PendingSteal bool

	// ForceCommit is set by hooks that end banking early.
	ForceCommit bool

	// PendingEchoes are conjured values injected into this player's
	// next live pool, then cleared.
	PendingEchoes []int

	// Totems are named payloads placed and removed by behavior hooks.
	Totems map[string]any

	// Emotions are the names of the player's active behavior hooks,
	// resolved through the hook registry at debate start.
	Emotions []string

	Dice []*Die

	// WinCounter is incremented by hooks that award extra wins.
	WinCounter int
}

// NewPlayer creates a player at full health with the given dice.
func NewPlayer(id, name string, dice []*Die) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Health:    MaxHealth,
		MaxHealth: MaxHealth,
		tokens:    make(map[Token]int),
		Totems:    make(map[string]any),
		Dice:      dice,
	}
}

// GetID returns the player's unique identifier.
func (p *Player) GetID() string {
	return p.ID
}

// GetType returns the entity type for event payloads.
func (p *Player) GetType() string {
	return "player"
}

// TakeDamage reduces health, clamped at zero, and returns the damage
// actually applied.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal raises health, clamped at MaxHealth, and returns the healing
// actually applied.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if room := p.MaxHealth - p.Health; actual > room {
		actual = room
	}
	p.Health += actual
	return actual
}

// AddToken grants n tokens of the given kind. Non-positive amounts are
// ignored.
func (p *Player) AddToken(token Token, n int) {
	if n <= 0 {
		return
	}
	if p.tokens == nil {
		p.tokens = make(map[Token]int)
	}
	p.tokens[token] += n
}

// TokenCount returns how many tokens of the given kind the player holds.
func (p *Player) TokenCount(token Token) int {
	return p.tokens[token]
}

// RemoveTokens removes up to n tokens of the given kind, saturating at
// zero, and returns the number actually removed.
func (p *Player) RemoveTokens(token Token, n int) int {
	if n <= 0 {
		return 0
	}
	held := p.tokens[token]
	if n > held {
		n = held
	}
	p.tokens[token] = held - n
	return n
}

// ClearTokens zeroes a token counter and returns the count it held.
func (p *Player) ClearTokens(token Token) int {
	held := p.tokens[token]
	p.tokens[token] = 0
	return held
}

// SetTotem places a named payload on the player.
func (p *Player) SetTotem(key string, payload any) {
	if p.Totems == nil {
		p.Totems = make(map[string]any)
	}
	p.Totems[key] = payload
}

// Totem returns a placed payload and whether it exists.
func (p *Player) Totem(key string) (any, bool) {
	v, ok := p.Totems[key]
	return v, ok
}

// RemoveTotem deletes a placed payload.
func (p *Player) RemoveTotem(key string) {
	delete(p.Totems, key)
}

// StageEcho queues a conjured value for injection into the player's
// next roll.
func (p *Player) StageEcho(value int) {
	p.PendingEchoes = append(p.PendingEchoes, value)
}

// DrainEchoes returns the staged echo values and clears the queue.
func (p *Player) DrainEchoes() []int {
	echoes := p.PendingEchoes
	p.PendingEchoes = nil
	return echoes
}

// HasDieBehavior reports whether any of the player's dice carry the
// given behavior tag.
func (p *Player) HasDieBehavior(behavior DieBehavior) bool {
	for _, d := range p.Dice {
		if d.Behavior == behavior {
			return true
		}
	}
	return false
}
