// Package emotions implements the behavior-hook system: named hooks a
// player carries that observe and mutate debate state at fixed
// lifecycle points. Hooks are best-effort modifiers; a failing hook is
// reported and skipped, never allowed to abort the round.
package emotions

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
)

// Stage identifies a hook invocation point in the round lifecycle.
type Stage string

// Hook stages.
const (
	StageDebateStart Stage = "debate_start"
	StageRoundStart  Stage = "round_start"
	StageAfterRoll   Stage = "after_roll"
	StageBank        Stage = "bank"
	StageFumble      Stage = "fumble"
	StageCommit      Stage = "commit"
	StageClashEnd    Stage = "clash_end"
	StageDebateEnd   Stage = "debate_end"
	StageTrigger     Stage = "trigger"
)

// Context is passed to every hook invocation. Pool is non-nil only at
// stages where the live pool exists; hooks mutate it solely through
// LivePool.SetValue. Hooks must be idempotent across repeated
// invocations within a round.
type Context struct {
	Self     *entities.Player
	Opponent *entities.Player
	Round    int

	// Pool is the acting player's live pool, when one exists.
	Pool *entities.LivePool

	// Roller serves hooks that reroll values.
	Roller dice.Roller

	// Data carries stage-specific flags such as "self_fumbled".
	Data map[string]any
}

// Flag reads a boolean out of the stage payload.
func (c *Context) Flag(key string) bool {
	v, _ := c.Data[key].(bool)
	return v
}

// Emotion is a behavior hook. Implementations embed Base and override
// the stages they care about.
type Emotion interface {
	Name() string

	OnDebateStart(ctx *Context) error
	OnRoundStart(ctx *Context) error
	OnAfterRoll(ctx *Context) error
	OnBank(ctx *Context) error
	OnFumble(ctx *Context) error
	OnCommit(ctx *Context) error
	OnClashEnd(ctx *Context) error
	OnDebateEnd(ctx *Context) error

	// OnTrigger is the explicit entry point the surrounding archetype
	// and report logic can fire manually.
	OnTrigger(ctx *Context) error
}

// Base is a no-op Emotion for embedding.
type Base struct {
	name string
}

// NewBase creates the embeddable no-op hook with the given name.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the hook's canonical name.
func (b Base) Name() string { return b.name }

// OnDebateStart does nothing.
func (Base) OnDebateStart(*Context) error { return nil }

// OnRoundStart does nothing.
func (Base) OnRoundStart(*Context) error { return nil }

// OnAfterRoll does nothing.
func (Base) OnAfterRoll(*Context) error { return nil }

// OnBank does nothing.
func (Base) OnBank(*Context) error { return nil }

// OnFumble does nothing.
func (Base) OnFumble(*Context) error { return nil }

// OnCommit does nothing.
func (Base) OnCommit(*Context) error { return nil }

// OnClashEnd does nothing.
func (Base) OnClashEnd(*Context) error { return nil }

// OnDebateEnd does nothing.
func (Base) OnDebateEnd(*Context) error { return nil }

// OnTrigger does nothing.
func (Base) OnTrigger(*Context) error { return nil }

// Result reports one hook invocation. A failed hook is recorded here
// and otherwise ignored; failure stays visible without altering
// control flow.
type Result struct {
	Emotion string
	Stage   Stage
	Err     error
}

// Failed reports whether the invocation errored or panicked.
func (r Result) Failed() bool { return r.Err != nil }

// Invoke runs a single hook at the given stage, isolating errors and
// panics into the returned Result.
func Invoke(stage Stage, e Emotion, ctx *Context) (result Result) {
	result = Result{Emotion: e.Name(), Stage: stage}

	defer func() {
		if r := recover(); r != nil {
			result.Err = errors.Internalf("hook %s panicked at %s: %v", e.Name(), stage, r)
		}
	}()

	switch stage {
	case StageDebateStart:
		result.Err = e.OnDebateStart(ctx)
	case StageRoundStart:
		result.Err = e.OnRoundStart(ctx)
	case StageAfterRoll:
		result.Err = e.OnAfterRoll(ctx)
	case StageBank:
		result.Err = e.OnBank(ctx)
	case StageFumble:
		result.Err = e.OnFumble(ctx)
	case StageCommit:
		result.Err = e.OnCommit(ctx)
	case StageClashEnd:
		result.Err = e.OnClashEnd(ctx)
	case StageDebateEnd:
		result.Err = e.OnDebateEnd(ctx)
	case StageTrigger:
		result.Err = e.OnTrigger(ctx)
	default:
		result.Err = errors.InvalidArgumentf("unknown hook stage: %s", stage)
	}
	return result
}
