package archetypes

import (
	"github.com/KirkDiggler/debate-api/internal/entities"
)

// RollEffects aggregates the non-bank-time die effects of one roll.
// Heal, Damage, and ForgivenessTokens apply immediately after rolling;
// the rest are flags the round loop interprets at its own steps.
type RollEffects struct {
	Heal              int
	Damage            int
	ForgivenessTokens int

	OppDamage   int
	OppNeurosis int
	SelfRegret  int

	PilferSixes   int
	RidiculeSixes int
	ForceFumble   bool
}

// CollectRollEffects walks the player's dice after a roll and sums
// their on-roll effects, keyed by behavior tag and last rolled value.
func (a *Archetype) CollectRollEffects(player *entities.Player) *RollEffects {
	effects := &RollEffects{}

	for _, d := range player.Dice {
		value := d.LastValue
		switch d.Behavior {
		case entities.BehaviorBliss:
			if value == 6 {
				effects.Heal++
			}
		case entities.BehaviorComedown:
			if value == 6 {
				effects.Damage++
			}
		case entities.BehaviorSpite:
			if value == 6 {
				effects.OppDamage++
			}
		case entities.BehaviorInebriation:
			if value == 6 {
				effects.SelfRegret++
				effects.OppNeurosis++
			}
		case entities.BehaviorAcedic:
			if value == 6 {
				effects.Heal++
				if player.TokenCount(entities.TokenRegret) == 0 {
					effects.SelfRegret++
				}
			}
		case entities.BehaviorPilfer:
			if value == 6 {
				effects.PilferSixes++
			}
		case entities.BehaviorCatastrophize:
			if value == 1 {
				effects.ForceFumble = true
			}
		case entities.BehaviorRidicule:
			if value == 6 {
				effects.RidiculeSixes++
			}
		}
	}

	if a.ConvertHealToForgiveness && effects.Heal > 0 {
		effects.ForgivenessTokens += effects.Heal
		effects.Heal = 0
	}

	return effects
}
