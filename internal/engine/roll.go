package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
)

// RollDie rolls a single die through the provided roller, records the
// result on the die, and returns it. Blank faces roll as
// entities.BlankFace.
func RollDie(roller dice.Roller, d *entities.Die) (int, error) {
	face, err := roller.Roll(len(d.Faces))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll die %s", d.ID)
	}
	value := d.Faces[face-1]
	d.SetRolled(value)
	return value, nil
}

// RollPool rolls every die on a player and returns the fresh live
// pool. Dice that cannot roll contribute a blank sentinel entry so the
// pool always traces one entry per die.
func RollPool(roller dice.Roller, player *entities.Player) (*entities.LivePool, error) {
	pool := entities.NewLivePool()
	for _, d := range player.Dice {
		if !d.CanRoll() {
			d.SetRolled(entities.BlankFace)
			pool.Append(entities.BlankFace, d)
			continue
		}
		value, err := RollDie(roller, d)
		if err != nil {
			return nil, err
		}
		pool.Append(value, d)
	}
	return pool, nil
}
