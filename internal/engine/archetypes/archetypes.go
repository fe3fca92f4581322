// Package archetypes defines the playable archetype catalog: each
// archetype's die set, its per-roll effect aggregation, and whether it
// resolves the commit-time humor aggregate.
package archetypes

import (
	"fmt"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
)

// Archetype IDs.
const (
	TabulaRasa        = "tabula-rasa"
	Euphoria          = "euphoria"
	Physiognomist     = "the-physiognomist"
	Rationalist       = "the-rationalist"
	Fatalist          = "the-fatalist"
	Transcendentalist = "the-transcendentalist"
	Puritan           = "the-puritan"
	Machiavellian     = "the-machiavellian"
	Absurdist         = "the-absurdist"
	Stoic             = "the-stoic"
	Nihilist          = "the-nihilist"

	// CustomID marks throwaway archetypes built by Custom for face
	// experiments.
	CustomID = "custom"
)

// dieSpec is one die template: display name, behavior tag, humor
// bucket, and faces.
type dieSpec struct {
	name     string
	behavior entities.DieBehavior
	humor    entities.Humor
	faces    [6]int
}

const x = entities.BlankFace

// Die templates, faces exactly as printed.
var (
	normalDie        = dieSpec{name: "Normal", behavior: entities.BehaviorNone, faces: [6]int{1, 2, 3, 4, 5, 6}}
	blissDie         = dieSpec{name: "Bliss", behavior: entities.BehaviorBliss, faces: [6]int{2, 3, 4, 5, 6, 6}}
	comedownDie      = dieSpec{name: "Comedown", behavior: entities.BehaviorComedown, faces: [6]int{2, 2, 2, 4, 4, 6}}
	highMindedDie    = dieSpec{name: "High-Minded", behavior: entities.BehaviorHighMinded, faces: [6]int{1, 1, 2, 3, 4, 6}}
	spiteDie         = dieSpec{name: "Spite", behavior: entities.BehaviorSpite, faces: [6]int{x, x, 1, 1, 6, 6}}
	inebriationDie   = dieSpec{name: "Inebriation", behavior: entities.BehaviorInebriation, faces: [6]int{x, x, 1, 1, 6, 6}}
	groundedDie      = dieSpec{name: "Grounded", behavior: entities.BehaviorGrounded, faces: [6]int{x, 1, 2, 3, 4, 4}}
	nostalgiaDie     = dieSpec{name: "Nostalgia", behavior: entities.BehaviorNostalgia, faces: [6]int{x, 1, 2, 3, 4, 4}}
	penanceDie       = dieSpec{name: "Penance", behavior: entities.BehaviorPenance, faces: [6]int{1, 2, 3, 4, 5, 6}}
	acedicDie        = dieSpec{name: "Acedic", behavior: entities.BehaviorAcedic, faces: [6]int{x, 1, 2, 3, 6, 6}}
	pilferDie        = dieSpec{name: "Pilfer", behavior: entities.BehaviorPilfer, faces: [6]int{1, 1, 2, 3, 6, 6}}
	catastrophizeDie = dieSpec{name: "Catastrophize", behavior: entities.BehaviorCatastrophize, faces: [6]int{1, 3, 4, 6, 6, 6}}
	aporicDie        = dieSpec{name: "Aporic", behavior: entities.BehaviorCatastrophize, faces: [6]int{1, 3, 4, 6, 6, 6}}
	ridiculeDie      = dieSpec{name: "Ridicule", behavior: entities.BehaviorRidicule, faces: [6]int{1, 2, 3, 4, 5, 6}}
	nauseaDie        = dieSpec{name: "Nausea", behavior: entities.BehaviorRidicule, faces: [6]int{1, 2, 3, 4, 5, 6}}
	apatheticDie     = dieSpec{name: "Apathetic", behavior: entities.BehaviorApathetic, faces: [6]int{x, x, x, 6, 6, 6}}
	abyssalDie       = dieSpec{name: "Abyssal", behavior: entities.BehaviorAbyssal, faces: [6]int{x, x, x, x, x, x}}

	cholericDie    = dieSpec{name: "Choleric", behavior: entities.BehaviorNone, humor: entities.HumorCholeric, faces: [6]int{2, 2, 3, 4, 5, 6}}
	melancholicDie = dieSpec{name: "Melancholic", behavior: entities.BehaviorNone, humor: entities.HumorMelancholic, faces: [6]int{2, 2, 3, 4, 5, 6}}
	phlegmaticDie  = dieSpec{name: "Phlegmatic", behavior: entities.BehaviorNone, humor: entities.HumorPhlegmatic, faces: [6]int{2, 2, 3, 4, 5, 6}}
	sanguineDie    = dieSpec{name: "Sanguine", behavior: entities.BehaviorNone, humor: entities.HumorSanguine, faces: [6]int{2, 2, 3, 4, 5, 6}}
)

// Archetype is a player template: a die set plus the flags the round
// loop needs to interpret its effects.
type Archetype struct {
	ID   string
	Name string

	// ConvertHealToForgiveness turns on-roll healing into forgiveness
	// tokens instead.
	ConvertHealToForgiveness bool

	// ResolvesHumors enables the post-bank humor aggregate.
	ResolvesHumors bool

	dice []dieSpec
}

func repeat(spec dieSpec, n int) []dieSpec {
	out := make([]dieSpec, n)
	for i := range out {
		out[i] = spec
	}
	return out
}

func withNormals(specs ...dieSpec) []dieSpec {
	return append(specs, repeat(normalDie, 6-len(specs))...)
}

var catalog = map[string]*Archetype{
	TabulaRasa: {
		ID:   TabulaRasa,
		Name: "Tabula Rasa",
		dice: withNormals(),
	},
	Euphoria: {
		ID:                       Euphoria,
		Name:                     "Euphoria",
		ConvertHealToForgiveness: true,
		dice:                     withNormals(blissDie, comedownDie),
	},
	Physiognomist: {
		ID:             Physiognomist,
		Name:           "The Physiognomist",
		ResolvesHumors: true,
		dice:           withNormals(cholericDie, melancholicDie, phlegmaticDie, sanguineDie),
	},
	Rationalist: {
		ID:   Rationalist,
		Name: "The Rationalist",
		dice: withNormals(highMindedDie, highMindedDie),
	},
	Fatalist: {
		ID:   Fatalist,
		Name: "The Fatalist",
		dice: withNormals(spiteDie, inebriationDie),
	},
	Transcendentalist: {
		ID:   Transcendentalist,
		Name: "The Transcendentalist",
		dice: withNormals(groundedDie, nostalgiaDie),
	},
	Puritan: {
		ID:   Puritan,
		Name: "The Puritan",
		dice: withNormals(penanceDie, acedicDie),
	},
	Machiavellian: {
		ID:   Machiavellian,
		Name: "The Machiavellian",
		dice: withNormals(pilferDie, pilferDie),
	},
	Absurdist: {
		ID:   Absurdist,
		Name: "The Absurdist",
		dice: withNormals(aporicDie, nauseaDie),
	},
	Stoic: {
		ID:   Stoic,
		Name: "The Stoic",
		dice: withNormals(apatheticDie),
	},
	Nihilist: {
		ID:   Nihilist,
		Name: "The Nihilist",
		dice: withNormals(abyssalDie),
	},
}

// Get returns the archetype with the given ID. Custom archetypes
// resolve to a neutral template; their dice already live on the
// player.
func Get(id string) (*Archetype, error) {
	if a, ok := catalog[id]; ok {
		return a, nil
	}
	if id == CustomID {
		return &Archetype{ID: CustomID, Name: "Custom"}, nil
	}
	return nil, errors.NotFoundf("unknown archetype: %s", id)
}

// List returns every archetype ID in the catalog.
func List() []string {
	ids := make([]string, 0, len(catalog))
	for _, id := range []string{
		TabulaRasa, Euphoria, Physiognomist, Rationalist, Fatalist,
		Transcendentalist, Puritan, Machiavellian, Absurdist, Stoic, Nihilist,
	} {
		ids = append(ids, id)
	}
	return ids
}

// Custom builds a throwaway archetype for face experiments: two dice
// with the given faces plus four normals, against which the simulation
// layer pits the baseline.
func Custom(name string, faces [6]int) *Archetype {
	special := dieSpec{name: name, behavior: entities.BehaviorNone, faces: faces}
	return &Archetype{
		ID:   CustomID,
		Name: name,
		dice: withNormals(special, special),
	}
}

// NewPlayer clones the archetype's die set into a fresh player at full
// health.
func (a *Archetype) NewPlayer(id, name string) *entities.Player {
	dice := make([]*entities.Die, len(a.dice))
	for i, spec := range a.dice {
		d := entities.NewDie(fmt.Sprintf("%s_die_%d", id, i), spec.name, spec.behavior, spec.faces)
		d.Humor = spec.humor
		dice[i] = d
	}
	player := entities.NewPlayer(id, name, dice)
	player.Archetype = a.ID
	return player
}
