package emotions

import (
	"strings"

	"github.com/KirkDiggler/debate-api/internal/errors"
)

// registry maps canonical hook names to constructors. The table is
// explicit and built at startup; hook types never self-register.
var registry = map[string]func() Emotion{
	"foreboding":              func() Emotion { return &Foreboding{Base: NewBase("foreboding")} },
	"catalepsy":               func() Emotion { return &Catalepsy{Base: NewBase("catalepsy")} },
	"tantrum":                 func() Emotion { return &Tantrum{Base: NewBase("tantrum")} },
	"persecutory delusions":   func() Emotion { return &PersecutoryDelusions{Base: NewBase("persecutory delusions")} },
	"absolution":              func() Emotion { return &Absolution{Base: NewBase("absolution")} },
	"cognitive dissonance":    func() Emotion { return &CognitiveDissonance{Base: NewBase("cognitive dissonance")} },
	"outburst":                func() Emotion { return &Outburst{Base: NewBase("outburst")} },
	"chivalry":                func() Emotion { return &Chivalry{Base: NewBase("chivalry")} },
	"marxist accelerationism": func() Emotion { return &MarxistAccelerationism{Base: NewBase("marxist accelerationism")} },
	"masochistic rapture":     func() Emotion { return &MasochisticRapture{Base: NewBase("masochistic rapture")} },
	"schadenfreude":           func() Emotion { return &Schadenfreude{Base: NewBase("schadenfreude")} },
	"oppositional defiance":   func() Emotion { return &OppositionalDefiance{Base: NewBase("oppositional defiance")} },
	"codependence":            func() Emotion { return &Codependence{Base: NewBase("codependence")} },
	"hypervigilance":          func() Emotion { return &Hypervigilance{Base: NewBase("hypervigilance")} },
	"undue certainty":         func() Emotion { return &UndueCertainty{Base: NewBase("undue certainty")} },
	"smoldering resentment":   func() Emotion { return &SmolderingResentment{Base: NewBase("smoldering resentment")} },
	"pathological envy":       func() Emotion { return &PathologicalEnvy{Base: NewBase("pathological envy")} },
	"intrusive thought":       func() Emotion { return &IntrusiveThought{Base: NewBase("intrusive thought")} },
	"habituation":             func() Emotion { return &Habituation{Base: NewBase("habituation")} },
	"overstimulated":          func() Emotion { return &Overstimulated{Base: NewBase("overstimulated")} },
	"projection":              func() Emotion { return &Projection{Base: NewBase("projection")} },
	"placebo effect":          func() Emotion { return &PlaceboEffect{Base: NewBase("placebo effect")} },
	"superego shield":         func() Emotion { return &SuperegoShield{Base: NewBase("superego shield")} },
}

// canonical lowercases a lookup name and normalizes separators so
// "Persecutory-Delusions" and "persecutory delusions" both resolve.
func canonical(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return name
}

// New constructs a hook by name.
func New(name string) (Emotion, error) {
	ctor, ok := registry[canonical(name)]
	if !ok {
		return nil, errors.NotFoundf("unknown emotion: %s", name)
	}
	return ctor(), nil
}

// CreateAll constructs hooks for every recognized name, in order,
// skipping names the registry does not know. Unknown names are
// returned so the caller can surface them.
func CreateAll(names []string) ([]Emotion, []string) {
	hooks := make([]Emotion, 0, len(names))
	var unknown []string
	for _, name := range names {
		hook, err := New(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		hooks = append(hooks, hook)
	}
	return hooks, unknown
}

// Names returns every registered hook name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
