package entities

// WinnerTie is the DebateResult winner value when neither player wins.
const WinnerTie = "tie"

// RoundResult records one player's side of a resolved round.
type RoundResult struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	Fumbled bool      `json:"fumbled"`
	Insults []*Insult `json:"insults"`

	// TotalDamage is the sum of banked insult damage before blocking.
	TotalDamage int `json:"total_damage"`

	DamageToOpponent   int `json:"damage_to_opponent"`
	DamageFromOpponent int `json:"damage_from_opponent"`

	// InitialValues are the raw rolled values before banking, blank
	// sentinels included.
	InitialValues []int `json:"initial_values"`

	InsultsBanked  int `json:"insults_banked"`
	EchoesSummoned int `json:"echoes_summoned"`

	// Roll-shape flags consumed by external modifier logic.
	RolledOnlyOdds  bool `json:"rolled_only_odds"`
	RolledOnlyEvens bool `json:"rolled_only_evens"`
	ContainedOne    bool `json:"contained_one"`
}

// DeriveShape fills the roll-shape flags from the initial values.
// Blank sentinels are ignored.
func (r *RoundResult) DeriveShape() {
	onlyOdds := true
	onlyEvens := true
	for _, v := range r.InitialValues {
		if v <= 0 {
			continue
		}
		if v == 1 {
			r.ContainedOne = true
		}
		if v%2 == 0 {
			onlyOdds = false
		} else {
			onlyEvens = false
		}
	}
	r.RolledOnlyOdds = onlyOdds
	r.RolledOnlyEvens = onlyEvens
}

// RoundPair holds both players' results for one round.
type RoundPair struct {
	A *RoundResult `json:"a"`
	B *RoundResult `json:"b"`
}

// DebateResult is the outcome of a complete debate.
type DebateResult struct {
	DebateID string `json:"debate_id"`

	// Winner is the winning player's ID, or WinnerTie.
	Winner string `json:"winner"`

	Rounds []RoundPair `json:"rounds"`

	// FinalHealth maps player ID to health at debate end.
	FinalHealth map[string]int `json:"final_health"`
}
