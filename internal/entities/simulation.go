package entities

// MatchDetail is one sampled match outcome from a simulation run.
type MatchDetail struct {
	Match       int            `json:"match"`
	Winner      string         `json:"winner"`
	FinalHealth map[string]int `json:"final_health"`
	Rounds      int            `json:"rounds"`
}

// MatchStats aggregates one archetype pairing across a simulation run.
type MatchStats struct {
	ArchetypeA string `json:"archetype_a"`
	ArchetypeB string `json:"archetype_b"`

	Matches int `json:"matches"`
	WinsA   int `json:"wins_a"`
	WinsB   int `json:"wins_b"`
	Ties    int `json:"ties"`

	WinRateA float64 `json:"win_rate_a"`
	WinRateB float64 `json:"win_rate_b"`
	TieRate  float64 `json:"tie_rate"`

	AvgRounds float64 `json:"avg_rounds"`

	// Health difference is A's final health minus B's, per match.
	AvgHealthDiff float64 `json:"avg_health_diff"`
	StdHealthDiff float64 `json:"std_health_diff"`

	Details []MatchDetail `json:"details,omitempty"`
}
