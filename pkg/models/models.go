package models

// PitchRecord is one observed pitch from the Statcast feed, reduced to the
// fields the out-percentage analysis needs. Records are immutable once
// parsed at the ingestion boundary.
type PitchRecord struct {
	PlayerName string `json:"player_name"`
	PitchType  string `json:"pitch_type"` // Statcast code, e.g. "FF"; empty when unknown
	Event      string `json:"event"`      // play outcome label; empty for non-terminal pitches
	GameYear   int    `json:"game_year"`
}

// PitchTypeSummary aggregates all pitches of one type.
type PitchTypeSummary struct {
	PitchType     string  `json:"pitch_type"`
	PitchName     string  `json:"pitch_name"`
	TotalPitches  int     `json:"total_pitches"`
	OutCount      int     `json:"out_pitch_count"`
	OutPercentage float64 `json:"out_percentage"`
}

// OverallSummary rolls up the reported pitch-type groups.
type OverallSummary struct {
	TotalPitches         int     `json:"total_pitches"`
	TotalOuts            int     `json:"total_outs"`
	OverallOutPercentage float64 `json:"overall_out_percentage"`
}

// PitchTypeComparison pairs a player's out percentage for one pitch type
// with the league average for the same season and threshold.
type PitchTypeComparison struct {
	PitchType           string  `json:"pitch_type"`
	PitchName           string  `json:"pitch_name"`
	PlayerOutPercentage float64 `json:"player_out_percentage"`
	LeagueOutPercentage float64 `json:"league_out_percentage"`
}

// PlayerReport is the full response for one player/season request.
type PlayerReport struct {
	Player           string                `json:"player"`
	Year             int                   `json:"year"`
	MinPitches       int                   `json:"min_pitches"`
	PitchTypes       []PitchTypeSummary    `json:"pitch_types"`
	Summary          OverallSummary        `json:"summary"`
	LeagueComparison []PitchTypeComparison `json:"league_comparison"`
}

// PlayerList is the response for the season player index.
type PlayerList struct {
	Year    int      `json:"year"`
	Players []string `json:"players"`
}
