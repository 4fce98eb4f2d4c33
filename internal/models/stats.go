package models

// TeamStats is derived from a team's roster and never persisted.
// PositionCounts is nil for an empty roster.
type TeamStats struct {
	TotalPlayers    int            `json:"totalPlayers"`
	ActivePlayers   int            `json:"activePlayers"`
	InactivePlayers int            `json:"inactivePlayers"`
	PositionCounts  map[string]int `json:"positionCounts,omitempty"`
}
