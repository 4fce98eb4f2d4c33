package query

import "github.com/clubware/roster/internal/models"

// CalculateTeamStats derives roster statistics for a team. PositionCounts is
// built only for non-empty rosters and only counts players with a position.
func CalculateTeamStats(team models.Team) models.TeamStats {
	stats := models.TeamStats{
		TotalPlayers: len(team.Players),
	}

	for i := range team.Players {
		if team.Players[i].IsActive {
			stats.ActivePlayers++
		} else {
			stats.InactivePlayers++
		}
	}

	if len(team.Players) > 0 {
		stats.PositionCounts = make(map[string]int)
		for i := range team.Players {
			if pos := team.Players[i].Position; pos != nil && *pos != "" {
				stats.PositionCounts[*pos]++
			}
		}
	}

	return stats
}
