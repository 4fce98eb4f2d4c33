package query

import (
	"strings"

	"github.com/clubware/roster/internal/models"
)

// Filter narrows a roster; all set predicates must match
type Filter struct {
	IsActive   *bool
	Position   *string
	SearchTerm string
}

// FilterPlayers returns the players matching every set predicate. The search
// term matches case-insensitively as a substring of name, email, position or
// notes.
func FilterPlayers(players []models.Player, filter Filter) []models.Player {
	var out []models.Player
	for i := range players {
		p := &players[i]
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		if filter.Position != nil && stringOrEmpty(p.Position) != *filter.Position {
			continue
		}
		if filter.SearchTerm != "" && !matchesSearch(p, filter.SearchTerm) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func matchesSearch(p *models.Player, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{
		p.Name,
		stringOrEmpty(p.Email),
		stringOrEmpty(p.Position),
		stringOrEmpty(p.Notes),
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
