// Package query derives sorted, filtered and aggregated views from in-memory
// rosters. Nothing here touches the store.
package query

import (
	"sort"

	"github.com/clubware/roster/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the player field to order by
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByPosition     SortKey = "position"
	SortByJerseyNumber SortKey = "jerseyNumber"
	SortByDateAdded    SortKey = "dateAdded"
)

// SortOrder selects the direction
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// missingJerseySentinel stands in for an unset jersey number so unnumbered
// players always sort after numbered ones. Real numbers are capped at 99.
const missingJerseySentinel = 999

// SortPlayers returns a stably sorted copy of players. String keys use
// locale-aware collation. Players without a jersey number sort last in both
// directions; the order flips only the comparison of two present numbers.
func SortPlayers(players []models.Player, key SortKey, order SortOrder) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)

	coll := collate.New(language.English, collate.Loose)
	desc := order == Descending

	sort.SliceStable(out, func(i, j int) bool {
		return comparePlayers(coll, &out[i], &out[j], key, desc) < 0
	})
	return out
}

func comparePlayers(coll *collate.Collator, a, b *models.Player, key SortKey, desc bool) int {
	var c int
	switch key {
	case SortByJerseyNumber:
		an, bn := jerseyOrSentinel(a), jerseyOrSentinel(b)
		// the missing-sorts-last tie-break is direction-independent
		if an == missingJerseySentinel || bn == missingJerseySentinel {
			return compareInts(an, bn)
		}
		c = compareInts(an, bn)
	case SortByPosition:
		c = coll.CompareString(stringOrEmpty(a.Position), stringOrEmpty(b.Position))
	case SortByDateAdded:
		c = a.DateAdded.Compare(b.DateAdded)
	default:
		c = coll.CompareString(a.Name, b.Name)
	}

	if desc {
		c = -c
	}
	return c
}

func jerseyOrSentinel(p *models.Player) int {
	if p.JerseyNumber == nil {
		return missingJerseySentinel
	}
	return *p.JerseyNumber
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
