// Package validate holds the field-level and cross-entity business rules.
// Validators are pure and collect every violation before returning, so a
// caller can surface all problems at once. The synchronization layer does not
// run them itself; callers validate before create/update.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clubware/roster/internal/models"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxNotesLength       = 1000

	// The source material disagrees on the upper jersey bound (0-99 in one
	// place, 0-999 in another). 99 is enforced everywhere so real numbers can
	// never collide with the query engine's missing-number sentinel.
	maxJerseyNumber = 99
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+\.]{10,}$`)
)

// Result reports whether an entity passed and every rule it broke
type Result struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

func resultOf(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Team checks a team's own fields
func Team(t models.Team) Result {
	var errs []string

	name := strings.TrimSpace(t.Name)
	if name == "" {
		errs = append(errs, "team name is required")
	} else if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("team name must be %d characters or less", maxNameLength))
	}

	if t.Description != nil && len(*t.Description) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("description must be %d characters or less", maxDescriptionLength))
	}

	return resultOf(errs)
}

// Player checks a player's fields plus the rules that depend on the rest of
// the roster. The team is the one the player belongs to (or is joining); the
// player's own id is excluded from the jersey check so editing other fields
// never self-conflicts.
func Player(team models.Team, p models.Player) Result {
	var errs []string

	name := strings.TrimSpace(p.Name)
	if name == "" {
		errs = append(errs, "player name is required")
	} else if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("player name must be %d characters or less", maxNameLength))
	}

	if p.Email != nil && *p.Email != "" && !emailPattern.MatchString(*p.Email) {
		errs = append(errs, "email address is not valid")
	}

	if p.Phone != nil && *p.Phone != "" && !phonePattern.MatchString(*p.Phone) {
		errs = append(errs, "phone number is not valid")
	}

	if p.JerseyNumber != nil {
		n := *p.JerseyNumber
		if n < 0 || n > maxJerseyNumber {
			errs = append(errs, fmt.Sprintf("jersey number must be between 0 and %d", maxJerseyNumber))
		} else if holder := jerseyHolder(team, p.ID, n); p.IsActive && holder != nil {
			errs = append(errs, fmt.Sprintf("jersey number %d is already taken by %s", n, holder.Name))
		}
	}

	if p.Notes != nil && len(*p.Notes) > maxNotesLength {
		errs = append(errs, fmt.Sprintf("notes must be %d characters or less", maxNotesLength))
	}

	return resultOf(errs)
}

// jerseyHolder returns the other active player already wearing the number.
// Inactive players do not reserve a number.
func jerseyHolder(team models.Team, selfID string, number int) *models.Player {
	for i := range team.Players {
		other := &team.Players[i]
		if other.ID == selfID || !other.IsActive || other.JerseyNumber == nil {
			continue
		}
		if *other.JerseyNumber == number {
			return other
		}
	}
	return nil
}
