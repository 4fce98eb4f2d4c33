package roster

import (
	"errors"

	"github.com/clubware/roster/internal/store"
)

// ErrTeamNotFound mirrors the store sentinel so callers only import roster
var ErrTeamNotFound = store.ErrTeamNotFound

// ErrPlayerNotFound is returned when a player id does not exist on the team
var ErrPlayerNotFound = errors.New("player not found")
