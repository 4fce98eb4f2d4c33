package models

import "time"

// Team represents a managed team and owns its player roster. Players exist
// only inside their team's Players slice; deleting a team discards them.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Coach       *string   `json:"coach,omitempty"`
	Season      *string   `json:"season,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
	IsActive    bool      `json:"isActive"`
	Players     []Player  `json:"players"`
}

// FindPlayer returns the index of the player with the given id, or -1.
func (t *Team) FindPlayer(playerID string) int {
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}
