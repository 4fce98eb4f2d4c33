package models

import "time"

// Player represents a roster member of exactly one team
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Position     *string   `json:"position,omitempty"`
	JerseyNumber *int      `json:"jerseyNumber,omitempty"`
	IsActive     bool      `json:"isActive"`
	DateAdded    time.Time `json:"dateAdded"`
	Notes        *string   `json:"notes,omitempty"`
}
