package roster

// CreateTeamRequest carries the caller-supplied fields for a new team.
// Id, creation date and the empty roster are assigned by the app.
type CreateTeamRequest struct {
	Name        string
	Description *string
	Coach       *string
	Season      *string
	IsActive    *bool
}

// UpdateTeamRequest is a partial update; nil fields are left unchanged.
// Id, creation date and the player roster are not updatable through it.
type UpdateTeamRequest struct {
	Name        *string
	Description *string
	Coach       *string
	Season      *string
	IsActive    *bool
}

// AddPlayerRequest carries the caller-supplied fields for a new player.
// IsActive defaults to true when unset.
type AddPlayerRequest struct {
	Name         string
	Email        *string
	Phone        *string
	Position     *string
	JerseyNumber *int
	IsActive     *bool
	Notes        *string
}

// UpdatePlayerRequest is a partial update; nil fields are left unchanged
type UpdatePlayerRequest struct {
	Name         *string
	Email        *string
	Phone        *string
	Position     *string
	JerseyNumber *int
	IsActive     *bool
	Notes        *string
}
