// Package roster is the state synchronization layer: the single in-memory
// mirror of all teams that a UI reads, wrapped around the persistence store.
// Writes persist first and then mirror the same change into memory, without
// transactional rollback. Validation is the caller's job; see internal/validate.
package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/clubware/roster/internal/models"
	"github.com/clubware/roster/internal/store"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// App holds the in-memory mirror and coordinates it with the store.
// The mutex only makes the mirror safe to share between goroutines in one
// process; the store itself stays read-modify-write with last write winning.
type App struct {
	store store.Store
	clock clockwork.Clock
	log   zerolog.Logger

	mu      sync.RWMutex
	teams   []models.Team
	loading bool
}

// NewApp creates an app whose mirror is empty and still loading
func NewApp(st store.Store, clock clockwork.Clock, log zerolog.Logger) *App {
	return &App{
		store:   st,
		clock:   clock,
		log:     log,
		loading: true,
	}
}

// Load performs the initial load from the store. A store failure is logged
// and the app settles into an empty, non-loading state.
func (a *App) Load(ctx context.Context) {
	teams, err := a.store.GetAll(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("initial load failed, starting with empty roster")
		teams = nil
	}

	a.mu.Lock()
	a.teams = teams
	a.loading = false
	a.mu.Unlock()

	a.log.Info().Int("teams", len(teams)).Msg("roster loaded")
}

// Loading reports whether the initial load has not completed yet
func (a *App) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// Teams returns a copy of the mirrored collection for rendering
func (a *App) Teams() []models.Team {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.Team, len(a.teams))
	copy(out, a.teams)
	return out
}

// GetTeam looks the team up in memory only; it never touches the store
func (a *App) GetTeam(id string) (*models.Team, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for i := range a.teams {
		if a.teams[i].ID == id {
			team := a.teams[i]
			return &team, true
		}
	}
	return nil, false
}

// CreateTeam assigns identity and defaults, persists, then mirrors. It never
// fails: a store error is logged and the team is still mirrored so the UI
// keeps working against memory.
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) models.Team {
	team := models.Team{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Coach:       req.Coach,
		Season:      req.Season,
		DateCreated: a.clock.Now(),
		IsActive:    true,
		Players:     []models.Player{},
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := a.store.Save(ctx, team); err != nil {
		a.log.Error().Err(err).Str("team_id", team.ID).Msg("failed to persist created team")
	}

	a.mirror(team)
	a.log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("created team")
	return team
}

// UpdateTeam merges the partial update into the stored record (not the
// mirror), persists it, then replaces the in-memory entry
func (a *App) UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*models.Team, error) {
	current, err := a.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team := *current
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}
	if req.Coach != nil {
		team.Coach = req.Coach
	}
	if req.Season != nil {
		team.Season = req.Season
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := a.store.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	a.mirror(team)
	return &team, nil
}

// DeleteTeam removes the team from the store and the mirror. Any store error
// is reported as failure and leaves the mirror untouched.
func (a *App) DeleteTeam(ctx context.Context, id string) bool {
	if err := a.store.Delete(ctx, id); err != nil {
		a.log.Warn().Err(err).Str("team_id", id).Msg("failed to delete team")
		return false
	}

	a.mu.Lock()
	for i := range a.teams {
		if a.teams[i].ID == id {
			a.teams = append(a.teams[:i], a.teams[i+1:]...)
			break
		}
	}
	a.mu.Unlock()

	a.log.Info().Str("team_id", id).Msg("deleted team")
	return true
}

// AddPlayer appends a new player to the stored team, persists, then mirrors
func (a *App) AddPlayer(ctx context.Context, teamID string, req AddPlayerRequest) (*models.Player, error) {
	team, err := a.store.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	player := models.Player{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		IsActive:     true,
		DateAdded:    a.clock.Now(),
		Notes:        req.Notes,
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
	}

	team.Players = append(team.Players, player)
	if err := a.store.Save(ctx, *team); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	a.mirror(*team)
	return &player, nil
}

// UpdatePlayer merges the partial update into one player of the stored team
func (a *App) UpdatePlayer(ctx context.Context, teamID, playerID string, req UpdatePlayerRequest) (*models.Player, error) {
	team, err := a.store.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	idx := team.FindPlayer(playerID)
	if idx < 0 {
		return nil, fmt.Errorf("update player %s: %w", playerID, ErrPlayerNotFound)
	}

	player := team.Players[idx]
	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Email != nil {
		player.Email = req.Email
	}
	if req.Phone != nil {
		player.Phone = req.Phone
	}
	if req.Position != nil {
		player.Position = req.Position
	}
	if req.JerseyNumber != nil {
		player.JerseyNumber = req.JerseyNumber
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		player.Notes = req.Notes
	}
	team.Players[idx] = player

	if err := a.store.Save(ctx, *team); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	a.mirror(*team)
	return &player, nil
}

// RemovePlayer drops one player from the stored team, persists, then mirrors
func (a *App) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	team, err := a.store.GetByID(ctx, teamID)
	if err != nil {
		return err
	}

	idx := team.FindPlayer(playerID)
	if idx < 0 {
		return fmt.Errorf("remove player %s: %w", playerID, ErrPlayerNotFound)
	}

	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
	if err := a.store.Save(ctx, *team); err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	a.mirror(*team)
	return nil
}

// Refresh reloads the whole mirror from the store, discarding any
// memory-only state
func (a *App) Refresh(ctx context.Context) {
	teams, err := a.store.GetAll(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("refresh failed, clearing roster")
		teams = nil
	}

	a.mu.Lock()
	a.teams = teams
	a.mu.Unlock()
}

// mirror replaces the in-memory entry with a matching id, appending when the
// team is new to the mirror
func (a *App) mirror(team models.Team) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.teams {
		if a.teams[i].ID == team.ID {
			a.teams[i] = team
			return
		}
	}
	a.teams = append(a.teams, team)
}
