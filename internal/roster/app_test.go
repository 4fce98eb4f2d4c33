package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubware/roster/internal/models"
	"github.com/clubware/roster/internal/store"
	"github.com/clubware/roster/internal/validate"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMediumDown = errors.New("medium down")

// spyStore counts calls and lets tests fail individual operations
type spyStore struct {
	inner store.Store

	getAllCalls, saveCalls, deleteCalls int
	failGetAll, failSave, failDelete    bool
}

func (s *spyStore) GetAll(ctx context.Context) ([]models.Team, error) {
	s.getAllCalls++
	if s.failGetAll {
		return nil, errMediumDown
	}
	return s.inner.GetAll(ctx)
}

func (s *spyStore) GetByID(ctx context.Context, id string) (*models.Team, error) {
	return s.inner.GetByID(ctx, id)
}

func (s *spyStore) Save(ctx context.Context, team models.Team) error {
	s.saveCalls++
	if s.failSave {
		return errMediumDown
	}
	return s.inner.Save(ctx, team)
}

func (s *spyStore) Delete(ctx context.Context, id string) error {
	s.deleteCalls++
	if s.failDelete {
		return errMediumDown
	}
	return s.inner.Delete(ctx, id)
}

func newTestApp(t *testing.T) (*App, *spyStore, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	spy := &spyStore{inner: store.NewDocumentStore(store.NewMemoryBackend(), clock, zerolog.Nop())}
	return NewApp(spy, clock, zerolog.Nop()), spy, clock
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestLoadSettlesEmptyWhenStoreFails(t *testing.T) {
	app, spy, _ := newTestApp(t)
	spy.failGetAll = true

	require.True(t, app.Loading())
	app.Load(context.Background())

	require.False(t, app.Loading())
	require.Empty(t, app.Teams())
}

func TestCreateTeamMirrorsAndPersists(t *testing.T) {
	app, spy, clock := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	team := app.CreateTeam(ctx, CreateTeamRequest{
		Name:  "Northside United",
		Coach: strPtr("Dana Whitfield"),
	})

	require.NotEmpty(t, team.ID)
	require.True(t, team.IsActive)
	require.Empty(t, team.Players)
	require.True(t, team.DateCreated.Equal(clock.Now()))

	// memory-only lookup sees it
	got, ok := app.GetTeam(team.ID)
	require.True(t, ok)
	assert.Equal(t, "Northside United", got.Name)

	// and so does the store
	stored, err := spy.inner.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Northside United", stored.Name)
}

func TestCreateTeamStillMirrorsWhenPersistFails(t *testing.T) {
	app, spy, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)
	spy.failSave = true

	team := app.CreateTeam(ctx, CreateTeamRequest{Name: "Ghost FC"})

	_, ok := app.GetTeam(team.ID)
	require.True(t, ok)
	require.Len(t, app.Teams(), 1)
}

func TestUpdateTeamMergesFromStore(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	created := app.CreateTeam(ctx, CreateTeamRequest{
		Name:        "Northside United",
		Description: strPtr("local league side"),
	})

	updated, err := app.UpdateTeam(ctx, created.ID, UpdateTeamRequest{
		Name:  strPtr("Northside City"),
		Coach: strPtr("Marcus Bell"),
	})
	require.NoError(t, err)
	require.Equal(t, "Northside City", updated.Name)
	require.Equal(t, "Marcus Bell", *updated.Coach)
	// untouched fields survive the merge
	require.Equal(t, "local league side", *updated.Description)
	require.True(t, updated.DateCreated.Equal(created.DateCreated))

	mirrored, ok := app.GetTeam(created.ID)
	require.True(t, ok)
	require.Equal(t, "Northside City", mirrored.Name)
}

func TestUpdateTeamNotFound(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.Load(context.Background())

	_, err := app.UpdateTeam(context.Background(), "missing-id", UpdateTeamRequest{Name: strPtr("X")})
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestDeleteTeam(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	team := app.CreateTeam(ctx, CreateTeamRequest{Name: "Northside United"})
	require.True(t, app.DeleteTeam(ctx, team.ID))

	_, ok := app.GetTeam(team.ID)
	require.False(t, ok)
	require.Empty(t, app.Teams())
}

func TestDeleteTeamMissingIDFailsWithoutMutation(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)
	app.CreateTeam(ctx, CreateTeamRequest{Name: "Northside United"})

	require.False(t, app.DeleteTeam(ctx, "missing-id"))
	require.Len(t, app.Teams(), 1)
}

func TestDeleteTeamStoreFailureLeavesMirrorUntouched(t *testing.T) {
	app, spy, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)
	team := app.CreateTeam(ctx, CreateTeamRequest{Name: "Northside United"})
	spy.failDelete = true

	require.False(t, app.DeleteTeam(ctx, team.ID))

	_, ok := app.GetTeam(team.ID)
	require.True(t, ok)
}

func TestPlayerLifecycle(t *testing.T) {
	app, _, clock := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)
	team := app.CreateTeam(ctx, CreateTeamRequest{Name: "Northside United"})

	player, err := app.AddPlayer(ctx, team.ID, AddPlayerRequest{
		Name:         "Alex Morgan",
		Position:     strPtr("Forward"),
		JerseyNumber: intPtr(9),
	})
	require.NoError(t, err)
	require.NotEmpty(t, player.ID)
	require.True(t, player.IsActive)
	require.True(t, player.DateAdded.Equal(clock.Now()))

	mirrored, ok := app.GetTeam(team.ID)
	require.True(t, ok)
	require.Len(t, mirrored.Players, 1)

	updated, err := app.UpdatePlayer(ctx, team.ID, player.ID, UpdatePlayerRequest{
		JerseyNumber: intPtr(10),
		IsActive:     boolPtr(false),
	})
	require.NoError(t, err)
	require.Equal(t, 10, *updated.JerseyNumber)
	require.False(t, updated.IsActive)
	// merge keeps everything the request left unset
	require.Equal(t, "Alex Morgan", updated.Name)

	mirrored, _ = app.GetTeam(team.ID)
	require.Equal(t, 10, *mirrored.Players[0].JerseyNumber)

	require.NoError(t, app.RemovePlayer(ctx, team.ID, player.ID))
	mirrored, _ = app.GetTeam(team.ID)
	require.Empty(t, mirrored.Players)
}

func TestPlayerOperationsOnMissingIDs(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)
	team := app.CreateTeam(ctx, CreateTeamRequest{Name: "Northside United"})

	_, err := app.AddPlayer(ctx, "missing-team", AddPlayerRequest{Name: "Alex"})
	require.ErrorIs(t, err, ErrTeamNotFound)

	_, err = app.UpdatePlayer(ctx, team.ID, "missing-player", UpdatePlayerRequest{Name: strPtr("X")})
	require.ErrorIs(t, err, ErrPlayerNotFound)

	require.ErrorIs(t, app.RemovePlayer(ctx, team.ID, "missing-player"), ErrPlayerNotFound)
}

func TestRefreshDiscardsMemoryOnlyState(t *testing.T) {
	app, spy, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	// a create whose persist failed exists only in the mirror
	spy.failSave = true
	app.CreateTeam(ctx, CreateTeamRequest{Name: "Ghost FC"})
	require.Len(t, app.Teams(), 1)

	app.Refresh(ctx)
	require.Empty(t, app.Teams())
}

func TestRefreshPicksUpForeignWrites(t *testing.T) {
	app, spy, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	// another writer updates the same document behind this app's back
	foreign := models.Team{ID: "t-foreign", Name: "Harbor City Rovers", Players: []models.Player{}}
	require.NoError(t, spy.inner.Save(ctx, foreign))
	require.Empty(t, app.Teams())

	app.Refresh(ctx)
	require.Len(t, app.Teams(), 1)
}

func TestInvalidTeamNeverReachesStore(t *testing.T) {
	app, spy, _ := newTestApp(t)
	ctx := context.Background()
	app.Load(ctx)

	// callers validate before create; an invalid team means no store write
	candidate := models.Team{Name: "   "}
	if result := validate.Team(candidate); result.Valid {
		app.CreateTeam(ctx, CreateTeamRequest{Name: candidate.Name})
	}

	require.Zero(t, spy.saveCalls)
	require.Empty(t, app.Teams())
}
