package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clubware/roster/internal/models"
	"github.com/clubware/roster/internal/roster"
	"github.com/clubware/roster/internal/store"
	"github.com/clubware/roster/internal/validate"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type seedPlayer struct {
	name     string
	position string
	jersey   int
	email    string
}

type seedTeam struct {
	name    string
	coach   string
	season  string
	players []seedPlayer
}

var seedTeams = []seedTeam{
	{
		name:   "Northside United",
		coach:  "Dana Whitfield",
		season: "2026 Spring",
		players: []seedPlayer{
			{name: "Alex Morgan", position: "Forward", jersey: 9, email: "alex.morgan@example.com"},
			{name: "Sam Okafor", position: "Defense", jersey: 4, email: "sam.okafor@example.com"},
			{name: "Riley Chen", position: "Goalkeeper", jersey: 1, email: "riley.chen@example.com"},
		},
	},
	{
		name:   "Harbor City Rovers",
		coach:  "Marcus Bell",
		season: "2026 Spring",
		players: []seedPlayer{
			{name: "Jordan Reyes", position: "Midfield", jersey: 8, email: "jordan.reyes@example.com"},
			{name: "Casey Lindqvist", position: "Forward", jersey: 11, email: "casey.lindqvist@example.com"},
		},
	},
}

func main() {
	path := "data/team-roster-data.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx := context.Background()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	st := store.NewDocumentStore(store.NewFileBackend(path), clockwork.NewRealClock(), logger)
	app := roster.NewApp(st, clockwork.NewRealClock(), logger)
	app.Load(ctx)

	var created, invalid int
	for _, seed := range seedTeams {
		coach, season := seed.coach, seed.season
		candidate := models.Team{Name: seed.name, Coach: &coach, Season: &season}
		if result := validate.Team(candidate); !result.Valid {
			fmt.Fprintf(os.Stderr, "skipping team %q: %v\n", seed.name, result.Errors)
			invalid++
			continue
		}

		team := app.CreateTeam(ctx, roster.CreateTeamRequest{
			Name:   seed.name,
			Coach:  &coach,
			Season: &season,
		})

		for _, sp := range seed.players {
			position, email, jersey := sp.position, sp.email, sp.jersey
			candidate := models.Player{Name: sp.name, Position: &position, Email: &email, JerseyNumber: &jersey}
			current, _ := app.GetTeam(team.ID)
			if result := validate.Player(*current, candidate); !result.Valid {
				fmt.Fprintf(os.Stderr, "skipping player %q: %v\n", sp.name, result.Errors)
				invalid++
				continue
			}

			if _, err := app.AddPlayer(ctx, team.ID, roster.AddPlayerRequest{
				Name:         sp.name,
				Position:     &position,
				Email:        &email,
				JerseyNumber: &jersey,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "failed to add player %q: %v\n", sp.name, err)
				continue
			}
		}
		created++
	}

	fmt.Printf("Seed complete: %d teams created, %d entries skipped as invalid (%s)\n", created, invalid, path)
}
