package main

import (
	"context"
	"os"

	"github.com/clubware/roster/internal/dbconfig"
	"github.com/clubware/roster/internal/query"
	"github.com/clubware/roster/internal/roster"
	"github.com/clubware/roster/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if level, err := zerolog.ParseLevel(config.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	ctx := context.Background()

	backend, cleanup, err := setupBackend(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up storage backend")
	}
	defer cleanup()

	st := store.NewDocumentStore(backend, clockwork.NewRealClock(), log.Logger)
	app := roster.NewApp(st, clockwork.NewRealClock(), log.Logger)
	app.Load(ctx)

	for _, team := range app.Teams() {
		stats := query.CalculateTeamStats(team)
		log.Info().
			Str("team", team.Name).
			Bool("active", team.IsActive).
			Int("players", stats.TotalPlayers).
			Int("active_players", stats.ActivePlayers).
			Int("inactive_players", stats.InactivePlayers).
			Msg("roster summary")
	}
}

// setupBackend builds the configured storage backend and returns a cleanup
// for whatever resources it holds
func setupBackend(ctx context.Context, config *Config) (store.Backend, func(), error) {
	noop := func() {}

	switch config.Storage.Backend {
	case "postgres":
		dbCfg := dbconfig.NewConfigFromEnv()
		pool, err := pgxpool.New(ctx, dbCfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		backend := store.NewPostgresBackend(pool, config.Storage.Postgres.DocumentKey)
		if err := backend.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info().Str("database", dbCfg.Database).Msg("using postgres storage")
		return backend, pool.Close, nil
	case "memory":
		log.Info().Msg("using in-memory storage, nothing will be persisted")
		return store.NewMemoryBackend(), noop, nil
	default:
		log.Info().Str("path", config.Storage.File.Path).Msg("using file storage")
		return store.NewFileBackend(config.Storage.File.Path), noop, nil
	}
}
