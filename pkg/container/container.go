package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"superhero-api/internal/config"
	"superhero-api/internal/domains/superhero/handler"
	"superhero-api/internal/domains/superhero/repository"
	"superhero-api/internal/domains/superhero/service"
	"superhero-api/internal/infrastructure/database"
)

// Container holds the application's dependency graph. Everything in it is a
// singleton wired once at startup: config, then infrastructure, then
// repository, service and handler.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB // nil when the memory backend is active

	SuperheroRepo    repository.Repository
	SuperheroService service.Service
	SuperheroHandler *handler.SuperheroHandler
}

// NewContainer initializes the dependency graph in order. A failure at any
// step aborts startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initStore(); err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	c.SuperheroService = service.NewSuperheroService(c.SuperheroRepo)
	c.SuperheroHandler = handler.NewSuperheroHandler(c.SuperheroService)

	if cfg.Store.SeedData {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.SuperheroService.Seed(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}

	log.Info().
		Str("backend", cfg.Store.Backend).
		Str("environment", cfg.App.Environment).
		Msg("Container initialized")

	return c, nil
}

// initStore builds the configured repository backend. The memory backend
// needs no infrastructure; postgres connects the pool and bootstraps the
// schema first.
func (c *Container) initStore() error {
	switch c.Config.Store.Backend {
	case config.StorePostgres:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		c.DB = db
		c.SuperheroRepo = repository.NewPostgresRepository(db.Pool)

	default:
		c.SuperheroRepo = repository.NewMemoryRepository()
	}

	return nil
}

// Cleanup releases resources at shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
