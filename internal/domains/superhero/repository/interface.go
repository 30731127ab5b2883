package repository

import (
	"context"

	"superhero-api/internal/domains/superhero/model"
)

// Repository is the store contract shared by the in-memory and Postgres
// backends. Implementations return model.ErrSuperheroNotFound (possibly
// wrapped) when an id does not resolve; any other failure is a store error.
type Repository interface {
	// Insert persists a fully-formed record. The id must be unique.
	Insert(ctx context.Context, hero *model.Superhero) error

	// List returns all live records ordered by humilityScore descending,
	// ties broken by insertion order.
	List(ctx context.Context) ([]*model.Superhero, error)

	// GetByID returns the record with the given id.
	GetByID(ctx context.Context, id string) (*model.Superhero, error)

	// Update merges the present fields of req over the stored record and
	// returns the result. id and avatar are never altered.
	Update(ctx context.Context, id string, req model.UpdateSuperheroRequest) (*model.Superhero, error)

	// Delete removes the record permanently and returns the removed copy.
	Delete(ctx context.Context, id string) (*model.Superhero, error)

	// Count reports the number of live records (used by seeding).
	Count(ctx context.Context) (int, error)
}
