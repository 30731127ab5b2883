package service

import (
	"context"

	"superhero-api/internal/domains/superhero/model"
)

type Service interface {
	// Create validates the input, assigns id and avatar and persists the
	// record. The returned record echoes name, superpower and humilityScore.
	Create(ctx context.Context, req model.CreateSuperheroRequest) (*model.Superhero, error)

	// List returns all records ordered by humilityScore descending.
	List(ctx context.Context) ([]*model.Superhero, error)

	// GetByID returns one record or a not-found error.
	GetByID(ctx context.Context, id string) (*model.Superhero, error)

	// Update merges present fields over the stored record. id and avatar
	// are never altered.
	Update(ctx context.Context, id string, req model.UpdateSuperheroRequest) (*model.Superhero, error)

	// Delete removes the record permanently and returns the removed copy.
	Delete(ctx context.Context, id string) (*model.Superhero, error)

	// Seed inserts the default heroes when the store is empty.
	Seed(ctx context.Context) error
}
