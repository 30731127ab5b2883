package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"superhero-api/internal/domains/superhero/model"
	"superhero-api/internal/domains/superhero/repository"
)

type superheroService struct {
	repo repository.Repository
}

func NewSuperheroService(repo repository.Repository) Service {
	return &superheroService{repo: repo}
}

func (s *superheroService) Create(ctx context.Context, req model.CreateSuperheroRequest) (*model.Superhero, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hero := &model.Superhero{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Superpower:    req.Superpower,
		HumilityScore: req.HumilityScore,
		Avatar:        model.AvatarURL(req.Name),
	}

	if err := s.repo.Insert(ctx, hero); err != nil {
		return nil, model.NewStoreFailureError("insert", err)
	}

	return hero, nil
}

func (s *superheroService) List(ctx context.Context) ([]*model.Superhero, error) {
	heroes, err := s.repo.List(ctx)
	if err != nil {
		return nil, model.NewStoreFailureError("list", err)
	}
	return heroes, nil
}

func (s *superheroService) GetByID(ctx context.Context, id string) (*model.Superhero, error) {
	hero, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSuperheroNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, model.NewStoreFailureError("get", err)
	}
	return hero, nil
}

func (s *superheroService) Update(ctx context.Context, id string, req model.UpdateSuperheroRequest) (*model.Superhero, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hero, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, model.ErrSuperheroNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, model.NewStoreFailureError("update", err)
	}
	return hero, nil
}

func (s *superheroService) Delete(ctx context.Context, id string) (*model.Superhero, error) {
	hero, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSuperheroNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, model.NewStoreFailureError("delete", err)
	}
	return hero, nil
}

// Seed replays the original demo data set through the normal create path so
// ids and avatars stay system-assigned. A non-empty store is left untouched.
func (s *superheroService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return model.NewStoreFailureError("count", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []model.CreateSuperheroRequest{
		{Name: "Captain Humility", Superpower: "Self-awareness", HumilityScore: 10},
		{Name: "Modesty Woman", Superpower: "Power Reflection", HumilityScore: 9},
		{Name: "Honest Arrow", Superpower: "Truth Perception", HumilityScore: 8},
	}

	for _, req := range defaults {
		if _, err := s.Create(ctx, req); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(defaults)).Msg("Seeded default superheroes")
	return nil
}
