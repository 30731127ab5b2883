package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"superhero-api/internal/domains/superhero/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Insert(ctx context.Context, hero *model.Superhero) error {
	query := `INSERT INTO superheroes (id, name, superpower, "humilityScore", avatar)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		hero.ID, hero.Name, hero.Superpower, hero.HumilityScore, hero.Avatar).
		Scan(&hero.CreatedAt, &hero.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert superhero: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*model.Superhero, error) {
	// created_at/id keep the ordering deterministic for equal scores.
	query := `SELECT id, name, superpower, "humilityScore", avatar, created_at, updated_at
	FROM superheroes
	ORDER BY "humilityScore" DESC, created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list superheroes: %w", err)
	}
	defer rows.Close()

	heroes := make([]*model.Superhero, 0)
	for rows.Next() {
		var h model.Superhero
		if err := rows.Scan(&h.ID, &h.Name, &h.Superpower, &h.HumilityScore, &h.Avatar, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan superhero: %w", err)
		}
		heroes = append(heroes, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate superheroes: %w", err)
	}
	return heroes, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.Superhero, error) {
	query := `SELECT id, name, superpower, "humilityScore", avatar, created_at, updated_at
	FROM superheroes
	WHERE id = $1`

	var h model.Superhero
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&h.ID, &h.Name, &h.Superpower, &h.HumilityScore, &h.Avatar, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSuperheroNotFound
		}
		return nil, fmt.Errorf("failed to get superhero: %w", err)
	}
	return &h, nil
}

// Update merges the present fields in a single UPDATE ... RETURNING
// statement, so the read-modify-write happens atomically inside Postgres and
// concurrent updates to the same id cannot interleave.
func (r *postgresRepository) Update(ctx context.Context, id string, req model.UpdateSuperheroRequest) (*model.Superhero, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	idx := 2
	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", idx))
		args = append(args, *req.Name)
		idx++
	}
	if req.Superpower != nil {
		setClauses = append(setClauses, fmt.Sprintf("superpower = $%d", idx))
		args = append(args, *req.Superpower)
		idx++
	}
	if req.HumilityScore != nil {
		setClauses = append(setClauses, fmt.Sprintf(`"humilityScore" = $%d`, idx))
		args = append(args, *req.HumilityScore)
		idx++
	}

	query := fmt.Sprintf(`UPDATE superheroes SET %s
	WHERE id = $1
	RETURNING id, name, superpower, "humilityScore", avatar, created_at, updated_at`,
		strings.Join(setClauses, ", "))

	var h model.Superhero
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&h.ID, &h.Name, &h.Superpower, &h.HumilityScore, &h.Avatar, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSuperheroNotFound
		}
		return nil, fmt.Errorf("failed to update superhero: %w", err)
	}
	return &h, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (*model.Superhero, error) {
	query := `DELETE FROM superheroes
	WHERE id = $1
	RETURNING id, name, superpower, "humilityScore", avatar, created_at, updated_at`

	var h model.Superhero
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&h.ID, &h.Name, &h.Superpower, &h.HumilityScore, &h.Avatar, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSuperheroNotFound
		}
		return nil, fmt.Errorf("failed to delete superhero: %w", err)
	}
	return &h, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM superheroes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count superheroes: %w", err)
	}
	return count, nil
}
