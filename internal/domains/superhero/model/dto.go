package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSuperheroRequest is the POST /superheroes body. All three fields are
// required; id and avatar are system-assigned and not accepted from callers.
type CreateSuperheroRequest struct {
	Name          string `json:"name" binding:"required"`
	Superpower    string `json:"superpower" binding:"required"`
	HumilityScore int    `json:"humilityScore" binding:"required,min=1,max=10"`
}

func (r CreateSuperheroRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("is required"),
		),
		validation.Field(&r.Superpower,
			validation.Required.Error("is required"),
		),
		validation.Field(&r.HumilityScore,
			validation.Required.Error(scoreRangeMessage()),
			validation.Min(MinHumilityScore).Error(scoreRangeMessage()),
			validation.Max(MaxHumilityScore).Error(scoreRangeMessage()),
		),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// UpdateSuperheroRequest is the PUT /superheroes/:id body. Any subset of
// fields may be supplied; absent fields keep their current values.
type UpdateSuperheroRequest struct {
	Name          *string `json:"name"`
	Superpower    *string `json:"superpower"`
	HumilityScore *int    `json:"humilityScore"`
}

func (r UpdateSuperheroRequest) Validate() error {
	// NilOrNotEmpty lets absent fields through but rejects a supplied empty
	// string and a supplied zero score, which Min/Max alone would skip.
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("must not be empty"),
		),
		validation.Field(&r.Superpower,
			validation.NilOrNotEmpty.Error("must not be empty"),
		),
		validation.Field(&r.HumilityScore,
			validation.NilOrNotEmpty.Error(scoreRangeMessage()),
			validation.Min(MinHumilityScore).Error(scoreRangeMessage()),
			validation.Max(MaxHumilityScore).Error(scoreRangeMessage()),
		),
	)
	if err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

func scoreRangeMessage() string {
	return fmt.Sprintf("must be between %d and %d", MinHumilityScore, MaxHumilityScore)
}

// DeleteSuperheroResponse confirms a delete and echoes the removed record.
type DeleteSuperheroResponse struct {
	Message     string     `json:"message"`
	DeletedHero *Superhero `json:"deletedHero"`
}
