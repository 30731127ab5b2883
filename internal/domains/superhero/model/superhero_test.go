package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarURL(t *testing.T) {
	t.Run("encodes spaces as percent-20", func(t *testing.T) {
		avatar := AvatarURL("Test Hero")

		assert.True(t, strings.HasPrefix(avatar, "https://api.dicebear.com/"))
		assert.Contains(t, avatar, "seed=Test%20Hero")
		assert.NotContains(t, avatar, "+")
	})

	t.Run("stable for identical names", func(t *testing.T) {
		assert.Equal(t, AvatarURL("Captain Humility"), AvatarURL("Captain Humility"))
	})

	t.Run("varies with the name", func(t *testing.T) {
		assert.NotEqual(t, AvatarURL("Captain Humility"), AvatarURL("Modesty Woman"))
	})

	t.Run("escapes reserved characters", func(t *testing.T) {
		avatar := AvatarURL("A&B=C")

		assert.Contains(t, avatar, "seed=A%26B%3DC")
	})
}

func TestCreateSuperheroRequestValidate(t *testing.T) {
	valid := CreateSuperheroRequest{Name: "Test Hero", Superpower: "Testing", HumilityScore: 7}

	t.Run("accepts valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		req := valid
		req.Name = ""
		assert.Error(t, req.Validate())
	})

	t.Run("rejects empty superpower", func(t *testing.T) {
		req := valid
		req.Superpower = ""
		assert.Error(t, req.Validate())
	})

	t.Run("rejects out-of-range scores", func(t *testing.T) {
		for _, score := range []int{0, -1, 11, 100} {
			req := valid
			req.HumilityScore = score
			assert.Error(t, req.Validate(), "score %d should be rejected", score)
		}
	})

	t.Run("failures carry the invalid-input sentinel", func(t *testing.T) {
		req := valid
		req.Name = ""
		assert.ErrorIs(t, req.Validate(), ErrInvalidInput)
	})

	t.Run("accepts boundary scores", func(t *testing.T) {
		for _, score := range []int{1, 10} {
			req := valid
			req.HumilityScore = score
			assert.NoError(t, req.Validate(), "score %d should be accepted", score)
		}
	})
}

func TestUpdateSuperheroRequestValidate(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(n int) *int { return &n }

	t.Run("accepts empty request", func(t *testing.T) {
		req := UpdateSuperheroRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("accepts any valid subset", func(t *testing.T) {
		req := UpdateSuperheroRequest{HumilityScore: intPtr(3)}
		assert.NoError(t, req.Validate())

		req = UpdateSuperheroRequest{Name: strPtr("Renamed"), Superpower: strPtr("Patience")}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects present but invalid fields", func(t *testing.T) {
		assert.Error(t, UpdateSuperheroRequest{Name: strPtr("")}.Validate())
		assert.Error(t, UpdateSuperheroRequest{Superpower: strPtr("")}.Validate())
		assert.Error(t, UpdateSuperheroRequest{HumilityScore: intPtr(11)}.Validate())
		assert.Error(t, UpdateSuperheroRequest{HumilityScore: intPtr(0)}.Validate())
	})

	t.Run("failures carry the invalid-input sentinel", func(t *testing.T) {
		err := UpdateSuperheroRequest{HumilityScore: intPtr(0)}.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
