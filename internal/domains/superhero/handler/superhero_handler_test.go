package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superhero-api/internal/domains/superhero/model"
	"superhero-api/internal/domains/superhero/repository"
	"superhero-api/internal/domains/superhero/service"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSuperheroHandler(service.NewSuperheroService(repository.NewMemoryRepository()))

	router := gin.New()
	superheroes := router.Group("/superheroes")
	{
		superheroes.POST("", h.Create)
		superheroes.GET("", h.List)
		superheroes.GET("/:id", h.GetByID)
		superheroes.PUT("/:id", h.Update)
		superheroes.DELETE("/:id", h.Delete)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createHero(t *testing.T, router *gin.Engine, name, power string, score int) model.Superhero {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/superheroes", gin.H{
		"name":          name,
		"superpower":    power,
		"humilityScore": score,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var hero model.Superhero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hero))
	return hero
}

func listHeroes(t *testing.T, router *gin.Engine) []model.Superhero {
	t.Helper()

	w := doJSON(t, router, http.MethodGet, "/superheroes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var heroes []model.Superhero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &heroes))
	return heroes
}

func TestCreateSuperhero(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPost, "/superheroes", gin.H{
		"name":          "Test Hero",
		"superpower":    "Testing",
		"humilityScore": 7,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var hero model.Superhero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hero))
	assert.NotEmpty(t, hero.ID)
	assert.Equal(t, "Test Hero", hero.Name)
	assert.Equal(t, "Testing", hero.Superpower)
	assert.Equal(t, 7, hero.HumilityScore)
	assert.Contains(t, hero.Avatar, "Test%20Hero")
}

func TestCreateSuperheroValidation(t *testing.T) {
	router := setupTestRouter()

	cases := []gin.H{
		{"name": "Test Hero", "superpower": "Testing", "humilityScore": 11},
		{"name": "Test Hero", "superpower": "Testing", "humilityScore": 0},
		{"name": "Test Hero", "superpower": "Testing"},
		{"name": "", "superpower": "Testing", "humilityScore": 5},
		{"superpower": "Testing", "humilityScore": 5},
	}

	for _, body := range cases {
		w := doJSON(t, router, http.MethodPost, "/superheroes", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v should be rejected", body)
	}

	// No record was persisted by any rejected create.
	assert.Empty(t, listHeroes(t, router))
}

func TestListSuperheroesSortedByScore(t *testing.T) {
	router := setupTestRouter()

	createHero(t, router, "Humble", "Listening", 5)
	createHero(t, router, "Humbler", "Silence", 9)

	heroes := listHeroes(t, router)
	require.Len(t, heroes, 2)
	assert.Equal(t, "Humbler", heroes[0].Name)
	assert.Equal(t, "Humble", heroes[1].Name)
	for i := 1; i < len(heroes); i++ {
		assert.GreaterOrEqual(t, heroes[i-1].HumilityScore, heroes[i].HumilityScore)
	}
}

func TestListSuperheroesEmpty(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodGet, "/superheroes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetSuperheroByID(t *testing.T) {
	router := setupTestRouter()

	created := createHero(t, router, "Test Hero", "Testing", 7)

	w := doJSON(t, router, http.MethodGet, "/superheroes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var hero model.Superhero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hero))
	assert.Equal(t, created.ID, hero.ID)
}

func TestGetSuperheroNotFound(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodGet, "/superheroes/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Superhero not found"}`, w.Body.String())
}

func TestUpdateSuperheroPartial(t *testing.T) {
	router := setupTestRouter()

	created := createHero(t, router, "Test Hero", "Testing", 7)

	w := doJSON(t, router, http.MethodPut, "/superheroes/"+created.ID, gin.H{
		"humilityScore": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Superhero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 3, updated.HumilityScore)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Superpower, updated.Superpower)
	assert.Equal(t, created.Avatar, updated.Avatar)
}

func TestUpdateSuperheroValidation(t *testing.T) {
	router := setupTestRouter()

	created := createHero(t, router, "Test Hero", "Testing", 7)

	w := doJSON(t, router, http.MethodPut, "/superheroes/"+created.ID, gin.H{
		"humilityScore": 11,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The rejected update changed nothing.
	heroes := listHeroes(t, router)
	require.Len(t, heroes, 1)
	assert.Equal(t, 7, heroes[0].HumilityScore)
}

func TestUpdateSuperheroNotFound(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(t, router, http.MethodPut, "/superheroes/missing-id", gin.H{
		"name": "Ghost",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Superhero not found"}`, w.Body.String())
}

func TestDeleteSuperhero(t *testing.T) {
	router := setupTestRouter()

	created := createHero(t, router, "Test Hero", "Testing", 7)

	w := doJSON(t, router, http.MethodDelete, "/superheroes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.DeleteSuperheroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Superhero successfully deleted", resp.Message)
	require.NotNil(t, resp.DeletedHero)
	assert.Equal(t, created.ID, resp.DeletedHero.ID)

	// The id no longer resolves anywhere.
	for _, id := range []string{created.ID} {
		get := doJSON(t, router, http.MethodGet, fmt.Sprintf("/superheroes/%s", id), nil)
		assert.Equal(t, http.StatusNotFound, get.Code)
	}
	assert.Empty(t, listHeroes(t, router))
}

func TestDeleteSuperheroNotFound(t *testing.T) {
	router := setupTestRouter()

	createHero(t, router, "Survivor", "Persistence", 4)

	w := doJSON(t, router, http.MethodDelete, "/superheroes/missing-id", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Superhero not found"}`, w.Body.String())

	// A failed delete does not alter the collection.
	assert.Len(t, listHeroes(t, router), 1)
}
