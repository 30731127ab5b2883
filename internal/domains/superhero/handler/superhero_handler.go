package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"superhero-api/internal/domains/superhero/model"
	"superhero-api/internal/domains/superhero/service"
	"superhero-api/internal/shared/response"
)

type SuperheroHandler struct {
	svc service.Service
}

func NewSuperheroHandler(svc service.Service) *SuperheroHandler {
	return &SuperheroHandler{svc: svc}
}

// Create handles POST /superheroes
func (h *SuperheroHandler) Create(c *gin.Context) {
	var req model.CreateSuperheroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hero, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err, "Failed to create superhero")
		return
	}

	c.JSON(http.StatusCreated, hero)
}

// List handles GET /superheroes
func (h *SuperheroHandler) List(c *gin.Context) {
	heroes, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to fetch superheroes")
		return
	}

	c.JSON(http.StatusOK, heroes)
}

// GetByID handles GET /superheroes/:id
func (h *SuperheroHandler) GetByID(c *gin.Context) {
	hero, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to fetch superhero")
		return
	}

	c.JSON(http.StatusOK, hero)
}

// Update handles PUT /superheroes/:id
func (h *SuperheroHandler) Update(c *gin.Context) {
	var req model.UpdateSuperheroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hero, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err, "Failed to update superhero")
		return
	}

	c.JSON(http.StatusOK, hero)
}

// Delete handles DELETE /superheroes/:id
func (h *SuperheroHandler) Delete(c *gin.Context) {
	hero, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to delete superhero")
		return
	}

	c.JSON(http.StatusOK, model.DeleteSuperheroResponse{
		Message:     "Superhero successfully deleted",
		DeletedHero: hero,
	})
}

// respondError maps the domain error taxonomy onto the wire contract:
// validation -> 400, unknown id -> 404 with the fixed message, anything
// else -> 500 with an opaque body. NotFound is checked before the generic
// store-failure branch so it can never be masked as a 500.
func (h *SuperheroHandler) respondError(c *gin.Context, err error, fallback string) {
	var heroErr *model.SuperheroError

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		msg := err.Error()
		if errors.As(err, &heroErr) {
			msg = heroErr.Message
		}
		response.BadRequest(c, msg)
	case errors.Is(err, model.ErrSuperheroNotFound):
		response.NotFound(c, "Superhero not found")
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Superhero operation failed")
		response.InternalError(c, fallback)
	}
}
