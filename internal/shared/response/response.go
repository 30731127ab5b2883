package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body shape for 4xx results, e.g.
// {"message": "Superhero not found"}.
type Message struct {
	Message string `json:"message"`
}

// Opaque is the body shape for 5xx results. It carries a generic failure
// description and never the underlying driver error.
type Opaque struct {
	Error string `json:"error"`
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Message{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Message{Message: message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Opaque{Error: message})
}
