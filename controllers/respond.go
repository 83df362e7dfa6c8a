package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/apperrors"
)

// respondError translates internal validation codes into their user-facing
// messages, writes client errors with their status, and hides everything
// else behind a 500.
func respondError(c *gin.Context, err error) {
	translated := apperrors.Translate(err)
	if clientErr, ok := apperrors.AsClientError(translated); ok {
		c.JSON(clientErr.Status, gin.H{"error": clientErr.Message})
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// respondBindError maps a JSON binding failure onto the operation's domain
// errors: a wrong-typed field surfaces the operation's data-type code,
// anything else is a plain bad-request.
func respondBindError(c *gin.Context, err error, invalidType error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		respondError(c, invalidType)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
}
