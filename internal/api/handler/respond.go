package handler

import (
	"net/http"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. The kind is
// included in the body so API clients can distinguish the cases without
// parsing messages.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindReference:
		status = http.StatusUnprocessableEntity
	case apperrors.KindAuthorization:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConstraint:
		// a constraint violation on an upsert path is a bug, not a
		// client error; keep it a 500 but name it
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": err.Error(), "kind": kind.String()})
}
