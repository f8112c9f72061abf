package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourly/pkg/utils"
)

const msgInvalidRequest = "Invalid request format"

// pathID parses the :id segment and answers 400 itself when it is not a UUID.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{
			Error:   "Invalid id",
			Code:    string(utils.KindValidation),
			Field:   "id",
			TraceID: c.GetString("trace_id"),
		})
		return uuid.Nil, false
	}
	return id, true
}
