// controllers/respond.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-backend/apperr"
	"billing-backend/utils"
)

// respondServiceError translates service error kinds into HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case apperr.IsDuplicateKey(err):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case apperr.IsInsufficientStock(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
