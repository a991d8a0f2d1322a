package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dayboard/dayboard_backend/internal/dto"
	"github.com/dayboard/dayboard_backend/internal/middleware"
)

// requireAuth fetches the request's AuthContext and rejects anonymous
// callers. The auth middleware never aborts a credential-less request, so
// every handler that needs a signed-in user goes through this check.
func requireAuth(c *gin.Context) (middleware.AuthContext, bool) {
	auth := middleware.GetAuthFromContext(c)
	if !auth.Authenticated {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
		return middleware.Anonymous, false
	}
	return auth, true
}

// parseIDParam parses a numeric path parameter, rejecting the request with
// 400 when it is not an integer.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}
