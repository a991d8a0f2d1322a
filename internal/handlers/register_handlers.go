package handlers

import (
	"github.com/gin-gonic/gin"

	portsrepo "github.com/dayboard/dayboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dayboard/dayboard_backend/internal/core/ports/services"
	"github.com/dayboard/dayboard_backend/internal/middleware"
	"github.com/dayboard/dayboard_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	revoker portsrepo.TokenRevoker,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes. refresh-token stays here because the
	// auth middleware only accepts access tokens.
	registerAuthRoutes(r, services.Auth)

	// Everything below resolves the Authorization header into an
	// AuthContext. Anonymous requests still reach the handlers, which all
	// re-check and reject them individually.
	authed := r.Group("/", middleware.AuthMiddleware(cfg.JWTSecret, revoker))
	registerLogoutRoute(authed, services.Auth)
	registerAccountRoutes(authed, services.User)
	registerReadingListRoutes(authed, services.ReadingList)
	registerTaskRoutes(authed, services.Task)
	registerMovieRoutes(authed, services.Movie)
	registerQuickNoteRoutes(authed, services.QuickNote)
}
