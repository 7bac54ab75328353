package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reparo_pro/internal/auth"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/pkg"
)

const actorContextKey = "actor"

// Authenticate validates the bearer token and stores the caller identity in
// the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			appErr := pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authorization header is required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid token format", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		actor, err := auth.ParseJWT(tokenString)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFrom returns the authenticated caller stored by Authenticate.
func ActorFrom(c *gin.Context) entities.Actor {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}
	}
	actor, _ := v.(entities.Actor)
	return actor
}

// SetActor injects an actor directly; used by handler tests that bypass the
// token roundtrip.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}
