package common

import (
	"github.com/gin-gonic/gin"

	"propflow/internal/shared/authorization"
	"propflow/internal/shared/constants"
)

// ActorFromContext builds the typed actor from the identity keys the auth
// middleware stored on the request context.
func ActorFromContext(c *gin.Context) authorization.Actor {
	return authorization.Actor{
		UserID: c.GetUint(constants.ContextKeyUserID),
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}
}
