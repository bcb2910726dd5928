package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"opsboard/internal/board"
	"opsboard/internal/pkg/jwt"
	"opsboard/internal/pkg/response"
)

const ActorKey = "actor"

// Actor resolves the name recorded on audit entries: a bearer token, then the
// X-Actor header, then fallback. Nothing is authorized here, but a token that
// fails validation is rejected with 401.
func Actor(tokens *jwt.Service, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := fallback

		if h := c.GetHeader("Authorization"); h != "" {
			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization header")
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
				return
			}
			actor = claims.Actor
		} else if h := strings.TrimSpace(c.GetHeader("X-Actor")); h != "" {
			actor = h
		}

		c.Set(ActorKey, actor)
		c.Request = c.Request.WithContext(board.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
