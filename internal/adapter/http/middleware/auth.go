package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"taskapp/internal/adapter/http/helper"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

const principalKey = "x-principal"

type principalCtxKey struct{}

const bearerPrefix = "Bearer "

// BearerAuth re-authenticates every request: it verifies the bearer token
// and resolves its subject to a live user. A token whose user no longer
// exists is as unauthorized as no token at all.
func BearerAuth(codec port.TokenCodec, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" {
			helper.SendUnauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, bearerPrefix) {
			helper.SendUnauthorized(c, "invalid authorization format")
			c.Abort()
			return
		}

		subject, err := codec.Verify(strings.TrimPrefix(header, bearerPrefix))

		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			helper.SendUnauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), subject)

		if err != nil {
			// Only a missing user is an auth failure; a broken lookup is
			// the server's problem, not the caller's.
			if errors.Is(err, domain.ErrUserNotFound) {
				helper.SendUnauthorized(c, "unauthorized")
				c.Abort()
				return
			}

			log.Error().Err(err).Str("subject", subject).Msg("principal lookup failed")
			helper.SendInternalError(c)
			c.Abort()
			return
		}

		c.Set(principalKey, &user)

		ctx := context.WithValue(c.Request.Context(), principalCtxKey{}, &user)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func Principal(c *gin.Context) (*domain.User, bool) {
	if value, ok := c.Get(principalKey); ok {
		if user, ok := value.(*domain.User); ok {
			return user, true
		}
	}

	return PrincipalFromContext(c.Request.Context())
}

func PrincipalFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(principalCtxKey{}).(*domain.User)
	return user, ok
}
