package trace

import (
	"context"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header carries the trace id across every hop of the chain.
const Header = "X-Trace-Id"

type ctxKey struct{}

// Middleware reads the inbound trace id, generating one when the
// header is absent, and threads it through the request context and the
// response header. Generation happens only here, at the boundary; every
// later hop forwards the id unchanged.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(With(c.Request.Context(), id))
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the trace id carried by ctx, or "" if none was set.
func ID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
