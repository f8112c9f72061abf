package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourly/pkg/auth"
	"tourly/pkg/utils"
)

const (
	identityKey = "identity"
	// ReturnToKey holds the path a browser was bounced from on its way to login.
	ReturnToKey = "return_to"
)

type IdentityHandler func(c *gin.Context, identity auth.Identity)

// SessionMiddleware resolves the caller once per request. It never rejects;
// handlers and RequireSession decide what a guest may do.
func SessionMiddleware(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolver.Resolve(c.Request))
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Guest()
}

// WithIdentity adapts a handler that takes the caller explicitly.
func WithIdentity(h IdentityHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, IdentityFrom(c))
	}
}

// RequireSession gates a route group on op. Browsers without a session are
// redirected to loginPath and the original path is kept in the cookie
// session; everything else gets a JSON error.
func RequireSession(op auth.Operation, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		err := auth.Authorize(identity, op)
		if err == nil {
			c.Next()
			return
		}

		if wantsHTML(c.Request) && !identity.IsAuthenticated() {
			target := c.Request.URL.RequestURI()
			session := sessions.Default(c)
			session.Set(ReturnToKey, target)
			if err := session.Save(); err != nil {
				zap.L().Warn("Failed to save return path", zap.Error(err))
			}
			c.Redirect(http.StatusSeeOther, loginPath+"?next="+url.QueryEscape(target))
			c.Abort()
			return
		}

		utils.HandleServiceError(c, err)
		c.Abort()
	}
}

// Authorize rejects the request before its body is read when the caller may
// not perform op. Services check again with the identity they are given.
func Authorize(op auth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(IdentityFrom(c), op); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PopReturnTo returns and clears the remembered return path, if any.
func PopReturnTo(c *gin.Context) string {
	session := sessions.Default(c)
	target, _ := session.Get(ReturnToKey).(string)
	if target == "" {
		return ""
	}
	session.Delete(ReturnToKey)
	if err := session.Save(); err != nil {
		zap.L().Warn("Failed to clear return path", zap.Error(err))
	}
	return target
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
