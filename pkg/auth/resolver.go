package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RevocationChecker reports whether a session id was invalidated before its
// natural expiry (logout).
type RevocationChecker interface {
	IsRevoked(sessionID string) bool
}

type Resolver struct {
	tokens     TokenConfig
	cookieName string
	revoked    RevocationChecker
	now        func() time.Time
}

func NewResolver(tokens TokenConfig, cookieName string, revoked RevocationChecker) *Resolver {
	return &Resolver{
		tokens:     tokens,
		cookieName: cookieName,
		revoked:    revoked,
		now:        time.Now,
	}
}

// WithClock returns a copy of r that reads the current time from now.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	cp := *r
	cp.now = now
	return &cp
}

// Resolve never fails: any missing, malformed, expired, tampered or revoked
// token yields a guest identity.
func (r *Resolver) Resolve(req *http.Request) Identity {
	raw := r.tokenFromRequest(req)
	if raw == "" {
		return Guest()
	}

	claims, err := r.tokens.ParseToken(raw, r.now())
	if err != nil {
		return Guest()
	}

	role, ok := ParseRole(claims.Role)
	if !ok {
		return Guest()
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil || subject == uuid.Nil {
		return Guest()
	}

	if r.revoked != nil && r.revoked.IsRevoked(claims.ID) {
		return Guest()
	}

	identity := Identity{
		SubjectID: subject,
		Role:      role,
		SessionID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity
}

// tokenFromRequest prefers the session cookie over the Authorization header.
func (r *Resolver) tokenFromRequest(req *http.Request) string {
	if req == nil {
		return ""
	}
	if r.cookieName != "" {
		if cookie, err := req.Cookie(r.cookieName); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	header := req.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
