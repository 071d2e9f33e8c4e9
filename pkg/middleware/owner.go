package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/whiskeynotes/go-whiskey-api/pkg/responses"
)

// OwnerGate answers the single environment question this service has: is the
// current caller the catalog owner? The caller presents X-Owner-Token and the
// gate compares it to the configured value. No token configured, no header,
// or a mismatch all answer "not owner" - the failure default is never admin.
type OwnerGate struct {
	token string
}

func NewOwnerGate(token string) *OwnerGate {
	return &OwnerGate{token: token}
}

// IsOwner reports whether the request carries the owner token.
func (g *OwnerGate) IsOwner(r *http.Request) bool {
	if g.token == "" {
		return false
	}
	header := r.Header.Get("X-Owner-Token")
	if header == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(g.token)) == 1
}

// Require gates a handler behind the owner check.
func (g *OwnerGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var er responses.ErrorResponse
		if !g.IsOwner(r) {
			er.Respond(w, 403, "error", "owner access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
