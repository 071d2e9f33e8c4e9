package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ownerRequest(token string) *http.Request {
	r := httptest.NewRequest("GET", "/api/owner", nil)
	if token != "" {
		r.Header.Set("X-Owner-Token", token)
	}
	return r
}

func TestOwnerGate_MatchingToken(t *testing.T) {
	g := NewOwnerGate("secret")
	assert.True(t, g.IsOwner(ownerRequest("secret")))
}

func TestOwnerGate_FailureDefaultsToNotOwner(t *testing.T) {
	g := NewOwnerGate("secret")
	assert.False(t, g.IsOwner(ownerRequest("")))
	assert.False(t, g.IsOwner(ownerRequest("wrong")))

	// No token configured at all can never answer "owner".
	unset := NewOwnerGate("")
	assert.False(t, unset.IsOwner(ownerRequest("")))
	assert.False(t, unset.IsOwner(ownerRequest("secret")))
}

func TestOwnerGate_RequireBlocksNonOwners(t *testing.T) {
	g := NewOwnerGate("secret")
	called := false
	handler := g.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, ownerRequest("wrong"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, ownerRequest("secret"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
