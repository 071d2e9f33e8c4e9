package models

import (
	"strings"
	"unicode/utf8"
)

// MaxNicknameLength matches the cap on the nickname input.
const MaxNicknameLength = 20

func trim(s string) string {
	return strings.TrimSpace(s)
}

// UserProfile is the locally-chosen identity: a nickname plus the generated
// user id and the two whiskey-id sets. Tried is maintained by the review
// protocol, never edited directly.
type UserProfile struct {
	Nickname string   `json:"nickname"`
	UserID   string   `json:"userId"`
	Tried    []string `json:"tried"`
	Wishlist []string `json:"wishlist"`
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// HasTried reports whether the user has reviewed the whiskey.
func (p *UserProfile) HasTried(whiskeyID string) bool {
	return p != nil && contains(p.Tried, whiskeyID)
}

// HasWishlisted reports whether the whiskey is on the wishlist.
func (p *UserProfile) HasWishlisted(whiskeyID string) bool {
	return p != nil && contains(p.Wishlist, whiskeyID)
}

// MarkTried adds the whiskey to the tried set. Adding an existing member is a
// no-op; it reports whether the profile changed.
func (p *UserProfile) MarkTried(whiskeyID string) bool {
	if contains(p.Tried, whiskeyID) {
		return false
	}
	p.Tried = append(p.Tried, whiskeyID)
	return true
}

// ToggleWishlist flips wishlist membership: add if absent, remove if present.
func (p *UserProfile) ToggleWishlist(whiskeyID string) {
	if contains(p.Wishlist, whiskeyID) {
		next := make([]string, 0, len(p.Wishlist)-1)
		for _, id := range p.Wishlist {
			if id != whiskeyID {
				next = append(next, id)
			}
		}
		p.Wishlist = next
		return
	}
	p.Wishlist = append(p.Wishlist, whiskeyID)
}

// ProfileRequest is the nickname-setup payload. UserID is set only when an
// existing profile is renaming itself.
type ProfileRequest struct {
	Nickname string `json:"nickname"`
	UserID   string `json:"userId,omitempty"`
}

// Validate trims the nickname and reports whether it is 1-20 characters. The
// limit counts characters, not bytes, so multibyte nicknames get the same 20.
func (r *ProfileRequest) Validate() bool {
	r.Nickname = trim(r.Nickname)
	return r.Nickname != "" && utf8.RuneCountInString(r.Nickname) <= MaxNicknameLength
}
