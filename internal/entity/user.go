package entity

import (
	"crypto/sha256"
	"encoding/hex"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the per-login state the portal keeps for a bearer token.
type Session struct {
	Token string `json:"-"`
	User  User   `json:"user"`
}

// CacheKey scopes server-side state to this session. It binds the user id to
// the token that presented it, so state loaded with one token is never served
// to another.
func (s Session) CacheKey() string {
	sum := sha256.Sum256([]byte(s.Token))
	return s.User.ID + ":" + hex.EncodeToString(sum[:])
}
