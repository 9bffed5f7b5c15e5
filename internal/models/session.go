package models

import (
	"time"
)

// Session maps an opaque token to a player identity
type Session struct {
	// Token is the opaque session token handed to the client
	Token string

	// PlayerID is the player this session authenticates
	PlayerID string

	// CreatedAt is when the session was issued
	CreatedAt time.Time
}
