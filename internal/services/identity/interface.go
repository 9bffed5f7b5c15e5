package identity

import "context"

// Service defines the interface for login and session operations
type Service interface {
	// Login verifies a player's credentials and issues a session token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Resolve maps a session token to a player identity
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Logout invalidates a single session token
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// RevokeAll invalidates every outstanding session token
	RevokeAll(ctx context.Context, input *RevokeAllInput) (*RevokeAllOutput, error)
}
