package models

// Role is a player's secret role for the game
type Role string

const (
	// RoleKing is the single protector role
	RoleKing Role = "king"

	// RoleHunter is one of the two adversarial roles
	RoleHunter Role = "hunter"

	// RoleAnimal is the majority faction
	RoleAnimal Role = "animal"
)

// Player represents a seeded roster member of the current game
type Player struct {
	// ID is the stable identifier for the player, generated at lobby seed
	ID string

	// Name is the display name shown to everyone
	Name string

	// LoginID is the credential the player logs in with
	LoginID string

	// PasswordHash is the bcrypt hash of the player's password
	PasswordHash string

	// Role is assigned once at lobby seed and never changes for the game
	Role Role

	// Alive transitions to false at most once, via the hike-end reveal
	Alive bool

	// RoleRevealed transitions to true at most once, via a vote resolution,
	// and is only ever possible for hunters
	RoleRevealed bool
}
