package roles

import (
	"errors"
	"math/rand"
	"time"
)

// MinPlayers is the smallest roster that can hold one king, two hunters
// and at least one ordinary animal.
const MinPlayers = 4

// ErrNotEnoughPlayers is returned when the roster is too small to deal roles
var ErrNotEnoughPlayers = errors.New("not enough players to assign roles")

// Assignment is the result of dealing roles to a roster
type Assignment struct {
	// KingID is the single king
	KingID string

	// HunterIDs are the two hunters, in assignment order. The first one is
	// the hunter disclosed to the king.
	HunterIDs []string
}

// Assigner deals roles randomly
type Assigner struct {
	random *rand.Rand
}

// Config for the role assigner
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new role assigner
func New(cfg *Config) *Assigner {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Assigner{
		random: random,
	}
}

// Assign deals exactly one king and two hunters over the given player IDs.
// Everyone else is an ordinary animal.
func (a *Assigner) Assign(playerIDs []string) (*Assignment, error) {
	if len(playerIDs) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	shuffled := make([]string, len(playerIDs))
	copy(shuffled, playerIDs)
	a.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return &Assignment{
		KingID:    shuffled[0],
		HunterIDs: []string{shuffled[1], shuffled[2]},
	}, nil
}
