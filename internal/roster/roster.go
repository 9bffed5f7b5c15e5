package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Entry is one roster member as seeded by the host before the game
type Entry struct {
	// Name is the display name shown to everyone
	Name string `json:"name"`

	// LoginID is the credential the player logs in with
	LoginID string `json:"loginId"`

	// PasswordHash is the bcrypt hash of the player's password
	PasswordHash string `json:"passwordHash"`
}

// Load reads and validates a roster file.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Validate checks a roster for the fields the game needs.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("roster is empty")
	}

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("roster entry %d: name is required", i)
		}
		if e.LoginID == "" {
			return fmt.Errorf("roster entry %d: loginId is required", i)
		}
		if e.PasswordHash == "" {
			return fmt.Errorf("roster entry %d: passwordHash is required", i)
		}
		if seen[e.LoginID] {
			return fmt.Errorf("roster entry %d: duplicate loginId %q", i, e.LoginID)
		}
		seen[e.LoginID] = true
	}

	return nil
}
