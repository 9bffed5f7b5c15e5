package httpapi

import (
	"go.uber.org/zap"

	gameService "github.com/jihoonmoon/sanyang/internal/services/game"
	identityService "github.com/jihoonmoon/sanyang/internal/services/identity"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// Service dependencies
	IdentityService identityService.Service
	GameService     gameService.Service

	// HostPin guards every host action
	HostPin string

	// Logger for request logging
	Logger *zap.Logger
}

// request is the single envelope every client call arrives in. The action
// field selects the operation; the rest are filled per action.
type request struct {
	Action   string `json:"action"`
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Token    string `json:"token"`
	TargetID string `json:"targetId"`
	Reason   string `json:"reason"`
	HostPin  string `json:"hostPin"`
	Status   string `json:"status"`
}
