package httpapi

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	gameService "github.com/jihoonmoon/sanyang/internal/services/game"
	identityService "github.com/jihoonmoon/sanyang/internal/services/identity"
)

// Handler serves the single-envelope JSON API both clients poll.
type Handler struct {
	identityService identityService.Service
	gameService     gameService.Service
	hostPin         string
	logger          *zap.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.IdentityService == nil {
		return nil, ErrNilIdentityService
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.HostPin == "" {
		return nil, ErrEmptyHostPin
	}

	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	return &Handler{
		identityService: cfg.IdentityService,
		gameService:     cfg.GameService,
		hostPin:         cfg.HostPin,
		logger:          cfg.Logger,
	}, nil
}

// Routes builds the router. One POST endpoint carries every action; the
// web clients send the envelope with a text/plain content type, so the
// body is decoded as JSON regardless of the header.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.logger))

	r.Post("/api", h.handleAPI)
	r.Get("/healthz", h.handleHealthz)

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

func (h *Handler) handleAPI(w http.ResponseWriter, req *http.Request) {
	var envelope request
	if err := json.NewDecoder(req.Body).Decode(&envelope); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "invalid request body",
		})
		return
	}

	body, err := h.dispatch(req, &envelope)
	if err != nil {
		h.writeError(w, err)
		return
	}

	body["ok"] = true
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) dispatch(req *http.Request, envelope *request) (map[string]any, error) {
	ctx := req.Context()

	switch envelope.Action {
	case "playerLogin":
		return h.playerLogin(ctx, envelope)
	case "playerGetMe":
		return h.playerGetMe(ctx, envelope)
	case "playerLogout":
		return h.playerLogout(ctx, envelope)
	case "playerSubmitHunt":
		return h.playerSubmitHunt(ctx, envelope)
	case "playerSubmitProtect":
		return h.playerSubmitProtect(ctx, envelope)
	case "playerSubmitVote1":
		return h.playerSubmitVote(ctx, envelope, 1)
	case "playerSubmitVote2":
		return h.playerSubmitVote(ctx, envelope, 2)
	}

	if err := h.checkHostPin(envelope); err != nil {
		return nil, err
	}

	switch envelope.Action {
	case "hostGetGame":
		return h.hostGetGame(ctx)
	case "hostSetStatus":
		return h.hostSetStatus(ctx, envelope)
	case "hostGetActions":
		return h.hostGetActions(ctx)
	case "hostGetVotes":
		return h.hostGetVotes(ctx)
	case "hostReveal":
		return h.hostReveal(ctx)
	case "hostFinalizeVote1":
		return h.hostFinalizeVote1(ctx)
	case "hostFinalizeVote2":
		return h.hostFinalizeVote2(ctx)
	case "hostResetLobby":
		return h.hostResetLobby(ctx)
	}

	return nil, ErrUnknownAction
}

func (h *Handler) checkHostPin(envelope *request) error {
	switch envelope.Action {
	case "hostGetGame", "hostSetStatus", "hostGetActions", "hostGetVotes",
		"hostReveal", "hostFinalizeVote1", "hostFinalizeVote2", "hostResetLobby":
	default:
		return ErrUnknownAction
	}

	if subtle.ConstantTimeCompare([]byte(envelope.HostPin), []byte(h.hostPin)) != 1 {
		return ErrInvalidHostPin
	}

	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError turns service errors into the {ok:false, error} shape. Rule
// violations stay HTTP 200; the clients switch on the ok field.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var identityErr identityService.IdentityError
	var gameErr gameService.GameError
	var handlerErr HandlerError

	status := http.StatusOK
	message := err.Error()

	switch {
	case errors.As(err, &identityErr), errors.As(err, &gameErr), errors.As(err, &handlerErr):
	case errors.Is(err, gameRepo.ErrGameNotFound):
		message = ErrGameNotSeeded.Error()
	default:
		h.logger.Error("request failed", zap.Error(err))
		status = http.StatusInternalServerError
		message = "internal error"
	}

	h.writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": message,
	})
}
