package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"stakepool/internal/jwtauth"
	"stakepool/internal/platform/middleware"
	"stakepool/internal/staking/models"
	"stakepool/internal/staking/service"
	"stakepool/internal/transport/http/shared"
	dErrors "stakepool/pkg/domain-errors"
)

// DevHandler exposes the development-only endpoints: token issuance for an
// arbitrary address and a faucet minting from the treasury. Only wired when
// DEV_MODE=true; production token issuance belongs to an external identity
// provider.
type DevHandler struct {
	logger   *slog.Logger
	jwt      *jwtauth.JWTService
	staking  *service.Service
	tokenTTL time.Duration
}

// NewDevHandler creates the dev endpoints handler.
func NewDevHandler(jwt *jwtauth.JWTService, staking *service.Service, logger *slog.Logger) *DevHandler {
	return &DevHandler{
		logger:   logger,
		jwt:      jwt,
		staking:  staking,
		tokenTTL: 24 * time.Hour,
	}
}

// Register mounts the dev routes.
func (h *DevHandler) Register(r chi.Router) {
	r.Post("/auth/token", h.handleIssueToken)
	r.Post("/faucet", h.handleFaucet)
}

type issueTokenRequest struct {
	Address string `json:"address"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

func (h *DevHandler) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	token, err := h.jwt.GenerateAccessToken(req.Address, h.tokenTTL)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to issue token", "error", err.Error())
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to issue token"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, issueTokenResponse{Token: token})
}

type faucetRequest struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

type faucetResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

func (h *DevHandler) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req faucetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" || req.Amount == 0 {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	balance, err := h.staking.MintTo(r.Context(), models.Address(req.Address), req.Amount)
	if err != nil {
		h.logger.WarnContext(r.Context(), "faucet mint failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, faucetResponse{Address: req.Address, Balance: balance})
}
