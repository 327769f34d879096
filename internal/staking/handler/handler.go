package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"stakepool/internal/platform/metrics"
	"stakepool/internal/platform/middleware"
	"stakepool/internal/staking/models"
	"stakepool/internal/transport/http/shared"
	dErrors "stakepool/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/staking-mocks.go -package=mocks Service

// Service defines the interface for staking pool operations.
type Service interface {
	Stake(ctx context.Context, addr models.Address, amount uint64, periodDays uint32) (models.Stake, error)
	Claim(ctx context.Context, addr models.Address, stakeID uint64) (models.Payout, error)
	EmergencyUnstake(ctx context.Context, addr models.Address, stakeID uint64) (models.Payout, error)
	AddRewards(ctx context.Context, caller models.Address, amount uint64) (uint64, error)
	Pause(ctx context.Context, caller models.Address) error
	Unpause(ctx context.Context, caller models.Address) error
	GrantAdmin(ctx context.Context, caller, newAdmin models.Address) (int, error)
	RevokeAdmin(ctx context.Context, caller, admin models.Address) (int, error)
	TransferOwner(ctx context.Context, caller, newOwner models.Address) error
	UserStakes(ctx context.Context, addr models.Address) ([]models.Stake, error)
	Stats(ctx context.Context) (models.PoolStats, error)
	PreviewReward(ctx context.Context, amount uint64, periodDays uint32) (uint64, error)
}

// Handler handles the staking pool endpoints.
type Handler struct {
	logger       *slog.Logger
	staking      Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new staking Handler.
func New(
	staking Service,
	logger *slog.Logger,
	m *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		staking:      staking,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

// Register registers the pool routes with the chi router. Stats and reward
// preview are public reads; everything else requires a bearer token.
func (h *Handler) Register(r chi.Router) {
	poolRouter := chi.NewRouter()
	poolRouter.Use(middleware.Recovery(h.logger))
	poolRouter.Use(middleware.RequestID)
	poolRouter.Use(middleware.Logger(h.logger))
	poolRouter.Use(middleware.Timeout(10 * time.Second))
	poolRouter.Use(middleware.ContentTypeJSON)
	poolRouter.Use(middleware.LatencyMiddleware(h.metrics))

	poolRouter.Get("/pool/stats", h.handleStats)
	poolRouter.Get("/pool/reward-preview", h.handlePreviewReward)

	poolRouter.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		pr.Post("/pool/stakes", h.handleStake)
		pr.Get("/pool/stakes", h.handleUserStakes)
		pr.Post("/pool/stakes/{id}/claim", h.handleClaim)
		pr.Post("/pool/stakes/{id}/unstake", h.handleEmergencyUnstake)
		pr.Post("/pool/rewards", h.handleAddRewards)
		pr.Post("/pool/pause", h.handlePause)
		pr.Post("/pool/unpause", h.handleUnpause)
		pr.Post("/pool/admins", h.handleGrantAdmin)
		pr.Delete("/pool/admins/{address}", h.handleRevokeAdmin)
		pr.Post("/pool/owner", h.handleTransferOwner)
	})

	r.Mount("/", poolRouter)
}

func (h *Handler) handleStake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req StakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	stake, err := h.staking.Stake(ctx, addr, req.Amount, req.PeriodDays)
	if err != nil {
		h.logFailure(ctx, "stake failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, StakeResponse{Stake: stake})
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	h.handleExit(w, r, h.staking.Claim, "claim failed")
}

func (h *Handler) handleEmergencyUnstake(w http.ResponseWriter, r *http.Request) {
	h.handleExit(w, r, h.staking.EmergencyUnstake, "emergency unstake failed")
}

func (h *Handler) handleExit(
	w http.ResponseWriter,
	r *http.Request,
	exit func(context.Context, models.Address, uint64) (models.Payout, error),
	failureMsg string,
) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	stakeID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid stake id"))
		return
	}

	payout, err := exit(ctx, addr, stakeID)
	if err != nil {
		h.logFailure(ctx, failureMsg, err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, payout)
}

func (h *Handler) handleAddRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req AddRewardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	reserve, err := h.staking.AddRewards(ctx, addr, req.Amount)
	if err != nil {
		h.logFailure(ctx, "add rewards failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, AddRewardsResponse{Added: req.Amount, ReserveTotal: reserve})
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.handlePauseFlip(w, r, h.staking.Pause, "pause failed")
}

func (h *Handler) handleUnpause(w http.ResponseWriter, r *http.Request) {
	h.handlePauseFlip(w, r, h.staking.Unpause, "unpause failed")
}

func (h *Handler) handlePauseFlip(
	w http.ResponseWriter,
	r *http.Request,
	flip func(context.Context, models.Address) error,
	failureMsg string,
) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}
	if err := flip(ctx, addr); err != nil {
		h.logFailure(ctx, failureMsg, err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	count, err := h.staking.GrantAdmin(ctx, addr, models.Address(req.Address))
	if err != nil {
		h.logFailure(ctx, "grant admin failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, AdminResponse{Address: req.Address, AdminCount: count})
}

func (h *Handler) handleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	admin := chi.URLParam(r, "address")
	if admin == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing admin address"))
		return
	}

	if _, err := h.staking.RevokeAdmin(ctx, addr, models.Address(admin)); err != nil {
		h.logFailure(ctx, "revoke admin failed", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTransferOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req AdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Address == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.staking.TransferOwner(ctx, addr, models.Address(req.Address)); err != nil {
		h.logFailure(ctx, "transfer owner failed", err)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUserStakes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, ok := h.caller(w, r)
	if !ok {
		return
	}

	stakes, err := h.staking.UserStakes(ctx, addr)
	if err != nil {
		h.logFailure(ctx, "list stakes failed", err)
		shared.WriteError(w, err)
		return
	}
	if stakes == nil {
		stakes = []models.Stake{}
	}
	shared.WriteJSON(w, http.StatusOK, UserStakesResponse{Stakes: stakes})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.staking.Stats(ctx)
	if err != nil {
		h.logFailure(ctx, "stats failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handlePreviewReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, err := strconv.ParseUint(r.URL.Query().Get("amount"), 10, 64)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid amount"))
		return
	}
	periodDays, err := strconv.ParseUint(r.URL.Query().Get("period_days"), 10, 32)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid period_days"))
		return
	}

	reward, err := h.staking.PreviewReward(ctx, amount, uint32(periodDays))
	if err != nil {
		h.logFailure(ctx, "reward preview failed", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, PreviewRewardResponse{
		Amount:     amount,
		PeriodDays: uint32(periodDays),
		Reward:     reward,
	})
}

// caller pulls the authenticated address out of the context. The auth
// middleware guarantees it is set on authed routes.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (models.Address, bool) {
	addr := middleware.GetAddress(r.Context())
	if addr == "" {
		h.logger.ErrorContext(r.Context(), "address missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(r.Context()),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return models.Address(addr), true
}

func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	logFn := h.logger.WarnContext
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		logFn = h.logger.ErrorContext
	}
	logFn(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
}
