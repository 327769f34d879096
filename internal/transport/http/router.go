package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	stakinghandler "stakepool/internal/staking/handler"
)

// NewRouter assembles the public surface: the staking pool endpoints,
// health, metrics, and the dev-only token/faucet endpoints when enabled.
func NewRouter(staking *stakinghandler.Handler, dev *DevHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	if dev != nil {
		dev.Register(r)
	}
	staking.Register(r)

	return r
}
