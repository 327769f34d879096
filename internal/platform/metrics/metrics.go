package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the staking pool. All helper methods are
// nil-safe so tests can pass a nil *Metrics without touching the global
// prometheus registry.
type Metrics struct {
	// Stake lifecycle
	StakesCreated prometheus.Counter
	Exits         *prometheus.CounterVec // outcome: "claimed", "emergency"

	// Value movement
	RewardsDistributed prometheus.Counter
	TotalStaked        prometheus.Gauge
	ReserveBalance     prometheus.Gauge

	// Pool state
	PoolPaused prometheus.Gauge

	// Latency of pool operations by name
	OperationDuration *prometheus.HistogramVec

	// HTTP request latency, observed by middleware
	RequestDuration prometheus.Histogram
}

// New creates and registers all staking pool metrics.
func New() *Metrics {
	return &Metrics{
		StakesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stakepool_stakes_created_total",
			Help: "Total number of stakes created",
		}),
		Exits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "stakepool_stake_exits_total",
			Help: "Total stake exits by outcome",
		}, []string{"outcome"}),
		RewardsDistributed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stakepool_rewards_distributed_total",
			Help: "Cumulative reward value paid out, in base units",
		}),
		TotalStaked: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "stakepool_total_staked",
			Help: "Current sum of unclaimed stake principals, in base units",
		}),
		ReserveBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "stakepool_reserve_balance",
			Help: "Current reward reserve balance, in base units",
		}),
		PoolPaused: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "stakepool_paused",
			Help: "1 when new stakes are blocked, 0 otherwise",
		}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stakepool_operation_duration_seconds",
			Help:    "Duration of pool operations by name",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}, []string{"operation"}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "stakepool_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementStakesCreated records a new stake.
func (m *Metrics) IncrementStakesCreated() {
	if m != nil {
		m.StakesCreated.Inc()
	}
}

// IncrementExit records a claim or emergency unstake.
func (m *Metrics) IncrementExit(outcome string) {
	if m != nil {
		m.Exits.WithLabelValues(outcome).Inc()
	}
}

// AddRewardsDistributed accumulates paid-out rewards.
func (m *Metrics) AddRewardsDistributed(amount uint64) {
	if m != nil {
		m.RewardsDistributed.Add(float64(amount))
	}
}

// SetTotalStaked mirrors the pool's total_staked aggregate.
func (m *Metrics) SetTotalStaked(amount uint64) {
	if m != nil {
		m.TotalStaked.Set(float64(amount))
	}
}

// SetReserveBalance mirrors the reward reserve balance.
func (m *Metrics) SetReserveBalance(amount uint64) {
	if m != nil {
		m.ReserveBalance.Set(float64(amount))
	}
}

// SetPaused mirrors the pause flag.
func (m *Metrics) SetPaused(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.PoolPaused.Set(1)
	} else {
		m.PoolPaused.Set(0)
	}
}

// ObserveOperation records the duration of a pool operation.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveRequest records the duration of an HTTP request.
func (m *Metrics) ObserveRequest(d time.Duration) {
	if m != nil {
		m.RequestDuration.Observe(d.Seconds())
	}
}
