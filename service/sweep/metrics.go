package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sweepRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lottery_sweep_runs_total",
	Help: "Number of completed sweep passes over due lotteries",
})

var sweepDrawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lottery_sweep_draws_total",
	Help: "Number of draws executed by the sweeper",
}, []string{"outcome"})
