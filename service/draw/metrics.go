package draw

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var drawsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lottery_draws_total",
	Help: "Completed draw attempts by mode and outcome",
}, []string{"mode", "outcome"})

var notifyFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lottery_winner_notify_failures_total",
	Help: "Winner notifications that could not be delivered",
})
