package supervisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var workersRunning = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "lottery_supervisor_workers_running",
	Help: "Number of worker processes currently running",
})

var workersFailed = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "lottery_supervisor_workers_failed",
	Help: "Number of tenants parked for rejected bot credentials",
})

var workerRestartsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lottery_supervisor_worker_restarts_total",
	Help: "Number of worker restarts after unexpected exits",
})

var workerCredentialFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lottery_supervisor_worker_credential_failures_total",
	Help: "Number of workers stopped for rejected bot credentials",
})
