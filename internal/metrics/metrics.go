package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "invgame_"

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	registerOnce sync.Once

	gamesCreated prometheus.Counter
	periodsTotal *prometheus.CounterVec
	exportsTotal *prometheus.CounterVec
)

// Init registers the API metrics. activeSessions is polled for the live
// session gauge; pass the run store's Len.
func Init(activeSessions func() int) {
	registerOnce.Do(func() {
		gamesCreated = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "games_created_total",
				Help: "Total game runs created",
			},
		)
		periodsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "periods_total",
				Help: "Total period steps by result",
			},
			[]string{"result"},
		)
		exportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ledger_exports_total",
				Help: "Total ledger exports by format",
			},
			[]string{"format"},
		)

		prometheus.MustRegister(gamesCreated, periodsTotal, exportsTotal)

		if activeSessions != nil {
			prometheus.MustRegister(prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: metricPrefix + "active_sessions",
					Help: "Live game sessions held in memory",
				},
				func() float64 { return float64(activeSessions()) },
			))
		}
	})
}

func IncGameCreated() {
	if gamesCreated != nil {
		gamesCreated.Inc()
	}
}

func IncPeriod(result string) {
	if periodsTotal != nil {
		periodsTotal.WithLabelValues(result).Inc()
	}
}

func IncExport(format string) {
	if exportsTotal != nil {
		exportsTotal.WithLabelValues(format).Inc()
	}
}
