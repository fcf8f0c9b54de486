package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maxpoletaev/kvdns/failover"
)

const namespace = "kvdns"

var _ failover.Observer = (*Collector)(nil)

// Collector exposes failover client activity as Prometheus metrics.
type Collector struct {
	attempts  *prometheus.CounterVec
	failovers *prometheus.CounterVec
	exhausted *prometheus.CounterVec
}

// New creates the collector and registers its metrics in reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Number of store operation attempts by result.",
		}, []string{"op", "result"}),

		failovers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failovers_total",
			Help:      "Number of completed failovers by target node.",
		}, []string{"node"}),

		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_retries_exhausted_total",
			Help:      "Number of operations that failed after all attempts.",
		}, []string{"op"}),
	}

	for _, col := range []prometheus.Collector{c.attempts, c.failovers, c.exhausted} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Collector) ObserveAttempt(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	c.attempts.WithLabelValues(op, result).Inc()
}

func (c *Collector) ObserveFailover(_, to failover.Node) {
	c.failovers.WithLabelValues(to.Addr()).Inc()
}

func (c *Collector) ObserveExhausted(op string) {
	c.exhausted.WithLabelValues(op).Inc()
}
