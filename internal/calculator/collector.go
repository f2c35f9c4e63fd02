package calculator

import (
	"github.com/prometheus/client_golang/prometheus"

	"adder/internal/calculation"
)

var (
	leftDesc = prometheus.NewDesc("adder_calculation_left",
		"Left operand of the stored calculation.", nil, nil)
	rightDesc = prometheus.NewDesc("adder_calculation_right",
		"Right operand of the stored calculation.", nil, nil)
	resultDesc = prometheus.NewDesc("adder_calculation_result",
		"Result derived from the stored calculation.", nil, nil)
	signDesc = prometheus.NewDesc("adder_calculation_sign_selected",
		"1 for the selected sign, 0 for the others.", []string{"sign", "operation"}, nil)
)

// StateCollector exposes the live contents of a calculation.Store to
// Prometheus. Every scrape reads one snapshot, so the four series agree.
type StateCollector struct {
	store *calculation.Store
}

func NewStateCollector(store *calculation.Store) *StateCollector {
	return &StateCollector{store: store}
}

func (c *StateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- leftDesc
	ch <- rightDesc
	ch <- resultDesc
	ch <- signDesc
}

func (c *StateCollector) Collect(ch chan<- prometheus.Metric) {
	state := c.store.State()

	ch <- prometheus.MustNewConstMetric(leftDesc, prometheus.GaugeValue, state.Left)
	ch <- prometheus.MustNewConstMetric(rightDesc, prometheus.GaugeValue, state.Right)
	ch <- prometheus.MustNewConstMetric(resultDesc, prometheus.GaugeValue, state.Result())

	for _, sign := range calculation.Signs() {
		selected := 0.0
		if sign == state.Sign {
			selected = 1
		}
		ch <- prometheus.MustNewConstMetric(signDesc, prometheus.GaugeValue, selected, sign.String(), sign.Name())
	}
}
