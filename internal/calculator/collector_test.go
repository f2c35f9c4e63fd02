package calculator

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"adder/internal/calculation"
)

func TestStateCollectorFollowsStore(t *testing.T) {
	store := calculation.NewStore(calculation.State{Left: 5, Right: 3, Sign: calculation.Plus})
	collector := NewStateCollector(store)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(collector); err != nil {
		t.Fatalf("registering collector: %v", err)
	}

	store.SetSign(calculation.Times)

	expected := `
# HELP adder_calculation_left Left operand of the stored calculation.
# TYPE adder_calculation_left gauge
adder_calculation_left 5
# HELP adder_calculation_result Result derived from the stored calculation.
# TYPE adder_calculation_result gauge
adder_calculation_result 15
# HELP adder_calculation_right Right operand of the stored calculation.
# TYPE adder_calculation_right gauge
adder_calculation_right 3
# HELP adder_calculation_sign_selected 1 for the selected sign, 0 for the others.
# TYPE adder_calculation_sign_selected gauge
adder_calculation_sign_selected{operation="add",sign="+"} 0
adder_calculation_sign_selected{operation="divide",sign="/"} 0
adder_calculation_sign_selected{operation="multiply",sign="x"} 1
adder_calculation_sign_selected{operation="subtract",sign="-"} 0
`
	if err := promtestutil.GatherAndCompare(reg, strings.NewReader(expected)); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}
}

func TestStateCollectorSeriesCount(t *testing.T) {
	store := calculation.NewStore(calculation.DefaultState())

	if got := promtestutil.CollectAndCount(NewStateCollector(store)); got != 7 {
		t.Fatalf("expected 7 series, got %d", got)
	}
}
