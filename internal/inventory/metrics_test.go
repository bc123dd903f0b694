package inventory

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gaugeValues(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] = m.GetGauge().GetValue()
		}
	}
	return out
}

func TestRegisterMetrics(t *testing.T) {
	s := New(10)
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg, s)

	_ = s.Insert(1, "Basmati Rice", 50, dec("75.50"))
	_ = s.Insert(2, "Toor Dal", 30, dec("120.00"))
	_ = s.AddRareItem(107, 2)

	got := gaugeValues(t, reg)
	want := map[string]float64{
		"inventory_items":      2,
		"inventory_rare_items": 1,
		"inventory_capacity":   10,
		"inventory_value":      7375,
	}
	for name, v := range want {
		if got[name] != v {
			t.Fatalf("%s=%v want=%v", name, got[name], v)
		}
	}

	_, _ = s.Delete(2)
	if v := gaugeValues(t, reg)["inventory_items"]; v != 1 {
		t.Fatalf("inventory_items=%v after delete", v)
	}
}
