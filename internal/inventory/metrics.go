package inventory

import "github.com/prometheus/client_golang/prometheus"

func RegisterMetrics(reg prometheus.Registerer, s *Store) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_items",
			Help: "Items currently held in the store",
		}, func() float64 { return float64(s.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_rare_items",
			Help: "Entries in the rarely restocked list",
		}, func() float64 { return float64(s.RareLen()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_capacity",
			Help: "Maximum number of items the store accepts",
		}, func() float64 { return float64(s.Cap()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_value",
			Help: "Sum of quantity times unit price over all items",
		}, func() float64 {
			v, _ := s.TotalValue().Float64()
			return v
		}),
	)
}
