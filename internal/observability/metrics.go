package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clone_items_total",
			Help: "Total de itens processados, por status final",
		},
		[]string{"status"},
	)

	BatchProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clone_batch_progress_ratio",
			Help: "Fração de itens concluídos no batch atual (0 a 1)",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(ItemsTotal, BatchProgress)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
