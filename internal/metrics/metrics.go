// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insumos_submissions_total",
		Help: "Envíos de recepciones/entregas por tipo y resultado.",
	}, []string{"kind", "status"})

	recoveryCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insumos_recovery_created_total",
		Help: "Registros de inventario creados por la recuperación automática.",
	})
)

// CountSubmission registra el resultado de un envío.
func CountSubmission(kind, status string) {
	submissionsTotal.WithLabelValues(kind, status).Inc()
}

// CountRecoveryCreated registra un alta de inventario por recuperación.
func CountRecoveryCreated() {
	recoveryCreatedTotal.Inc()
}
