/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package metrics holds the Prometheus collectors shared by the front ends.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	reportsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swisstd_reports_served_total",
			Help: "Reports produced, by report and outcome.",
		},
		[]string{"report", "status"},
	)

	engineLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swisstd_engine_duration_seconds",
			Help:    "Time spent computing standings, team scores and prizes.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"engine"},
	)
)

// ReportServed counts one finished report.
func ReportServed(report string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	reportsServed.WithLabelValues(report, status).Inc()
}

// ObserveEngine records the time since start against engine.
func ObserveEngine(engine string, start time.Time) {
	engineLatency.WithLabelValues(engine).Observe(time.Since(start).Seconds())
}
