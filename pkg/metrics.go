package fuzzql

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	nextConnectionID prometheus.CounterFunc

	// Gauges
	openConnections prometheus.GaugeFunc
	variableCount   prometheus.GaugeFunc
	ruleCount       prometheus.GaugeFunc

	// Latency histograms
	statementLatency prometheus.Summary
	inferLatency     prometheus.Summary
}

func newMetrics(engine *Engine) *metrics {
	m := &metrics{
		nextConnectionID: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "next_connection_id",
				Help: "number of connections to this server over its lifetime",
			},
			func() float64 {
				return float64(engine.connectionsEverOpened())
			},
		),
		openConnections: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_connections",
				Help: "number of connections currently open",
			},
			func() float64 {
				return float64(engine.numConnections())
			},
		),
		variableCount: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "variable_count",
				Help: "number of linguistic variables defined",
			},
			func() float64 {
				return float64(engine.numVariables())
			},
		),
		ruleCount: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "rule_count",
				Help: "number of rules defined",
			},
			func() float64 {
				return float64(engine.numRules())
			},
		),
		statementLatency: prometheus.NewSummary(prometheus.SummaryOpts{
			Name: "statement_latency_ns",
			Help: "time from statement receipt to response",
		}),
		inferLatency: prometheus.NewSummary(prometheus.SummaryOpts{
			Name: "infer_latency_ns",
			Help: "time to evaluate firing strengths for an INFER",
		}),
	}

	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(prometheus.NewProcessCollector(os.Getpid(), ""))
	reg.MustRegister(prometheus.NewGoCollector())

	reg.MustRegister(m.nextConnectionID)
	reg.MustRegister(m.openConnections)
	reg.MustRegister(m.variableCount)
	reg.MustRegister(m.ruleCount)
	reg.MustRegister(m.statementLatency)
	reg.MustRegister(m.inferLatency)
	return m
}
