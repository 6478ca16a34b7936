package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	ExceptionsExtracted Counter
	FixesGenerated      Counter

	HttpRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		ExceptionsExtracted: NewPrometheusCounter(
			"exceptions_extracted_total",
			"Exceptions extracted from analyzed log files",
			[]string{"exception_type", "level"},
		),
		FixesGenerated: NewPrometheusCounter(
			"fixes_generated_total",
			"Code fixes generated per exception type",
			[]string{"exception_type", "status"},
		),
		HttpRequests: NewPrometheusCounter(
			"http_requests_total",
			"HTTP API requests",
			[]string{"handler", "status"},
		),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	exceptionsExtracted := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exceptions_extracted_total",
			Help: "Exceptions extracted from analyzed log files",
		}, []string{"exception_type", "level"}),
	}

	fixesGenerated := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fixes_generated_total",
			Help: "Code fixes generated per exception type",
		}, []string{"exception_type", "status"}),
	}

	httpRequests := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP API requests",
		}, []string{"handler", "status"}),
	}

	reg.MustRegister(exceptionsExtracted.counter)
	reg.MustRegister(fixesGenerated.counter)
	reg.MustRegister(httpRequests.counter)

	return &Counters{
		ExceptionsExtracted: exceptionsExtracted,
		FixesGenerated:      fixesGenerated,
		HttpRequests:        httpRequests,
	}
}
