package isocurve

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	driverLabel  = "driver"
	classLabel   = "class"
	errTypeLabel = "error_type"
)

var (
	boxesClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isocurve_boxes_classified",
		Help: "The number of boxes classified by the subdivision drivers.",
	}, []string{
		driverLabel,
		classLabel,
	})

	boxesSubdivided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isocurve_boxes_subdivided",
		Help: "The number of boxes split into four children.",
	}, []string{
		driverLabel,
	})

	runErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "isocurve_run_errors",
		Help: "The errors that ended or qualified a subdivision run.",
	}, []string{
		driverLabel,
		errTypeLabel,
	})

	runDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "isocurve_run_depth",
		Help:    "The deepest quadtree level reached by a subdivision run.",
		Buckets: prometheus.LinearBuckets(0, 4, 8),
	}, []string{
		driverLabel,
	})
)

func instrumentClassified(driver string, c Class) {
	boxesClassified.With(prometheus.Labels{
		driverLabel: driver,
		classLabel:  c.String(),
	}).Inc()
}

func instrumentSubdivided(driver string) {
	boxesSubdivided.With(prometheus.Labels{
		driverLabel: driver,
	}).Inc()
}

func instrumentRunError(driver string, err error) {
	runErrors.
		With(prometheus.Labels{
			driverLabel:  driver,
			errTypeLabel: errors.Type(err),
		}).
		Inc()
}

func instrumentRunDepth(driver string, depth int) {
	runDepth.With(prometheus.Labels{
		driverLabel: driver,
	}).Observe(float64(depth))
}
