package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/kwcheck"
)

// DefaultNamespace prefixes metric names when NewCollector gets an empty namespace.
const DefaultNamespace = "kwcheck"

// Result label values.
const (
	ResultOK           = "ok"
	ResultMissing      = "missing"
	ResultUnknown      = "unknown"
	ResultTypeMismatch = "type_mismatch"
	ResultInvalid      = "invalid"
	ResultError        = "error"
)

// UnknownParam replaces the param label of unknown-parameter rejections, whose
// names come from callers and are unbounded.
const UnknownParam = "_unknown"

// Collector implements kwcheck.Observer.
type Collector struct {
	validations *prometheus.CounterVec
	rejections  *prometheus.CounterVec
}

var _ kwcheck.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg. If they are
// already registered with reg, the existing ones are reused so several
// collectors may share a registry.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	validations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Validate calls by checker and result.",
		},
		[]string{"checker", "result"},
	)
	rejections := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Rejected Validate calls by checker, parameter and reason.",
		},
		[]string{"checker", "param", "reason"},
	)

	var err error
	if validations, err = register(reg, validations); err != nil {
		return nil, err
	}
	if rejections, err = register(reg, rejections); err != nil {
		return nil, err
	}
	return &Collector{validations: validations, rejections: rejections}, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(reg prometheus.Registerer, namespace string) *Collector {
	c, err := NewCollector(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// ObserveValidation implements kwcheck.Observer.
func (c *Collector) ObserveValidation(checker, param string, err error) {
	result := Result(err)
	c.validations.WithLabelValues(checker, result).Inc()
	if err != nil {
		if result == ResultUnknown {
			param = UnknownParam
		}
		c.rejections.WithLabelValues(checker, param, result).Inc()
	}
}

// Result classifies a Validate error into a result label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, kwcheck.ErrMissingParameter):
		return ResultMissing
	case errors.Is(err, kwcheck.ErrUnknownParameter):
		return ResultUnknown
	case errors.Is(err, kwcheck.ErrTypeMismatch):
		return ResultTypeMismatch
	case errors.Is(err, kwcheck.ErrValidation):
		return ResultInvalid
	default:
		return ResultError
	}
}
