// Package metrics exports kwcheck outcomes as Prometheus counters.
//
//	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer, "")
//	if err != nil {
//		return err
//	}
//	checker := kwcheck.MustNew(required, optional,
//		kwcheck.WithName("signup"),
//		kwcheck.WithObserver(collector),
//	)
//
// Two counters are registered:
//
//	kwcheck_validations_total{checker, result}
//	kwcheck_rejections_total{checker, param, reason}
//
// result is one of ok, missing, unknown, type_mismatch, invalid or error;
// reason is the same value without ok. Parameter names become label values,
// so checkers should not be fed unbounded, caller-chosen names when the
// unknown counter matters.
package metrics
