// Package observe connects control-flow diagnostics to Prometheus and
// OpenTelemetry.
//
// Metrics and SpanSink are flow.Sink implementations. Combine them with
// flow.Multi to log, count and trace the same warnings:
//
//	metrics := observe.NewMetrics()
//
//	r := chi.NewRouter()
//	r.Use(observe.Tracing())
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    sink := flow.Multi(flow.LogSink(logger), metrics, observe.SpanSink(r.Context()))
//	    node := flow.If(flow.Cond(ok), flow.Then("ready"), flow.WithSink(sink))
//	    vdom.RenderHTML(w, node)
//	})
//	r.Handle("/metrics", promhttp.Handler())
//
// # Metrics
//
//   - flow_warnings_total{helper,code}
//   - flow_page_renders_total{page,status}
//   - flow_page_render_duration_seconds{page}
//
// # Tracing
//
// Tracing starts one server span per request using the global tracer
// provider unless WithTracerProvider is given. SpanSink records each warning
// as a "flow.warning" event with flow.code, flow.helper and flow.message
// attributes.
package observe
