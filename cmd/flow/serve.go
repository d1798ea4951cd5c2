package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vango-dev/flow/internal/config"
	"github.com/vango-dev/flow/internal/errors"
	"github.com/vango-dev/flow/internal/gallery"
	"github.com/vango-dev/flow/pkg/flow"
	"github.com/vango-dev/flow/pkg/observe"
	"github.com/vango-dev/flow/pkg/vdom"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		port      int
		host      string
		noMetrics bool
		tracing   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over HTTP",
		Long: `Serve every gallery page over HTTP.

Each page shows its rendered output and the warnings it raised.
Warnings are logged, counted in Prometheus and, with tracing enabled,
attached to the request span.

Routes:
  /               page index
  /pages/{name}   one rendered page
  /codes          diagnostic registry as JSON
  /metrics        Prometheus metrics (path from flow.json)

Examples:
  flow serve
  flow serve --port=8080
  flow serve --host=0.0.0.0 --tracing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if noMetrics {
				cfg.Metrics.Enabled = false
			}
			if tracing {
				cfg.Tracing.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			srv := newServer(cfg, logger, prometheus.NewRegistry())

			out := cmd.OutOrStdout()
			printBanner(out)
			info(out, "serving %d pages at %s", len(gallery.List()), cfg.URL())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.listen(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from flow.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from flow.json)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable the metrics endpoint")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace every request with OpenTelemetry")

	return cmd
}

// server serves the gallery.
type server struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observe.Metrics
}

func newServer(cfg *config.Config, logger *slog.Logger, registry *prometheus.Registry) *server {
	s := &server{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
	}
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = observe.NewMetrics(
			observe.WithRegistry(registry),
			observe.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	return s
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	if s.cfg.Tracing.Enabled {
		metricsPath := s.cfg.Metrics.Path
		r.Use(observe.Tracing(
			observe.WithTracerName(s.cfg.Tracing.TracerName),
			observe.WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != metricsPath }),
		))
	}

	r.Get("/", s.handleIndex)
	r.Get("/pages/{name}", s.handlePage)
	r.Get("/codes", s.handleCodes)

	if s.metrics != nil {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *server) listen(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", httpServer.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// sinkFor returns the sink for one request: log, metrics and span.
func (s *server) sinkFor(r *http.Request, page string) flow.Sink {
	logger := s.logger.With(
		slog.String("page", page),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	sinks := []flow.Sink{flow.LogSink(logger), observe.SpanSink(r.Context())}
	if s.metrics != nil {
		sinks = append(sinks, s.metrics)
	}
	return flow.Multi(sinks...)
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := gallery.Document("flow gallery",
		vdom.H1(vdom.Text("flow gallery")),
		vdom.Ul(
			flow.For(flow.Of(gallery.All()),
				func(p *gallery.Page) *vdom.VNode {
					return vdom.Li(vdom.Key(p.Name),
						vdom.A(vdom.Href("/pages/"+p.Name), vdom.Text(p.Title)),
						vdom.Text(": "+p.Description),
					)
				},
				flow.WithSink(s.sinkFor(r, "index")),
			),
		),
		vdom.P(vdom.A(vdom.Href("/codes"), vdom.Text("Diagnostic codes"))),
	)
	s.writeHTML(w, http.StatusOK, doc)
}

func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	page, err := gallery.Get(name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	res, err := page.Render(s.sinkFor(r, page.Name))
	if s.metrics != nil {
		s.metrics.ObserveRender(page.Name, res.Duration, len(res.Warnings), err)
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	sink := flow.WithSink(s.sinkFor(r, page.Name))
	doc := gallery.Document(page.Title,
		vdom.H1(vdom.Text(page.Title)),
		vdom.P(vdom.Text(page.Description)),
		vdom.Section(vdom.Class("demo"), res.Node),
		flow.If(flow.Cond(len(res.Warnings) > 0),
			flow.Then(func() *vdom.VNode {
				return vdom.Section(vdom.Class("warnings"),
					vdom.H2(vdom.Text("Warnings")),
					vdom.Ul(
						flow.For(flow.Of(res.Warnings),
							func(warning flow.Warning) *vdom.VNode {
								return vdom.Li(
									vdom.Code(vdom.Text(warning.Code)),
									vdom.Text(" "+warning.Helper+": "+warning.Message),
								)
							},
							sink,
						),
					),
				)
			}),
			flow.Else(vdom.P(vdom.Text("No warnings."))),
			sink,
		),
		vdom.P(vdom.A(vdom.Href("/"), vdom.Text("All pages"))),
	)
	s.writeHTML(w, http.StatusOK, doc)
}

func (s *server) handleCodes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(registryEntries("")); err != nil {
		s.logger.Error("encode codes", slog.Any("error", err))
	}
}

func (s *server) writeHTML(w http.ResponseWriter, status int, doc *vdom.VNode) {
	html, err := vdom.RenderString(doc)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<!DOCTYPE html>\n" + html))
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", slog.Any("error", err))
	}
	var fe *errors.Error
	if !stderrors.As(err, &fe) {
		fe = errors.Newf(errors.CategoryCLI, "%v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(fe.FormatJSON() + "\n"))
}
