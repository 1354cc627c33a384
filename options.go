package herald

import (
	"log/slog"
	"time"

	"github.com/herald-dev/herald/catalog"
	"github.com/herald-dev/herald/dispatch"
	"github.com/herald-dev/herald/message"
	"github.com/herald-dev/herald/observability"
	"github.com/herald-dev/herald/ratelimit"
	"github.com/herald-dev/herald/store"
	"github.com/herald-dev/herald/subscription"
)

// Herald is the root notification dispatcher.
type Herald struct {
	config       Config
	store        store.Store
	catalog      *catalog.Catalog
	catalogExtra []catalog.Entry
	validator    *catalog.Validator
	subSvc       *subscription.Service
	dispatcher   *dispatch.Dispatcher
	builder      *message.Builder
	sig          message.Signature
	metrics      *observability.Metrics
	tracer       *observability.Tracer
	limiter      *ratelimit.Limiter
	logger       *slog.Logger
}

// Option configures a Herald instance.
type Option func(*Herald) error

// New creates a new Herald with the given options.
func New(opts ...Option) (*Herald, error) {
	h := &Herald{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	if h.store == nil {
		return nil, ErrNoStore
	}
	h.wireServices()
	return h, nil
}

// WithStore sets the persistence backend for the Herald instance.
func WithStore(s store.Store) Option {
	return func(h *Herald) error {
		h.store = s
		return nil
	}
}

// WithLogger sets the structured logger for the Herald instance.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Herald) error {
		h.logger = logger
		return nil
	}
}

// WithConcurrency bounds the number of in-flight deliveries per dispatch.
func WithConcurrency(n int) Option {
	return func(h *Herald) error {
		h.config.Concurrency = n
		return nil
	}
}

// WithRequestTimeout sets the HTTP timeout per delivery attempt.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Herald) error {
		h.config.RequestTimeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every delivery.
func WithUserAgent(ua string) Option {
	return func(h *Herald) error {
		h.config.UserAgent = ua
		return nil
	}
}

// WithAppSignature sets the application identity stamped into every embed
// footer and the test message.
func WithAppSignature(sig message.Signature) Option {
	return func(h *Herald) error {
		h.sig = sig
		return nil
	}
}

// WithCatalogEntries adds event catalog entries on top of the built-in
// table. An entry with a built-in name replaces the built-in.
func WithCatalogEntries(entries ...catalog.Entry) Option {
	return func(h *Herald) error {
		h.catalogExtra = append(h.catalogExtra, entries...)
		return nil
	}
}

// WithMetrics enables OpenTelemetry metrics on the dispatch path.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Herald) error {
		h.metrics = m
		return nil
	}
}

// WithTracer enables OpenTelemetry tracing of dispatches and deliveries.
func WithTracer(t *observability.Tracer) Option {
	return func(h *Herald) error {
		h.tracer = t
		return nil
	}
}

// WithRateLimiter enables per-subscription delivery rate limiting.
func WithRateLimiter(l *ratelimit.Limiter) Option {
	return func(h *Herald) error {
		h.limiter = l
		return nil
	}
}
