package events

//go:generate mockgen -source=bus.go -destination=mocks/mocks.go -package=mocks Bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	dErrors "contracts/pkg/domain-errors"
)

const tracerName = "contracts/pkg/events"

// Bus delivers a single event to its handlers.
type Bus interface {
	Dispatch(ctx context.Context, event any) error
}

// BusPublisher publishes events through a Bus.
//
// Events of one aggregate are dispatched in the order they were recorded and
// dispatching stops at the first failure. Aggregates are processed one at a
// time unless WithConcurrency allows more.
type BusPublisher struct {
	bus         Bus
	logger      *slog.Logger
	metrics     *Metrics
	tracer      trace.Tracer
	concurrency int
}

var _ Publisher = (*BusPublisher)(nil)

// Option configures the BusPublisher.
type Option func(*BusPublisher)

// WithLogger sets a logger for dispatch failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *BusPublisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(p *BusPublisher) {
		p.metrics = m
	}
}

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(p *BusPublisher) {
		p.tracer = t
	}
}

// WithConcurrency sets how many aggregates are published at once. Values
// below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(p *BusPublisher) {
		if n >= 1 {
			p.concurrency = n
		}
	}
}

// NewBusPublisher creates a BusPublisher.
func NewBusPublisher(bus Bus, opts ...Option) (*BusPublisher, error) {
	if bus == nil {
		return nil, errors.New("event bus is required")
	}
	p := &BusPublisher{
		bus:         bus,
		logger:      slog.New(slog.DiscardHandler),
		tracer:      otel.Tracer(tracerName),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Publish pulls the events of every aggregate before dispatching any of them,
// so aggregates are drained even when dispatching fails.
func (p *BusPublisher) Publish(ctx context.Context, aggregates ...EventsAware) error {
	batches := make([][]any, 0, len(aggregates))
	total := 0
	for _, a := range aggregates {
		if a == nil {
			continue
		}
		pulled := a.PullEvents()
		if len(pulled) == 0 {
			continue
		}
		batches = append(batches, pulled)
		total += len(pulled)
	}
	if total == 0 {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "events.publish", trace.WithAttributes(
		attribute.Int("events.aggregates", len(batches)),
		attribute.Int("events.count", total),
	))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, batch := range batches {
		g.Go(func() error {
			return p.dispatchAll(gctx, batch)
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return err
	}
	return nil
}

// PublishEvent dispatches events in order and stops at the first failure.
func (p *BusPublisher) PublishEvent(ctx context.Context, events ...any) error {
	if len(events) == 0 {
		return nil
	}
	ctx, span := p.tracer.Start(ctx, "events.publish_event", trace.WithAttributes(
		attribute.Int("events.count", len(events)),
	))
	defer span.End()

	if err := p.dispatchAll(ctx, events); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		return err
	}
	return nil
}

func (p *BusPublisher) dispatchAll(ctx context.Context, events []any) error {
	for _, event := range events {
		if event == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := EventName(event)
		if err := p.bus.Dispatch(ctx, event); err != nil {
			if p.metrics != nil {
				p.metrics.IncFailed(name)
			}
			p.logger.ErrorContext(ctx, "failed to dispatch event",
				"event", name,
				"error", err,
			)
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to dispatch event "+name)
		}
		if p.metrics != nil {
			p.metrics.IncPublished(name)
		}
	}
	return nil
}

// EventName returns the event's own name when it implements Named, otherwise
// its Go type.
func EventName(event any) string {
	if n, ok := event.(Named); ok {
		return n.EventName()
	}
	return fmt.Sprintf("%T", event)
}
