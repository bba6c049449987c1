package featuretoggle

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	dErrors "contracts/pkg/domain-errors"
	pstrings "contracts/pkg/platform/strings"
)

const (
	outcomeEnabled      = "enabled"
	outcomeDisabled     = "disabled"
	outcomeQuotaReached = "quota_reached"
	outcomeMissing      = "missing"
	outcomeError        = "error"
)

// Checker answers EnabledChecker over an AvailableTogglesQuery.
// Concurrent lookups share one in-flight query.
type Checker struct {
	query   AvailableTogglesQuery
	logger  *slog.Logger
	metrics *Metrics
	group   singleflight.Group
}

var _ EnabledChecker = (*Checker)(nil)

// Option configures the Checker.
type Option func(*Checker)

// WithLogger sets a logger for query failures and denied checks.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

// NewChecker creates a Checker.
func NewChecker(query AvailableTogglesQuery, opts ...Option) (*Checker, error) {
	if query == nil {
		return nil, errors.New("available toggles query is required")
	}
	c := &Checker{
		query:  query,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IsFeatureEnabled reports whether feature exists with an explicit
// StatusEnabled and, for quotable toggles, has quota left.
// Surrounding whitespace in feature and in toggle types is ignored; matching
// is otherwise exact.
func (c *Checker) IsFeatureEnabled(ctx context.Context, feature string) (bool, error) {
	toggles, err := c.load(ctx)
	if err != nil {
		c.incCheck(outcomeError)
		return false, err
	}

	feature = strings.TrimSpace(feature)
	for _, t := range toggles {
		if strings.TrimSpace(t.Type()) != feature {
			continue
		}
		outcome := evaluate(t)
		c.incCheck(outcome)
		if outcome != outcomeEnabled {
			c.logger.DebugContext(ctx, "feature toggle denied",
				"feature", feature,
				"status", t.Status().String(),
				"outcome", outcome,
			)
		}
		return outcome == outcomeEnabled, nil
	}

	c.incCheck(outcomeMissing)
	return false, nil
}

// EnabledFeatures lists the types of every enabled toggle, without duplicates,
// in query order.
func (c *Checker) EnabledFeatures(ctx context.Context) ([]string, error) {
	toggles, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(toggles))
	for _, t := range toggles {
		if evaluate(t) == outcomeEnabled {
			types = append(types, t.Type())
		}
	}
	return pstrings.UniqueTrimmed(types), nil
}

// load shares one in-flight query between concurrent callers. The query runs
// detached from any single caller's cancellation; each caller still stops
// waiting when its own ctx is done.
func (c *Checker) load(ctx context.Context) ([]FeatureToggle, error) {
	queryCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan("all", func() (any, error) {
		start := time.Now()
		toggles, err := c.query.FindAllFeatureToggles(queryCtx)
		if c.metrics != nil {
			c.metrics.ObserveQuery(time.Since(start).Seconds())
		}
		return toggles, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		if c.metrics != nil {
			c.metrics.IncQueryError()
		}
		c.logger.ErrorContext(ctx, "failed to query available feature toggles", "error", res.Err)
		return nil, dErrors.Wrap(res.Err, dErrors.CodeInternal, "failed to query available feature toggles")
	}
	toggles, _ := res.Val.([]FeatureToggle)
	return toggles, nil
}

func evaluate(t FeatureToggle) string {
	if t.Status() != StatusEnabled {
		if t.Status() == StatusQuotaReached {
			return outcomeQuotaReached
		}
		return outcomeDisabled
	}
	if q, ok := t.(Quotable); ok && q.IsQuotaReached() {
		return outcomeQuotaReached
	}
	return outcomeEnabled
}

func (c *Checker) incCheck(outcome string) {
	if c.metrics != nil {
		c.metrics.IncCheck(outcome)
	}
}
