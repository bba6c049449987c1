package featuretoggle_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dErrors "contracts/pkg/domain-errors"
	"contracts/pkg/featuretoggle"
	"contracts/pkg/featuretoggle/mocks"
)

// =============================================================================
// Checker Test Suite
// =============================================================================
// Justification for unit tests: the checker decides feature access from the
// toggle list alone. Tests cover every status, quota handling, query failure
// propagation and metric counting.

type CheckerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	query   *mocks.MockAvailableTogglesQuery
	metrics *featuretoggle.Metrics
	checker *featuretoggle.Checker
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerSuite))
}

func (s *CheckerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.query = mocks.NewMockAvailableTogglesQuery(s.ctrl)
	s.metrics = featuretoggle.NewMetricsWith(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var err error
	s.checker, err = featuretoggle.NewChecker(s.query,
		featuretoggle.WithLogger(logger),
		featuretoggle.WithMetrics(s.metrics),
	)
	s.Require().NoError(err)
}

func (s *CheckerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func intPtr(v int) *int { return &v }

func (s *CheckerSuite) TestNewChecker() {
	s.Run("nil query returns error", func() {
		_, err := featuretoggle.NewChecker(nil)
		s.Error(err)
		s.Contains(err.Error(), "available toggles query is required")
	})

	s.Run("works without options", func() {
		c, err := featuretoggle.NewChecker(s.query)
		s.Require().NoError(err)
		s.NotNil(c)
	})
}

func (s *CheckerSuite) TestIsFeatureEnabled() {
	toggles := []featuretoggle.FeatureToggle{
		featuretoggle.NewToggle("gps", featuretoggle.StatusEnabled),
		featuretoggle.NewToggle("reports", featuretoggle.StatusDisabled),
		featuretoggle.NewToggle("invoices", featuretoggle.StatusUnpaid),
		featuretoggle.NewToggle("fleet", featuretoggle.StatusUnavailable),
		featuretoggle.NewQuotableToggle("users", intPtr(5), 2, featuretoggle.StatusEnabled),
		featuretoggle.NewQuotableToggle("vehicles", intPtr(3), 3, featuretoggle.StatusEnabled),
		featuretoggle.NewQuotableToggle("drivers", nil, 500, featuretoggle.StatusEnabled),
		featuretoggle.NewQuotableToggle("trailers", nil, 0, featuretoggle.StatusQuotaReached),
	}

	tests := []struct {
		feature string
		want    bool
	}{
		{"gps", true},
		{" gps ", true},
		{"GPS", false},
		{"reports", false},
		{"invoices", false},
		{"fleet", false},
		{"users", true},
		{"vehicles", false},
		{"drivers", true},
		{"trailers", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		s.Run(tt.feature, func() {
			s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).Return(toggles, nil)
			got, err := s.checker.IsFeatureEnabled(context.Background(), tt.feature)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}

	s.Equal(4.0, testutil.ToFloat64(s.metrics.Checks.WithLabelValues("enabled")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Checks.WithLabelValues("missing")))
}

func (s *CheckerSuite) TestQueryFailure() {
	s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).Return(nil, errors.New("db down"))

	got, err := s.checker.IsFeatureEnabled(context.Background(), "gps")
	s.Require().Error(err)
	s.False(got)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Contains(err.Error(), "db down")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.QueryErrors))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Checks.WithLabelValues("error")))
}

func (s *CheckerSuite) TestEnabledFeatures() {
	s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).Return([]featuretoggle.FeatureToggle{
		featuretoggle.NewToggle("gps", featuretoggle.StatusEnabled),
		featuretoggle.NewToggle("reports", featuretoggle.StatusDisabled),
		featuretoggle.NewQuotableToggle("users", intPtr(1), 1, featuretoggle.StatusEnabled),
		featuretoggle.NewToggle("gps", featuretoggle.StatusEnabled),
		featuretoggle.NewToggle("fuel", ""),
	}, nil)

	got, err := s.checker.EnabledFeatures(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"gps", "fuel"}, got)
}

func (s *CheckerSuite) TestEmptyToggleList() {
	s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).Return(nil, nil).Times(2)

	enabled, err := s.checker.IsFeatureEnabled(context.Background(), "gps")
	s.Require().NoError(err)
	s.False(enabled)

	features, err := s.checker.EnabledFeatures(context.Background())
	s.Require().NoError(err)
	s.Empty(features)
}

func (s *CheckerSuite) TestPaddedToggleTypesMatch() {
	toggles := []featuretoggle.FeatureToggle{
		featuretoggle.NewToggle(" gps ", featuretoggle.StatusEnabled),
	}
	s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).Return(toggles, nil).Times(2)

	features, err := s.checker.EnabledFeatures(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"gps"}, features)

	enabled, err := s.checker.IsFeatureEnabled(context.Background(), "gps")
	s.Require().NoError(err)
	s.True(enabled, "a listed feature must also report enabled")
}

func (s *CheckerSuite) TestCanceledCallerDoesNotFailSharedQuery() {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	s.query.EXPECT().FindAllFeatureToggles(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]featuretoggle.FeatureToggle, error) {
			once.Do(func() { close(started) })
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return []featuretoggle.FeatureToggle{featuretoggle.NewToggle("gps", "")}, nil
		},
	).MinTimes(1).MaxTimes(2)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.checker.IsFeatureEnabled(firstCtx, "gps")
		firstErr <- err
	}()
	<-started

	type outcome struct {
		enabled bool
		err     error
	}
	second := make(chan outcome, 1)
	go func() {
		enabled, err := s.checker.IsFeatureEnabled(context.Background(), "gps")
		second <- outcome{enabled, err}
	}()

	cancelFirst()
	s.ErrorIs(<-firstErr, context.Canceled)

	close(release)
	got := <-second
	s.Require().NoError(got.err)
	s.True(got.enabled)
}
