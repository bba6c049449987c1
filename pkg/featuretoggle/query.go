package featuretoggle

//go:generate mockgen -source=query.go -destination=mocks/mocks.go -package=mocks AvailableTogglesQuery

import "context"

// AvailableTogglesQuery lists every toggle known in the current scope.
type AvailableTogglesQuery interface {
	FindAllFeatureToggles(ctx context.Context) ([]FeatureToggle, error)
}

// EnabledChecker reports whether a feature is enabled and available to use.
// Only an explicit StatusEnabled counts.
type EnabledChecker interface {
	IsFeatureEnabled(ctx context.Context, feature string) (bool, error)
}
