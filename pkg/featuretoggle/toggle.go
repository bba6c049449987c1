package featuretoggle

// FeatureToggle is anything that reports a feature type and its status.
type FeatureToggle interface {
	Type() string
	Status() Status
}

// Quotable is a FeatureToggle with a usage quota.
type Quotable interface {
	FeatureToggle
	// QuotaLimit returns the limit; ok is false when usage is unlimited.
	QuotaLimit() (limit int, ok bool)
	// Quota returns current usage, 0 when not computed.
	Quota() int
	IsQuotaReached() bool
}

// Toggle is a plain feature toggle.
type Toggle struct {
	typ    string
	status Status
}

// NewToggle creates a toggle. An empty status defaults to StatusEnabled.
func NewToggle(typ string, status Status) Toggle {
	if status == "" {
		status = StatusEnabled
	}
	return Toggle{typ: typ, status: status}
}

func (t Toggle) Type() string   { return t.typ }
func (t Toggle) Status() Status { return t.status }

// QuotableToggle is a feature toggle with a usage quota.
//
// Invariants:
//   - a nil quota limit means no limit
type QuotableToggle struct {
	typ        string
	quotaLimit *int
	quota      int
	status     Status
}

// NewQuotableToggle creates a quotable toggle. An empty status defaults to
// StatusEnabled; a nil quotaLimit means unlimited.
func NewQuotableToggle(typ string, quotaLimit *int, quota int, status Status) QuotableToggle {
	if status == "" {
		status = StatusEnabled
	}
	var limit *int
	if quotaLimit != nil {
		v := *quotaLimit
		limit = &v
	}
	return QuotableToggle{typ: typ, quotaLimit: limit, quota: quota, status: status}
}

func (t QuotableToggle) Type() string   { return t.typ }
func (t QuotableToggle) Status() Status { return t.status }
func (t QuotableToggle) Quota() int     { return t.quota }

func (t QuotableToggle) QuotaLimit() (int, bool) {
	if t.quotaLimit == nil {
		return 0, false
	}
	return *t.quotaLimit, true
}

// QuotaRemaining returns the unused quota, never below zero; ok is false when
// usage is unlimited.
func (t QuotableToggle) QuotaRemaining() (remaining int, ok bool) {
	limit, ok := t.QuotaLimit()
	if !ok {
		return 0, false
	}
	return max(limit-t.quota, 0), true
}

// IsQuotaReached reports whether usage has hit the limit. Unlimited toggles
// never reach it; the status StatusQuotaReached always does.
func (t QuotableToggle) IsQuotaReached() bool {
	if t.status == StatusQuotaReached {
		return true
	}
	limit, ok := t.QuotaLimit()
	return ok && t.quota >= limit
}
