package plan

import (
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// PriceSource tells which tier produced an extra seat price.
type PriceSource string

const (
	PriceFromOverride PriceSource = "override"
	PriceFromBlanket  PriceSource = "blanket"
	PriceFromStandard PriceSource = "standard"
	PriceUnresolved   PriceSource = "none"
)

// ExtraSeatPrice is the resolved price of quantity extra seats.
type ExtraSeatPrice struct {
	Source    PriceSource
	UnitPrice int64
	Quantity  int
	Total     int64
}

// ResolveExtraSeatPrice applies the pricing precedence, first match wins:
//  1. the subscription's override for the scope, multiplied by quantity
//  2. the subscription's blanket additional user amount, flat
//  3. the plan type's standard price for the scope, multiplied by quantity
//
// override and standard may be nil.
func ResolveExtraSeatPrice(sub *CompanySubscription, override *PriceOverride, standard *SeatLimitConfig,
	quantity int) (ExtraSeatPrice, error) {
	if sub == nil {
		return ExtraSeatPrice{}, ErrSubscriptionNotFound
	}
	if quantity < 1 {
		return ExtraSeatPrice{}, invalid("quantity must be at least 1")
	}

	switch {
	case override != nil:
		return ExtraSeatPrice{
			Source:    PriceFromOverride,
			UnitPrice: override.ExtraSeatPrice(),
			Quantity:  quantity,
			Total:     override.ExtraSeatPrice() * int64(quantity),
		}, nil
	case sub.HasBlanketAmount():
		return ExtraSeatPrice{
			Source:    PriceFromBlanket,
			UnitPrice: sub.AdditionalUserAmount(),
			Quantity:  quantity,
			Total:     sub.AdditionalUserAmount(),
		}, nil
	case standard != nil:
		return ExtraSeatPrice{
			Source:    PriceFromStandard,
			UnitPrice: standard.ExtraSeatPrice(),
			Quantity:  quantity,
			Total:     standard.ExtraSeatPrice() * int64(quantity),
		}, nil
	}
	return ExtraSeatPrice{}, ErrSeatLimitNotFound
}

// Admits reports whether one more seat fits under the config.
func Admits(current int, config *SeatLimitConfig) bool {
	return config != nil && current < config.MaxSeats()
}

// ScopeCapacity is the usage of one scope against its limit.
// A scope without config has limit 0.
type ScopeCapacity struct {
	Scope       vo.SeatScope
	Current     int
	Limit       int
	Configured  bool
	WithinLimit bool
	Remaining   int
}

func NewScopeCapacity(scope vo.SeatScope, current int, config *SeatLimitConfig) ScopeCapacity {
	c := ScopeCapacity{Scope: scope, Current: current}
	if config != nil {
		c.Limit = config.MaxSeats()
		c.Configured = true
	}
	c.WithinLimit = c.Current <= c.Limit
	if c.Limit > c.Current {
		c.Remaining = c.Limit - c.Current
	}
	return c
}

// ExtraSeats is the number of seats above the limit.
func (c ScopeCapacity) ExtraSeats() int {
	if c.Current > c.Limit {
		return c.Current - c.Limit
	}
	return 0
}

// Capacity is the usage of every scope of a subscription.
type Capacity struct {
	SubscriptionID vo.ID
	Admin          ScopeCapacity
	Regular        ScopeCapacity
	WithinLimits   bool
}

func BuildCapacity(subscriptionID vo.ID, counts map[vo.SeatScope]int, configs map[vo.SeatScope]*SeatLimitConfig) Capacity {
	c := Capacity{
		SubscriptionID: subscriptionID,
		Admin:          NewScopeCapacity(vo.ScopeAdmin, counts[vo.ScopeAdmin], configs[vo.ScopeAdmin]),
		Regular:        NewScopeCapacity(vo.ScopeRegular, counts[vo.ScopeRegular], configs[vo.ScopeRegular]),
	}
	c.WithinLimits = c.Admin.WithinLimit && c.Regular.WithinLimit
	return c
}

func (c Capacity) Scope(scope vo.SeatScope) ScopeCapacity {
	if scope.IsAdmin() {
		return c.Admin
	}
	return c.Regular
}

// ScopeUsage extends ScopeCapacity with the cost of seats above the limit.
type ScopeUsage struct {
	ScopeCapacity
	PriceSource PriceSource
	UnitPrice   int64
	ExtraCost   int64
}

// NewScopeUsage prices the extra seats of a scope at the unit price resolved
// for a single seat. An unresolved price counts as zero.
func NewScopeUsage(capacity ScopeCapacity, price *ExtraSeatPrice) ScopeUsage {
	u := ScopeUsage{ScopeCapacity: capacity, PriceSource: PriceUnresolved}
	if price != nil {
		u.PriceSource = price.Source
		u.UnitPrice = price.UnitPrice
	}
	u.ExtraCost = int64(capacity.ExtraSeats()) * u.UnitPrice
	return u
}

// UsageSnapshot is the billing view of a company's active subscription.
type UsageSnapshot struct {
	Subscription *CompanySubscription
	Admin        ScopeUsage
	Regular      ScopeUsage
	WithinLimits bool
	BaseAmount   int64
	ExtraCost    int64
	TotalCost    int64
	Reports      []*PlanReport
}

func BuildUsageSnapshot(sub *CompanySubscription, admin, regular ScopeUsage, reports []*PlanReport) UsageSnapshot {
	extra := admin.ExtraCost + regular.ExtraCost
	return UsageSnapshot{
		Subscription: sub,
		Admin:        admin,
		Regular:      regular,
		WithinLimits: admin.WithinLimit && regular.WithinLimit,
		BaseAmount:   sub.Amount(),
		ExtraCost:    extra,
		TotalCost:    sub.Amount() + extra,
		Reports:      reports,
	}
}

// SeatCandidate is a user reported by the identity system during sync.
// UserID is unvalidated input.
type SeatCandidate struct {
	UserID int64
	Admin  bool
}

// SyncIssue records why a candidate could not be synced.
type SyncIssue struct {
	UserID int64
	Reason string
}

// SyncPlan is the outcome of comparing candidates with the seats already held.
type SyncPlan struct {
	ToAdd   []*SeatUsage
	Skipped []vo.ID
	Issues  []SyncIssue
}

// AddedByScope counts planned inserts per scope.
func (p SyncPlan) AddedByScope() map[vo.SeatScope]int {
	out := make(map[vo.SeatScope]int, len(vo.AllScopes))
	for _, seat := range p.ToAdd {
		out[seat.Scope()]++
	}
	return out
}

// PlanSeatSync decides, for each candidate, whether it is added, skipped
// because it already holds a seat, or rejected. Repeated candidates are
// skipped after their first occurrence.
func PlanSeatSync(subscriptionID vo.ID, existing []*SeatUsage, candidates []SeatCandidate) SyncPlan {
	held := make(map[vo.ID]bool, len(existing))
	for _, seat := range existing {
		held[seat.UserID()] = true
	}

	var plan SyncPlan
	for _, c := range candidates {
		userID, err := vo.NewID(c.UserID)
		if err != nil {
			plan.Issues = append(plan.Issues, SyncIssue{UserID: c.UserID, Reason: "invalid user ID"})
			continue
		}
		if held[userID] {
			plan.Skipped = append(plan.Skipped, userID)
			continue
		}
		seat, err := NewSeatUsage(subscriptionID, userID, vo.ScopeFromAdmin(c.Admin))
		if err != nil {
			plan.Issues = append(plan.Issues, SyncIssue{UserID: c.UserID, Reason: err.Error()})
			continue
		}
		held[userID] = true
		plan.ToAdd = append(plan.ToAdd, seat)
	}
	return plan
}

// CheckSyncLimits verifies that current plus planned seats stay within every
// configured scope limit. Scopes without config are not limited here.
func CheckSyncLimits(current map[vo.SeatScope]int, plan SyncPlan, configs map[vo.SeatScope]*SeatLimitConfig) error {
	added := plan.AddedByScope()
	for _, scope := range vo.AllScopes {
		config := configs[scope]
		if config == nil {
			continue
		}
		wouldBe := current[scope] + added[scope]
		if wouldBe > config.MaxSeats() {
			return ErrLimitWouldBeExceeded(scope, config.MaxSeats(), wouldBe)
		}
	}
	return nil
}

// SyncResult is the per-user outcome of a seat sync.
type SyncResult struct {
	Added   []vo.ID
	Skipped []vo.ID
	Errors  []SyncIssue
}
