package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

var fixtureTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func activeSubscription(t *testing.T, id, companyID, planID vo.ID, additional int64) *plan.CompanySubscription {
	t.Helper()
	sub, err := plan.ReconstructCompanySubscription(id, companyID, planID, 10000,
		fixtureTime, fixtureTime.AddDate(1, 0, 0), vo.StatusActive, additional, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return sub
}

func subscriptionWithStatus(t *testing.T, id vo.ID, status vo.SubscriptionStatus) *plan.CompanySubscription {
	t.Helper()
	sub, err := plan.ReconstructCompanySubscription(id, 7, 3, 10000,
		fixtureTime, fixtureTime.AddDate(1, 0, 0), status, 0, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return sub
}

func testPlanType(t *testing.T, id vo.ID) *plan.PlanType {
	t.Helper()
	pt, err := plan.ReconstructPlanType(id, "Empresarial", "", true, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return pt
}

func testPlan(t *testing.T, id, planTypeID vo.ID, amount int64) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(id, "Plano Pro", "", amount, vo.DurationMonthly, planTypeID, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return p
}

func seatLimit(t *testing.T, id, planTypeID vo.ID, scope vo.SeatScope, maxSeats int, price int64) *plan.SeatLimitConfig {
	t.Helper()
	c, err := plan.ReconstructSeatLimitConfig(id, planTypeID, scope, maxSeats, price, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return c
}

func priceOverride(t *testing.T, subscriptionID vo.ID, scope vo.SeatScope, price int64) *plan.PriceOverride {
	t.Helper()
	o, err := plan.ReconstructPriceOverride(99, subscriptionID, scope, price, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return o
}

func seat(t *testing.T, id, subscriptionID, userID vo.ID, scope vo.SeatScope) *plan.SeatUsage {
	t.Helper()
	s, err := plan.ReconstructSeatUsage(id, subscriptionID, userID, scope, fixtureTime, fixtureTime)
	require.NoError(t, err)
	return s
}

// seatEngineFixture wires a seat engine over one active subscription (id 1,
// company 7, plan 3 of plan type 5) with admin limit 3 and regular limit 10.
type seatEngineFixture struct {
	sub       *plan.CompanySubscription
	subs      *mockSubscriptionRepository
	plans     *mockPlanRepository
	limits    *mockSeatLimitRepository
	overrides *mockPriceOverrideRepository
	seats     *mockSeatRepository
	reports   *mockPlanReportRepository
	metrics   *mockMetrics
	tx        *mockTxManager
	uc        *SeatEngineUseCase
}

func newSeatEngineFixture(t *testing.T, additional int64) *seatEngineFixture {
	t.Helper()
	f := &seatEngineFixture{sub: activeSubscription(t, 1, 7, 3, additional)}
	configs := map[vo.SeatScope]*plan.SeatLimitConfig{
		vo.ScopeAdmin:   seatLimit(t, 11, 5, vo.ScopeAdmin, 3, 6500),
		vo.ScopeRegular: seatLimit(t, 12, 5, vo.ScopeRegular, 10, 2500),
	}
	p := testPlan(t, 3, 5, 10000)

	f.subs = &mockSubscriptionRepository{
		GetByIDFunc: func(_ context.Context, id vo.ID) (*plan.CompanySubscription, error) {
			if id == f.sub.ID() {
				return f.sub, nil
			}
			return nil, nil
		},
		GetActiveByCompanyFunc: func(_ context.Context, companyID vo.ID) (*plan.CompanySubscription, error) {
			if companyID == f.sub.CompanyID() && f.sub.IsActive() {
				return f.sub, nil
			}
			return nil, nil
		},
	}
	f.plans = &mockPlanRepository{
		GetByIDFunc: func(_ context.Context, id vo.ID) (*plan.Plan, error) {
			if id == p.ID() {
				return p, nil
			}
			return nil, nil
		},
	}
	f.limits = &mockSeatLimitRepository{
		GetByPlanTypeAndScopeFunc: func(_ context.Context, planTypeID vo.ID, scope vo.SeatScope) (*plan.SeatLimitConfig, error) {
			if planTypeID != 5 {
				return nil, nil
			}
			return configs[scope], nil
		},
		ListByPlanTypeFunc: func(_ context.Context, planTypeID vo.ID) ([]*plan.SeatLimitConfig, error) {
			var out []*plan.SeatLimitConfig
			for _, scope := range vo.AllScopes {
				if c := configs[scope]; c != nil && planTypeID == 5 {
					out = append(out, c)
				}
			}
			return out, nil
		},
	}
	f.overrides = &mockPriceOverrideRepository{}
	f.seats = &mockSeatRepository{}
	f.reports = &mockPlanReportRepository{}
	f.metrics = newMockMetrics()
	f.tx = &mockTxManager{}
	f.uc = NewSeatEngineUseCase(f.subs, f.plans, f.limits, f.overrides, f.seats, f.reports,
		f.metrics, f.tx, &mockLogger{})
	return f
}

// withSeats makes the seat repository report the given seats.
func (f *seatEngineFixture) withSeats(seats ...*plan.SeatUsage) {
	f.seats.ListBySubscriptionFunc = func(context.Context, vo.ID) ([]*plan.SeatUsage, error) {
		return seats, nil
	}
	f.seats.CountByScopeFunc = func(_ context.Context, _ vo.ID, scope vo.SeatScope) (int, error) {
		n := 0
		for _, s := range seats {
			if s.Scope() == scope {
				n++
			}
		}
		return n, nil
	}
	f.seats.CountAllFunc = func(context.Context, vo.ID) (map[vo.SeatScope]int, error) {
		out := map[vo.SeatScope]int{vo.ScopeAdmin: 0, vo.ScopeRegular: 0}
		for _, s := range seats {
			out[s.Scope()]++
		}
		return out, nil
	}
	f.seats.GetBySubscriptionAndUserFunc = func(_ context.Context, _ vo.ID, userID vo.ID) (*plan.SeatUsage, error) {
		for _, s := range seats {
			if s.UserID() == userID {
				return s, nil
			}
		}
		return nil, nil
	}
}

// seatsOf builds admins admin seats and regulars regular seats with user ids
// starting at 100 for admins and 200 for regular users.
func seatsOf(t *testing.T, admins, regulars int) []*plan.SeatUsage {
	t.Helper()
	var out []*plan.SeatUsage
	for i := 0; i < admins; i++ {
		out = append(out, seat(t, vo.ID(1000+i), 1, vo.ID(100+i), vo.ScopeAdmin))
	}
	for i := 0; i < regulars; i++ {
		out = append(out, seat(t, vo.ID(2000+i), 1, vo.ID(200+i), vo.ScopeRegular))
	}
	return out
}
