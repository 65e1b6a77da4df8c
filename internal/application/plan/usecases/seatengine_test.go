package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	apperrors "github.com/GraziArcH/domain-sales/internal/shared/errors"
)

func TestSeatEngine_ResolveExtraSeatPrice(t *testing.T) {
	t.Run("override wins and is multiplied", func(t *testing.T) {
		f := newSeatEngineFixture(t, 8000)
		f.overrides.GetBySubscriptionAndScopeFunc = func(_ context.Context, subID vo.ID, scope vo.SeatScope) (*plan.PriceOverride, error) {
			return priceOverride(t, subID, scope, 5000), nil
		}

		price, err := f.uc.ResolveExtraSeatPrice(context.Background(), 1, true, 2)
		require.NoError(t, err)
		assert.Equal(t, "override", price.Source)
		assert.Equal(t, int64(5000), price.UnitPrice)
		assert.Equal(t, int64(10000), price.Total)
	})

	t.Run("blanket amount is flat", func(t *testing.T) {
		f := newSeatEngineFixture(t, 8000)
		f.limits.GetByPlanTypeAndScopeFunc = func(context.Context, vo.ID, vo.SeatScope) (*plan.SeatLimitConfig, error) {
			t.Fatal("standard price must not be read when a blanket amount applies")
			return nil, nil
		}

		price, err := f.uc.ResolveExtraSeatPrice(context.Background(), 1, true, 3)
		require.NoError(t, err)
		assert.Equal(t, "blanket", price.Source)
		assert.Equal(t, int64(8000), price.Total)
	})

	t.Run("standard price times quantity", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		price, err := f.uc.ResolveExtraSeatPrice(context.Background(), 1, true, 3)
		require.NoError(t, err)
		assert.Equal(t, "standard", price.Source)
		assert.Equal(t, int64(6500), price.UnitPrice)
		assert.Equal(t, int64(19500), price.Total)
		assert.Equal(t, "admin", price.Scope)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		price, err := f.uc.ResolveExtraSeatPrice(context.Background(), 1, false, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, price.Quantity)
		assert.Equal(t, int64(2500), price.Total)
	})

	t.Run("no price source", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.limits.GetByPlanTypeAndScopeFunc = func(context.Context, vo.ID, vo.SeatScope) (*plan.SeatLimitConfig, error) {
			return nil, nil
		}

		_, err := f.uc.ResolveExtraSeatPrice(context.Background(), 1, true, 1)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown subscription", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		_, err := f.uc.ResolveExtraSeatPrice(context.Background(), 42, true, 1)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("invalid identifiers and quantities", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		_, err := f.uc.ResolveExtraSeatPrice(context.Background(), 0, true, 1)
		assert.True(t, apperrors.IsValidationError(err))

		_, err = f.uc.ResolveExtraSeatPrice(context.Background(), 1, true, -2)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestSeatEngine_CanAdmitSeat(t *testing.T) {
	tests := []struct {
		name     string
		admins   int
		regulars int
		admin    bool
		want     bool
	}{
		{name: "admin room left", admins: 2, regulars: 0, admin: true, want: true},
		{name: "admin limit reached", admins: 3, regulars: 0, admin: true, want: false},
		{name: "regular room left", admins: 3, regulars: 9, admin: false, want: true},
		{name: "regular limit reached", admins: 0, regulars: 10, admin: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSeatEngineFixture(t, 0)
			f.withSeats(seatsOf(t, tt.admins, tt.regulars)...)

			ok, err := f.uc.CanAdmitSeat(context.Background(), 1, tt.admin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("inactive subscription", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.sub = subscriptionWithStatus(t, 1, vo.StatusCancelled)

		_, err := f.uc.CanAdmitSeat(context.Background(), 1, true)
		assert.True(t, apperrors.IsInvalidStateError(err))
	})

	t.Run("scope without limit config", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.limits.GetByPlanTypeAndScopeFunc = func(context.Context, vo.ID, vo.SeatScope) (*plan.SeatLimitConfig, error) {
			return nil, nil
		}

		_, err := f.uc.CanAdmitSeat(context.Background(), 1, false)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSeatEngine_AdmitSeat(t *testing.T) {
	t.Run("admits into free scope", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 2, 0)...)
		var created *plan.SeatUsage
		f.seats.CreateFunc = func(_ context.Context, s *plan.SeatUsage) error {
			created = s
			s.SetID(500)
			return nil
		}
		lockCalls := 0
		f.subs.GetByIDForUpdateFunc = func(_ context.Context, id vo.ID) (*plan.CompanySubscription, error) {
			lockCalls++
			return f.sub, nil
		}

		result, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{
			SubscriptionID: 1, UserID: 42, Admin: true, ActorID: 9,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint64(500), result.ID)
		assert.Equal(t, uint64(42), result.UserID)
		assert.True(t, result.Admin)
		assert.Equal(t, 1, lockCalls)
		assert.Equal(t, []uint64{9}, f.tx.actors)
		assert.Equal(t, 1, f.metrics.admitted[vo.ScopeAdmin])
	})

	t.Run("limit reached", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 3, 0)...)
		f.seats.CreateFunc = func(context.Context, *plan.SeatUsage) error {
			t.Fatal("seat must not be created past the limit")
			return nil
		}

		_, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{SubscriptionID: 1, UserID: 42, Admin: true, ActorID: 9})
		assert.True(t, apperrors.IsLimitExceededError(err))
		assert.Equal(t, []string{"admin:limit"}, f.metrics.rejected)
	})

	t.Run("user already seated", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 1, 0)...)

		_, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{SubscriptionID: 1, UserID: 100, Admin: false, ActorID: 9})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("concurrent insert hits unique index", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.seats.CreateFunc = func(context.Context, *plan.SeatUsage) error {
			return errors.New("UNIQUE constraint failed: company_plan_usage.company_plan_id, company_plan_usage.user_id")
		}

		_, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{SubscriptionID: 1, UserID: 42, ActorID: 9})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("inactive subscription", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.sub = subscriptionWithStatus(t, 1, vo.StatusExpired)

		_, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{SubscriptionID: 1, UserID: 42, ActorID: 9})
		assert.True(t, apperrors.IsInvalidStateError(err))
	})

	t.Run("invalid user id", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		_, err := f.uc.AdmitSeat(context.Background(), AdmitSeatCommand{SubscriptionID: 1, UserID: -1, ActorID: 9})
		assert.True(t, apperrors.IsValidationError(err))
		assert.Empty(t, f.tx.actors)
	})
}

func TestSeatEngine_ChangeSeatScope(t *testing.T) {
	t.Run("promotion with admin room", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 2, 3)...)
		updated := false
		f.seats.UpdateFunc = func(_ context.Context, s *plan.SeatUsage) error {
			updated = true
			assert.Equal(t, vo.ScopeAdmin, s.Scope())
			return nil
		}

		result, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{
			CompanyID: 7, UserID: 200, Admin: true, ActorID: 9,
		})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.True(t, result.Admin)
		assert.Equal(t, 1, f.metrics.scopeChanges)
	})

	t.Run("promotion without admin room", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 3, 1)...)

		_, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{CompanyID: 7, UserID: 200, Admin: true, ActorID: 9})
		assert.True(t, apperrors.IsLimitExceededError(err))
		assert.Zero(t, f.metrics.scopeChanges)
	})

	t.Run("demotion is always allowed", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 1, 10)...)
		f.limits.GetByPlanTypeAndScopeFunc = func(context.Context, vo.ID, vo.SeatScope) (*plan.SeatLimitConfig, error) {
			t.Fatal("demotion must not check limits")
			return nil, nil
		}

		result, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{CompanyID: 7, UserID: 100, Admin: false, ActorID: 9})
		require.NoError(t, err)
		assert.False(t, result.Admin)
	})

	t.Run("same scope is a no-op", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 1, 0)...)
		f.seats.UpdateFunc = func(context.Context, *plan.SeatUsage) error {
			t.Fatal("unchanged seat must not be written")
			return nil
		}

		_, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{CompanyID: 7, UserID: 100, Admin: true, ActorID: 9})
		require.NoError(t, err)
		assert.Zero(t, f.metrics.scopeChanges)
	})

	t.Run("user without seat", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats()

		_, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{CompanyID: 7, UserID: 300, Admin: true, ActorID: 9})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("company without active subscription", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)

		_, err := f.uc.ChangeSeatScope(context.Background(), ChangeSeatScopeCommand{CompanyID: 8, UserID: 100, Admin: true, ActorID: 9})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSeatEngine_RemoveSeat(t *testing.T) {
	f := newSeatEngineFixture(t, 0)
	f.withSeats(seatsOf(t, 1, 1)...)
	var deleted *plan.SeatUsage
	f.seats.DeleteFunc = func(_ context.Context, s *plan.SeatUsage) error {
		deleted = s
		return nil
	}

	err := f.uc.RemoveSeat(context.Background(), RemoveSeatCommand{SubscriptionID: 1, UserID: 200, ActorID: 9})
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, vo.ID(200), deleted.UserID())
	assert.Equal(t, 1, f.metrics.removed)

	err = f.uc.RemoveSeat(context.Background(), RemoveSeatCommand{SubscriptionID: 1, UserID: 999, ActorID: 9})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSeatEngine_SyncSeats(t *testing.T) {
	t.Run("adds new users and skips seated ones", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 1, 1)...)
		var inserted []*plan.SeatUsage
		f.seats.BulkCreateFunc = func(_ context.Context, seats []*plan.SeatUsage) error {
			inserted = seats
			return nil
		}

		result, err := f.uc.SyncSeats(context.Background(), SyncSeatsCommand{
			CompanyID: 7,
			Users: []plan.SeatCandidate{
				{UserID: 100, Admin: true},
				{UserID: 101, Admin: true},
				{UserID: 300},
				{UserID: 300},
				{UserID: 0},
			},
			ActorID: 9,
		})
		require.NoError(t, err)
		assert.Len(t, inserted, 2)
		assert.Equal(t, []uint64{101, 300}, result.Added)
		assert.Equal(t, []uint64{100, 300}, result.Skipped)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "invalid user ID", result.Errors[0].Error)
		assert.Equal(t, 2, f.metrics.syncAdded)
	})

	t.Run("batch over the limit inserts nothing", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 2, 0)...)
		f.seats.BulkCreateFunc = func(context.Context, []*plan.SeatUsage) error {
			t.Fatal("no seat may be inserted when the batch exceeds a limit")
			return nil
		}

		_, err := f.uc.SyncSeats(context.Background(), SyncSeatsCommand{
			CompanyID: 7,
			Users:     []plan.SeatCandidate{{UserID: 150, Admin: true}, {UserID: 151, Admin: true}, {UserID: 300}},
			ActorID:   9,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsLimitExceededError(err))
		assert.Contains(t, err.Error(), "Admin limit (3) would be exceeded (4)")
		assert.Equal(t, 1, f.metrics.syncRejected)
	})

	t.Run("existing overage is reported even with nothing to add", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats(seatsOf(t, 0, 11)...)

		_, err := f.uc.SyncSeats(context.Background(), SyncSeatsCommand{
			CompanyID: 7,
			Users:     []plan.SeatCandidate{{UserID: 200}},
			ActorID:   9,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Regular user limit (10) would be exceeded (11)")
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		f := newSeatEngineFixture(t, 0)
		f.withSeats()
		f.seats.BulkCreateFunc = func(context.Context, []*plan.SeatUsage) error {
			return errors.New("connection reset")
		}

		_, err := f.uc.SyncSeats(context.Background(), SyncSeatsCommand{
			CompanyID: 7, Users: []plan.SeatCandidate{{UserID: 300}}, ActorID: 9,
		})
		require.Error(t, err)
		assert.False(t, apperrors.IsAppError(err))
	})
}

func TestSeatEngine_Capacity(t *testing.T) {
	f := newSeatEngineFixture(t, 0)
	f.withSeats(seatsOf(t, 2, 8)...)

	capacity, err := f.uc.GetCapacity(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, capacity.Admin.Current)
	assert.Equal(t, 3, capacity.Admin.Limit)
	assert.Equal(t, 1, capacity.Admin.Remaining)
	assert.Equal(t, 2, capacity.Regular.Remaining)
	assert.True(t, capacity.IsWithinLimits)

	f.withSeats(seatsOf(t, 4, 8)...)
	validation, err := f.uc.ValidateAllSeatsWithinLimits(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, validation.Admin.WithinLimit)
	assert.Equal(t, 0, validation.Admin.Remaining)
	assert.False(t, validation.IsWithinLimits)

	_, err = f.uc.GetCapacity(context.Background(), 8)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSeatEngine_GetUsageSnapshot(t *testing.T) {
	f := newSeatEngineFixture(t, 0)
	f.withSeats(seatsOf(t, 4, 12)...)
	f.overrides.GetBySubscriptionAndScopeFunc = func(_ context.Context, subID vo.ID, scope vo.SeatScope) (*plan.PriceOverride, error) {
		if scope == vo.ScopeRegular {
			return priceOverride(t, subID, scope, 2000), nil
		}
		return nil, nil
	}
	report, err := plan.ReconstructPlanReport(1, 5, 77, fixtureTime, fixtureTime)
	require.NoError(t, err)
	f.reports.ListByPlanTypeFunc = func(context.Context, vo.ID) ([]*plan.PlanReport, error) {
		return []*plan.PlanReport{report}, nil
	}

	snapshot, err := f.uc.GetUsageSnapshot(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "standard", snapshot.Admin.PriceSource)
	assert.Equal(t, 1, snapshot.Admin.ExtraSeats)
	assert.Equal(t, int64(6500), snapshot.Admin.ExtraCost)
	assert.Equal(t, "override", snapshot.Regular.PriceSource)
	assert.Equal(t, 2, snapshot.Regular.ExtraSeats)
	assert.Equal(t, int64(4000), snapshot.Regular.ExtraCost)
	assert.Equal(t, int64(10000), snapshot.BaseAmount)
	assert.Equal(t, int64(20500), snapshot.TotalCost)
	assert.False(t, snapshot.IsWithinLimits)
	require.Len(t, snapshot.Reports, 1)
	assert.Equal(t, uint64(77), snapshot.Reports[0].TemplateID)
}
