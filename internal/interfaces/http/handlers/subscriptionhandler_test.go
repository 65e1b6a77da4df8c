package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers/testutil"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/biztime"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type subscriptionMocks struct {
	subs          *mockSubscriptionUC
	changes       *mockSubscriptionChangeUC
	overrides     *mockPriceOverrideUC
	history       *mockHistoryUC
	cancellations *mockCancellationUC
}

func newTestSubscriptionHandler(m subscriptionMocks) *SubscriptionHandler {
	if m.subs == nil {
		m.subs = &mockSubscriptionUC{}
	}
	if m.changes == nil {
		m.changes = &mockSubscriptionChangeUC{}
	}
	if m.overrides == nil {
		m.overrides = &mockPriceOverrideUC{}
	}
	if m.history == nil {
		m.history = &mockHistoryUC{}
	}
	if m.cancellations == nil {
		m.cancellations = &mockCancellationUC{}
	}
	return NewSubscriptionHandler(m.subs, m.changes, m.overrides, m.history, m.cancellations, logger.NewNopLogger())
}

// =====================================================================
// Subscriptions
// =====================================================================

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	var got usecases.CreateSubscriptionCommand
	subs := &mockSubscriptionUC{CreateFunc: func(_ context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
		got = cmd
		return &dto.SubscriptionDTO{ID: 1, CompanyID: uint64(cmd.CompanyID), Status: "active"}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{subs: subs})

	body := map[string]any{
		"company_id": 5,
		"plan_id":    2,
		"start_date": "2026-01-01",
		"end_date":   "2026-12-31",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", body)
	testutil.SetAuthContext(c, 9, authorization.RoleBilling)

	handler.CreateSubscription(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, got.Amount)
	assert.Equal(t, int64(5), got.CompanyID)
	assert.Equal(t, uint64(9), got.ActorID)
	assert.Equal(t, 1, got.StartDate.In(biztime.Location()).Day())
	assert.True(t, got.EndDate.After(got.StartDate))
	// a plain end date covers the whole business day
	assert.Equal(t, 23, got.EndDate.In(biztime.Location()).Hour())
}

func TestSubscriptionHandler_CreateSubscription_ExplicitAmount(t *testing.T) {
	var got usecases.CreateSubscriptionCommand
	subs := &mockSubscriptionUC{CreateFunc: func(_ context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
		got = cmd
		return &dto.SubscriptionDTO{ID: 1}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{subs: subs})

	body := map[string]any{
		"company_id": 5,
		"plan_id":    2,
		"amount":     0,
		"start_date": "2026-01-01T00:00:00Z",
		"end_date":   "2026-12-31T00:00:00Z",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", body)

	handler.CreateSubscription(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, got.Amount)
	assert.Equal(t, int64(0), *got.Amount)
}

func TestSubscriptionHandler_CreateSubscription_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "bad start date", body: map[string]any{"company_id": 5, "plan_id": 2, "start_date": "01/01/2026", "end_date": "2026-12-31"}},
		{name: "missing end date", body: map[string]any{"company_id": 5, "plan_id": 2, "start_date": "2026-01-01"}},
		{name: "missing company", body: map[string]any{"plan_id": 2, "start_date": "2026-01-01", "end_date": "2026-12-31"}},
		{name: "negative amount", body: map[string]any{"company_id": 5, "plan_id": 2, "amount": -5, "start_date": "2026-01-01", "end_date": "2026-12-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestSubscriptionHandler(subscriptionMocks{})

			c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", tt.body)

			handler.CreateSubscription(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSubscriptionHandler_CreateSubscription_ActiveExists(t *testing.T) {
	subs := &mockSubscriptionUC{CreateFunc: func(context.Context, usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
		return nil, errors.NewConflictError("company already has an active subscription")
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{subs: subs})

	body := map[string]any{"company_id": 5, "plan_id": 2, "start_date": "2026-01-01", "end_date": "2026-12-31"}
	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions", body)

	handler.CreateSubscription(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubscriptionHandler_GetActiveSubscription(t *testing.T) {
	subs := &mockSubscriptionUC{GetActiveByCompanyFunc: func(_ context.Context, companyID int64) (*dto.SubscriptionDTO, error) {
		if companyID == 5 {
			return &dto.SubscriptionDTO{ID: 3, CompanyID: 5}, nil
		}
		return nil, errors.NewNotFoundError("no active subscription")
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{subs: subs})

	c, w := testutil.NewTestContext(http.MethodGet, "/companies/5/subscription", nil)
	testutil.SetURLParam(c, "companyId", "5")
	handler.GetActiveSubscription(c)
	require.Equal(t, http.StatusOK, w.Code)

	var result dto.SubscriptionDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, uint64(3), result.ID)

	c, w = testutil.NewTestContext(http.MethodGet, "/companies/6/subscription", nil)
	testutil.SetURLParam(c, "companyId", "6")
	handler.GetActiveSubscription(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscriptionHandler_UpdateSubscription(t *testing.T) {
	var got usecases.UpdateSubscriptionCommand
	subs := &mockSubscriptionUC{UpdateFunc: func(_ context.Context, _ int64, cmd usecases.UpdateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
		got = cmd
		return &dto.SubscriptionDTO{ID: 1, Amount: cmd.Amount}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{subs: subs})

	c, w := testutil.NewTestContext(http.MethodPut, "/subscriptions/1", map[string]any{
		"amount": 12000, "end_date": "2027-06-30", "additional_user_amount": 500,
	})
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateSubscription(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(12000), got.Amount)
	assert.Equal(t, int64(500), got.AdditionalUserAmount)
	assert.Equal(t, time.June, got.EndDate.In(biztime.Location()).Month())
}

// =====================================================================
// Plan changes
// =====================================================================

func TestSubscriptionHandler_ChangePlan(t *testing.T) {
	var got usecases.ChangePlanCommand
	changes := &mockSubscriptionChangeUC{ChangePlanFunc: func(_ context.Context, cmd usecases.ChangePlanCommand) (*dto.SubscriptionDTO, error) {
		got = cmd
		return &dto.SubscriptionDTO{ID: uint64(cmd.SubscriptionID), PlanID: uint64(cmd.NewPlanID)}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{changes: changes})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/change-plan", map[string]any{"new_plan_id": 8, "reason": "upgrade"})
	testutil.SetURLParam(c, "id", "4")

	handler.ChangePlan(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), got.SubscriptionID)
	assert.Equal(t, int64(8), got.NewPlanID)
	assert.Equal(t, "upgrade", got.Reason)
}

func TestSubscriptionHandler_ChangePlan_SeatsExceedNewLimits(t *testing.T) {
	changes := &mockSubscriptionChangeUC{ChangePlanFunc: func(context.Context, usecases.ChangePlanCommand) (*dto.SubscriptionDTO, error) {
		return nil, errors.NewLimitExceededError("seats exceed the new plan limits")
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{changes: changes})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/change-plan", map[string]any{"new_plan_id": 8})
	testutil.SetURLParam(c, "id", "4")

	handler.ChangePlan(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubscriptionHandler_RenewSubscription(t *testing.T) {
	var got usecases.RenewSubscriptionCommand
	changes := &mockSubscriptionChangeUC{RenewFunc: func(_ context.Context, cmd usecases.RenewSubscriptionCommand) (*dto.SubscriptionDTO, error) {
		got = cmd
		return &dto.SubscriptionDTO{ID: 4}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{changes: changes})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/renew", map[string]any{"new_end_date": "2028-01-31"})
	testutil.SetURLParam(c, "id", "4")

	handler.RenewSubscription(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2028, got.NewEndDate.Year())
}

func TestSubscriptionHandler_GetHistory_RecentParam(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		wantRecent int
		status     int
	}{
		{name: "absent returns all", wantRecent: 0, status: http.StatusOK},
		{name: "bare param uses default", query: map[string]string{"recent": ""}, wantRecent: 10, status: http.StatusOK},
		{name: "explicit", query: map[string]string{"recent": "5"}, wantRecent: 5, status: http.StatusOK},
		{name: "capped", query: map[string]string{"recent": "1000"}, wantRecent: 100, status: http.StatusOK},
		{name: "zero rejected", query: map[string]string{"recent": "0"}, status: http.StatusBadRequest},
		{name: "not a number", query: map[string]string{"recent": "ten"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRecent := -1
			history := &mockHistoryUC{ExecuteFunc: func(_ context.Context, _ int64, recent int) ([]*dto.HistoryDTO, error) {
				gotRecent = recent
				return []*dto.HistoryDTO{}, nil
			}}
			handler := newTestSubscriptionHandler(subscriptionMocks{history: history})

			c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/4/history", nil)
			testutil.SetURLParam(c, "id", "4")
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}

			handler.GetHistory(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.wantRecent, gotRecent)
			}
		})
	}
}

// =====================================================================
// Price overrides
// =====================================================================

func TestSubscriptionHandler_SetPriceOverride(t *testing.T) {
	var got usecases.SetPriceOverrideCommand
	overrides := &mockPriceOverrideUC{SetFunc: func(_ context.Context, cmd usecases.SetPriceOverrideCommand) (*dto.PriceOverrideDTO, error) {
		got = cmd
		return &dto.PriceOverrideDTO{SubscriptionID: uint64(cmd.SubscriptionID), Admin: cmd.Admin, ExtraSeatPrice: cmd.ExtraSeatPrice}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{overrides: overrides})

	c, w := testutil.NewTestContext(http.MethodPut, "/subscriptions/4/price-overrides/regular", map[string]any{"extra_seat_price": 750})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetURLParam(c, "scope", "regular")

	handler.SetPriceOverride(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.SetPriceOverrideCommand{SubscriptionID: 4, Admin: false, ExtraSeatPrice: 750}, got)
}

func TestSubscriptionHandler_DeletePriceOverride(t *testing.T) {
	var gotAdmin bool
	overrides := &mockPriceOverrideUC{DeleteFunc: func(_ context.Context, _ int64, admin bool, _ uint64) error {
		gotAdmin = admin
		return nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{overrides: overrides})

	c, _ := testutil.NewTestContext(http.MethodDelete, "/subscriptions/4/price-overrides/admin", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetURLParam(c, "scope", "admin")

	handler.DeletePriceOverride(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.True(t, gotAdmin)
}

// =====================================================================
// Cancellations
// =====================================================================

func TestSubscriptionHandler_RequestCancellation(t *testing.T) {
	var got usecases.RequestCancellationCommand
	cancellations := &mockCancellationUC{RequestFunc: func(_ context.Context, cmd usecases.RequestCancellationCommand) (*dto.CancellationDTO, error) {
		got = cmd
		return &dto.CancellationDTO{ID: 1, SubscriptionID: uint64(cmd.SubscriptionID), Status: "pending"}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{cancellations: cancellations})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/cancellations", map[string]any{
		"reason":  "too expensive",
		"details": map[string]any{"channel": "phone"},
	})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 3, authorization.RoleBilling)

	handler.RequestCancellation(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "too expensive", got.Reason)
	assert.Equal(t, "phone", got.Details["channel"])
	assert.Equal(t, uint64(3), got.ActorID)
}

func TestSubscriptionHandler_RequestCancellation_AlreadyPending(t *testing.T) {
	cancellations := &mockCancellationUC{RequestFunc: func(context.Context, usecases.RequestCancellationCommand) (*dto.CancellationDTO, error) {
		return nil, errors.NewInvalidStateError("a cancellation is already pending")
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{cancellations: cancellations})

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/cancellations", map[string]any{"reason": "x"})
	testutil.SetURLParam(c, "id", "4")

	handler.RequestCancellation(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "invalid_state", resp.Error.Type)
}

func TestSubscriptionHandler_ConfirmCancellation_OptionalBody(t *testing.T) {
	var got usecases.ConfirmCancellationCommand
	cancellations := &mockCancellationUC{ConfirmFunc: func(_ context.Context, cmd usecases.ConfirmCancellationCommand) (*dto.CancellationDTO, error) {
		got = cmd
		return &dto.CancellationDTO{ID: uint64(cmd.CancellationID), Status: "cancelled"}, nil
	}}
	handler := newTestSubscriptionHandler(subscriptionMocks{cancellations: cancellations})

	c, w := testutil.NewTestContext(http.MethodPost, "/cancellations/2/confirm", nil)
	testutil.SetURLParam(c, "id", "2")
	handler.ConfirmCancellation(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), got.CancellationID)
	assert.Empty(t, got.Reason)

	c, w = testutil.NewTestContext(http.MethodPost, "/cancellations/2/confirm", map[string]any{"reason": "approved"})
	testutil.SetURLParam(c, "id", "2")
	handler.ConfirmCancellation(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", got.Reason)
}
