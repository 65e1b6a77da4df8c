package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers/testutil"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

func newTestSeatHandler(seats *mockSeatEngineUC, reports *mockPlanReportUC) *SeatHandler {
	return NewSeatHandler(seats, reports, logger.NewNopLogger())
}

func TestSeatHandler_ResolveExtraSeatPrice(t *testing.T) {
	tests := []struct {
		name         string
		query        map[string]string
		wantAdmin    bool
		wantQuantity int
		status       int
	}{
		{name: "default quantity", query: map[string]string{"admin": "true"}, wantAdmin: true, wantQuantity: 1, status: http.StatusOK},
		{name: "regular scope", query: map[string]string{"admin": "false", "quantity": "4"}, wantQuantity: 4, status: http.StatusOK},
		{name: "missing scope", query: map[string]string{"quantity": "4"}, status: http.StatusBadRequest},
		{name: "bad scope", query: map[string]string{"admin": "maybe"}, status: http.StatusBadRequest},
		{name: "zero quantity", query: map[string]string{"admin": "true", "quantity": "0"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAdmin bool
			var gotQuantity int
			seats := &mockSeatEngineUC{ResolveExtraSeatPriceFunc: func(_ context.Context, id int64, admin bool, quantity int) (*dto.ExtraSeatPriceDTO, error) {
				gotAdmin, gotQuantity = admin, quantity
				return &dto.ExtraSeatPriceDTO{SubscriptionID: uint64(id), UnitPrice: 1000, Quantity: quantity, Total: int64(quantity) * 1000}, nil
			}}
			handler := newTestSeatHandler(seats, nil)

			c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/4/price", nil)
			testutil.SetURLParam(c, "id", "4")
			testutil.SetQueryParams(c, tt.query)

			handler.ResolveExtraSeatPrice(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.wantAdmin, gotAdmin)
				assert.Equal(t, tt.wantQuantity, gotQuantity)
			}
		})
	}
}

func TestSeatHandler_CanAdmitSeat(t *testing.T) {
	seats := &mockSeatEngineUC{CanAdmitSeatFunc: func(_ context.Context, _ int64, admin bool) (bool, error) {
		return !admin, nil
	}}
	handler := newTestSeatHandler(seats, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/subscriptions/4/seats/can-admit", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetQueryParams(c, map[string]string{"admin": "true"})

	handler.CanAdmitSeat(c)

	require.Equal(t, http.StatusOK, w.Code)
	var result CanAdmitSeatResponse
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, CanAdmitSeatResponse{SubscriptionID: 4, Admin: true, CanAdmit: false}, result)
}

func TestSeatHandler_AdmitSeat(t *testing.T) {
	var got usecases.AdmitSeatCommand
	seats := &mockSeatEngineUC{AdmitSeatFunc: func(_ context.Context, cmd usecases.AdmitSeatCommand) (*dto.SeatDTO, error) {
		got = cmd
		return &dto.SeatDTO{ID: 1, UserID: uint64(cmd.UserID), Admin: cmd.Admin}, nil
	}}
	handler := newTestSeatHandler(seats, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/seats", map[string]any{"user_id": 77, "admin": true})
	testutil.SetURLParam(c, "id", "4")

	handler.AdmitSeat(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.AdmitSeatCommand{SubscriptionID: 4, UserID: 77, Admin: true}, got)
}

func TestSeatHandler_AdmitSeat_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "limit reached", err: errors.NewLimitExceededError("admin seat limit reached"), status: http.StatusUnprocessableEntity},
		{name: "already seated", err: errors.NewConflictError("user already has a seat"), status: http.StatusConflict},
		{name: "inactive subscription", err: errors.NewInvalidStateError("subscription is not active"), status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seats := &mockSeatEngineUC{AdmitSeatFunc: func(context.Context, usecases.AdmitSeatCommand) (*dto.SeatDTO, error) {
				return nil, tt.err
			}}
			handler := newTestSeatHandler(seats, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/subscriptions/4/seats", map[string]any{"user_id": 77})
			testutil.SetURLParam(c, "id", "4")

			handler.AdmitSeat(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSeatHandler_RemoveSeat(t *testing.T) {
	var got usecases.RemoveSeatCommand
	seats := &mockSeatEngineUC{RemoveSeatFunc: func(_ context.Context, cmd usecases.RemoveSeatCommand) error {
		got = cmd
		return nil
	}}
	handler := newTestSeatHandler(seats, nil)

	c, _ := testutil.NewTestContext(http.MethodDelete, "/subscriptions/4/seats/77", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetURLParam(c, "userId", "77")

	handler.RemoveSeat(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, int64(77), got.UserID)
}

func TestSeatHandler_ChangeSeatScope(t *testing.T) {
	var got usecases.ChangeSeatScopeCommand
	seats := &mockSeatEngineUC{ChangeSeatScopeFunc: func(_ context.Context, cmd usecases.ChangeSeatScopeCommand) (*dto.SeatDTO, error) {
		got = cmd
		return &dto.SeatDTO{UserID: uint64(cmd.UserID), Admin: cmd.Admin}, nil
	}}
	handler := newTestSeatHandler(seats, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/companies/5/seats/77/scope", map[string]any{"admin": true})
	testutil.SetURLParam(c, "companyId", "5")
	testutil.SetURLParam(c, "userId", "77")

	handler.ChangeSeatScope(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ChangeSeatScopeCommand{CompanyID: 5, UserID: 77, Admin: true}, got)
}

func TestSeatHandler_SyncSeats(t *testing.T) {
	var got usecases.SyncSeatsCommand
	seats := &mockSeatEngineUC{SyncSeatsFunc: func(_ context.Context, cmd usecases.SyncSeatsCommand) (*dto.SyncResultDTO, error) {
		got = cmd
		return &dto.SyncResultDTO{Added: []uint64{1}, Skipped: []uint64{2}}, nil
	}}
	handler := newTestSeatHandler(seats, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/companies/5/seats/sync", map[string]any{
		"users": []map[string]any{{"user_id": 1, "admin": true}, {"user_id": 2}},
	})
	testutil.SetURLParam(c, "companyId", "5")

	handler.SyncSeats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []plan.SeatCandidate{{UserID: 1, Admin: true}, {UserID: 2}}, got.Users)

	var result dto.SyncResultDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, []uint64{1}, result.Added)
}

func TestSeatHandler_SyncSeats_InvalidUser(t *testing.T) {
	handler := newTestSeatHandler(&mockSeatEngineUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/companies/5/seats/sync", map[string]any{
		"users": []map[string]any{{"admin": true}},
	})
	testutil.SetURLParam(c, "companyId", "5")

	handler.SyncSeats(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeatHandler_CompanyViews(t *testing.T) {
	seats := &mockSeatEngineUC{
		GetCapacityFunc: func(context.Context, int64) (*dto.CapacityDTO, error) {
			return &dto.CapacityDTO{SubscriptionID: 4, IsWithinLimits: true}, nil
		},
		GetUsageSnapshotFunc: func(context.Context, int64) (*dto.UsageSnapshotDTO, error) {
			return &dto.UsageSnapshotDTO{BaseAmount: 10000, ExtraCost: 2000, TotalCost: 12000}, nil
		},
	}
	reports := &mockPlanReportUC{ListForCompanyFunc: func(context.Context, int64) ([]*dto.PlanReportDTO, error) {
		return []*dto.PlanReportDTO{{ID: 1, TemplateID: 9}}, nil
	}}
	handler := newTestSeatHandler(seats, reports)

	c, w := testutil.NewTestContext(http.MethodGet, "/companies/5/capacity", nil)
	testutil.SetURLParam(c, "companyId", "5")
	handler.GetCapacity(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/companies/5/snapshot", nil)
	testutil.SetURLParam(c, "companyId", "5")
	handler.GetUsageSnapshot(c)
	require.Equal(t, http.StatusOK, w.Code)
	var snapshot dto.UsageSnapshotDTO
	require.NoError(t, testutil.DecodeData(w, &snapshot))
	assert.Equal(t, int64(12000), snapshot.TotalCost)

	c, w = testutil.NewTestContext(http.MethodGet, "/companies/5/reports", nil)
	testutil.SetURLParam(c, "companyId", "5")
	handler.ListCompanyReports(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/companies/x/capacity", nil)
	testutil.SetURLParam(c, "companyId", "x")
	handler.GetCapacity(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
