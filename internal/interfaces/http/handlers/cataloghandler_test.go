package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/interfaces/http/handlers/testutil"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

func newTestCatalogHandler(pt *mockPlanTypeUC, p *mockPlanUC, sl *mockSeatLimitUC, r *mockPlanReportUC) *CatalogHandler {
	return NewCatalogHandler(pt, p, sl, r, logger.NewNopLogger())
}

// =====================================================================
// Plan types
// =====================================================================

func TestCatalogHandler_CreatePlanType_DefaultsActive(t *testing.T) {
	var got usecases.PlanTypeCommand
	pt := &mockPlanTypeUC{CreateFunc: func(_ context.Context, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error) {
		got = cmd
		return &dto.PlanTypeDTO{ID: 1, TypeName: cmd.TypeName, IsActive: cmd.IsActive}, nil
	}}
	handler := newTestCatalogHandler(pt, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/plan-types", map[string]any{"type_name": "Enterprise"})
	testutil.SetAuthContext(c, 5, authorization.RoleAdmin)

	handler.CreatePlanType(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, got.IsActive)
	assert.Equal(t, uint64(5), got.ActorID)

	var result dto.PlanTypeDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Equal(t, "Enterprise", result.TypeName)
}

func TestCatalogHandler_CreatePlanType_MissingName(t *testing.T) {
	handler := newTestCatalogHandler(&mockPlanTypeUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/plan-types", map[string]any{"description": "x"})

	handler.CreatePlanType(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestCatalogHandler_UpdatePlanType_ExplicitInactive(t *testing.T) {
	var gotID int64
	var got usecases.PlanTypeCommand
	pt := &mockPlanTypeUC{UpdateFunc: func(_ context.Context, id int64, cmd usecases.PlanTypeCommand) (*dto.PlanTypeDTO, error) {
		gotID, got = id, cmd
		return &dto.PlanTypeDTO{ID: uint64(id)}, nil
	}}
	handler := newTestCatalogHandler(pt, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/plan-types/3", map[string]any{"type_name": "Basic", "is_active": false})
	testutil.SetURLParam(c, "id", "3")

	handler.UpdatePlanType(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), gotID)
	assert.False(t, got.IsActive)
}

func TestCatalogHandler_DeletePlanType(t *testing.T) {
	tests := []struct {
		name   string
		param  string
		err    error
		status int
	}{
		{name: "deleted", param: "4", status: http.StatusNoContent},
		{name: "invalid id", param: "abc", status: http.StatusBadRequest},
		{name: "referenced by plans", param: "4", err: errors.NewConflictError("plan type is in use"), status: http.StatusConflict},
		{name: "missing", param: "4", err: errors.NewNotFoundError("plan type not found"), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := &mockPlanTypeUC{DeleteFunc: func(context.Context, int64, uint64) error { return tt.err }}
			handler := newTestCatalogHandler(pt, nil, nil, nil)

			c, _ := testutil.NewTestContext(http.MethodDelete, "/plan-types/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)

			handler.DeletePlanType(c)

			assert.Equal(t, tt.status, c.Writer.Status())
		})
	}
}

func TestCatalogHandler_ListPlanTypes(t *testing.T) {
	pt := &mockPlanTypeUC{ListFunc: func(context.Context) ([]*dto.PlanTypeDTO, error) {
		return []*dto.PlanTypeDTO{{ID: 1}, {ID: 2}}, nil
	}}
	handler := newTestCatalogHandler(pt, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/plan-types", nil)

	handler.ListPlanTypes(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var result []dto.PlanTypeDTO
	require.NoError(t, testutil.DecodeData(w, &result))
	assert.Len(t, result, 2)
}

// =====================================================================
// Plans
// =====================================================================

func TestCatalogHandler_CreatePlan(t *testing.T) {
	var got usecases.PlanCommand
	p := &mockPlanUC{CreateFunc: func(_ context.Context, cmd usecases.PlanCommand) (*dto.PlanDTO, error) {
		got = cmd
		return &dto.PlanDTO{ID: 10, Name: cmd.Name, Duration: cmd.Duration}, nil
	}}
	handler := newTestCatalogHandler(nil, p, nil, nil)

	body := map[string]any{
		"name":           "Pro Monthly",
		"default_amount": 9900,
		"duration":       "Mensal",
		"plan_type_id":   2,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans", body)
	testutil.SetAuthContext(c, 7, authorization.RoleAdmin)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(9900), got.DefaultAmount)
	assert.Equal(t, int64(2), got.PlanTypeID)
	assert.Equal(t, uint64(7), got.ActorID)
}

func TestCatalogHandler_CreatePlan_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing plan type", body: map[string]any{"name": "x", "duration": "Mensal"}},
		{name: "negative amount", body: map[string]any{"name": "x", "duration": "Mensal", "plan_type_id": 1, "default_amount": -1}},
		{name: "missing duration", body: map[string]any{"name": "x", "plan_type_id": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestCatalogHandler(nil, &mockPlanUC{}, nil, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/plans", tt.body)

			handler.CreatePlan(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCatalogHandler_GetPlan_NotFound(t *testing.T) {
	p := &mockPlanUC{GetFunc: func(context.Context, int64) (*dto.PlanDTO, error) {
		return nil, errors.NewNotFoundError("plan not found")
	}}
	handler := newTestCatalogHandler(nil, p, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Seat limits
// =====================================================================

func TestCatalogHandler_CreateSeatLimit(t *testing.T) {
	var got usecases.CreateSeatLimitCommand
	sl := &mockSeatLimitUC{CreateFunc: func(_ context.Context, cmd usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
		got = cmd
		return &dto.SeatLimitDTO{ID: 1, PlanTypeID: uint64(cmd.PlanTypeID), Admin: cmd.Admin, MaxSeats: cmd.MaxSeats}, nil
	}}
	handler := newTestCatalogHandler(nil, nil, sl, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/plan-types/2/seat-limits", map[string]any{
		"admin": true, "max_seats": 3, "extra_seat_price": 1500,
	})
	testutil.SetURLParam(c, "id", "2")

	handler.CreateSeatLimit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.CreateSeatLimitCommand{PlanTypeID: 2, Admin: true, MaxSeats: 3, ExtraSeatPrice: 1500}, got)
}

func TestCatalogHandler_CreateSeatLimit_DuplicateScope(t *testing.T) {
	sl := &mockSeatLimitUC{CreateFunc: func(context.Context, usecases.CreateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
		return nil, errors.NewConflictError("seat limit already configured for scope")
	}}
	handler := newTestCatalogHandler(nil, nil, sl, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/plan-types/2/seat-limits", map[string]any{"max_seats": 3})
	testutil.SetURLParam(c, "id", "2")

	handler.CreateSeatLimit(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCatalogHandler_GetSeatLimitByScope(t *testing.T) {
	tests := []struct {
		scope     string
		wantAdmin bool
		status    int
	}{
		{scope: "admin", wantAdmin: true, status: http.StatusOK},
		{scope: "regular", wantAdmin: false, status: http.StatusOK},
		{scope: "owner", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			var gotAdmin bool
			sl := &mockSeatLimitUC{GetByScopeFunc: func(_ context.Context, _ int64, admin bool) (*dto.SeatLimitDTO, error) {
				gotAdmin = admin
				return &dto.SeatLimitDTO{Admin: admin}, nil
			}}
			handler := newTestCatalogHandler(nil, nil, sl, nil)

			c, w := testutil.NewTestContext(http.MethodGet, "/plan-types/2/seat-limits/"+tt.scope, nil)
			testutil.SetURLParam(c, "id", "2")
			testutil.SetURLParam(c, "scope", tt.scope)

			handler.GetSeatLimitByScope(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.wantAdmin, gotAdmin)
			}
		})
	}
}

func TestCatalogHandler_UpdateSeatLimit(t *testing.T) {
	var got usecases.UpdateSeatLimitCommand
	sl := &mockSeatLimitUC{UpdateFunc: func(_ context.Context, _ int64, cmd usecases.UpdateSeatLimitCommand) (*dto.SeatLimitDTO, error) {
		got = cmd
		return &dto.SeatLimitDTO{MaxSeats: cmd.MaxSeats}, nil
	}}
	handler := newTestCatalogHandler(nil, nil, sl, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/seat-limits/8", map[string]any{"max_seats": 0, "extra_seat_price": 0})
	testutil.SetURLParam(c, "id", "8")

	handler.UpdateSeatLimit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, got.MaxSeats)
}

// =====================================================================
// Report links
// =====================================================================

func TestCatalogHandler_AddPlanReport(t *testing.T) {
	var gotPlanType, gotTemplate int64
	r := &mockPlanReportUC{AddFunc: func(_ context.Context, planTypeID, templateID int64, _ uint64) (*dto.PlanReportDTO, error) {
		gotPlanType, gotTemplate = planTypeID, templateID
		return &dto.PlanReportDTO{ID: 1, PlanTypeID: uint64(planTypeID), TemplateID: uint64(templateID)}, nil
	}}
	handler := newTestCatalogHandler(nil, nil, nil, r)

	c, w := testutil.NewTestContext(http.MethodPost, "/plan-types/2/reports", map[string]any{"report_template_id": 44})
	testutil.SetURLParam(c, "id", "2")

	handler.AddPlanReport(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(2), gotPlanType)
	assert.Equal(t, int64(44), gotTemplate)
}

func TestCatalogHandler_DeletePlanReport(t *testing.T) {
	r := &mockPlanReportUC{DeleteFunc: func(context.Context, int64, uint64) error { return nil }}
	handler := newTestCatalogHandler(nil, nil, nil, r)

	c, _ := testutil.NewTestContext(http.MethodDelete, "/plan-reports/3", nil)
	testutil.SetURLParam(c, "id", "3")

	handler.DeletePlanReport(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
}
