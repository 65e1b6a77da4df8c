package dto

import (
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

func ToPlanTypeDTO(t *plan.PlanType) *PlanTypeDTO {
	if t == nil {
		return nil
	}
	return &PlanTypeDTO{
		ID:          t.ID().Uint64(),
		TypeName:    t.TypeName(),
		Description: t.Description(),
		IsActive:    t.IsActive(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID().Uint64(),
		Name:          p.Name(),
		Description:   p.Description(),
		DefaultAmount: p.DefaultAmount(),
		Duration:      p.Duration().String(),
		PlanTypeID:    p.PlanTypeID().Uint64(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func ToSeatLimitDTO(c *plan.SeatLimitConfig) *SeatLimitDTO {
	if c == nil {
		return nil
	}
	return &SeatLimitDTO{
		ID:             c.ID().Uint64(),
		PlanTypeID:     c.PlanTypeID().Uint64(),
		Scope:          c.Scope().String(),
		Admin:          c.Scope().IsAdmin(),
		MaxSeats:       c.MaxSeats(),
		ExtraSeatPrice: c.ExtraSeatPrice(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func ToPriceOverrideDTO(o *plan.PriceOverride) *PriceOverrideDTO {
	if o == nil {
		return nil
	}
	return &PriceOverrideDTO{
		ID:             o.ID().Uint64(),
		SubscriptionID: o.SubscriptionID().Uint64(),
		Scope:          o.Scope().String(),
		Admin:          o.Scope().IsAdmin(),
		ExtraSeatPrice: o.ExtraSeatPrice(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func ToSubscriptionDTO(s *plan.CompanySubscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:                   s.ID().Uint64(),
		CompanyID:            s.CompanyID().Uint64(),
		PlanID:               s.PlanID().Uint64(),
		Amount:               s.Amount(),
		StartDate:            s.StartDate(),
		EndDate:              s.EndDate(),
		Status:               s.Status().String(),
		IsActive:             s.IsActive(),
		AdditionalUserAmount: s.AdditionalUserAmount(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
	}
}

func ToSeatDTO(u *plan.SeatUsage) *SeatDTO {
	if u == nil {
		return nil
	}
	return &SeatDTO{
		ID:             u.ID().Uint64(),
		SubscriptionID: u.SubscriptionID().Uint64(),
		UserID:         u.UserID().Uint64(),
		Scope:          u.Scope().String(),
		Admin:          u.IsAdmin(),
		CreatedAt:      u.CreatedAt(),
		UpdatedAt:      u.UpdatedAt(),
	}
}

func ToCancellationDTO(c *plan.Cancellation) *CancellationDTO {
	if c == nil {
		return nil
	}
	return &CancellationDTO{
		ID:             c.ID().Uint64(),
		SubscriptionID: c.SubscriptionID().Uint64(),
		Reason:         c.Reason(),
		Details:        c.Details(),
		Status:         c.Status().String(),
		RequestedBy:    c.RequestedBy().Uint64(),
		ConfirmedBy:    vo.OptionalUint64(c.ConfirmedBy()),
		RequestedAt:    c.RequestedAt(),
		CancelledAt:    c.CancelledAt(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

func ToHistoryDTO(h *plan.SubscriptionHistory) *HistoryDTO {
	if h == nil {
		return nil
	}
	out := &HistoryDTO{
		ID:             h.ID().Uint64(),
		SubscriptionID: h.SubscriptionID().Uint64(),
		CompanyID:      h.CompanyID().Uint64(),
		PreviousPlanID: vo.OptionalUint64(h.PreviousPlanID()),
		NewPlanID:      vo.OptionalUint64(h.NewPlanID()),
		ChangeType:     h.ChangeType().String(),
		Reason:         h.Reason(),
		Metadata:       h.Metadata(),
		ChangedAt:      h.ChangedAt(),
		ChangedBy:      h.ChangedBy().Uint64(),
	}
	if id, ok := h.CancellationID(); ok {
		v := id.Uint64()
		out.CancellationID = &v
	}
	return out
}

func ToPlanReportDTO(r *plan.PlanReport) *PlanReportDTO {
	if r == nil {
		return nil
	}
	return &PlanReportDTO{
		ID:         r.ID().Uint64(),
		PlanTypeID: r.PlanTypeID().Uint64(),
		TemplateID: r.TemplateID().Uint64(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

// ToList converts a slice with the given converter, never returning nil.
func ToList[T any, D any](items []T, convert func(T) *D) []*D {
	out := make([]*D, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

func ToExtraSeatPriceDTO(subscriptionID vo.ID, scope vo.SeatScope, p plan.ExtraSeatPrice) *ExtraSeatPriceDTO {
	return &ExtraSeatPriceDTO{
		SubscriptionID: subscriptionID.Uint64(),
		Scope:          scope.String(),
		Source:         string(p.Source),
		UnitPrice:      p.UnitPrice,
		Quantity:       p.Quantity,
		Total:          p.Total,
	}
}

func toScopeCapacityDTO(c plan.ScopeCapacity) ScopeCapacityDTO {
	return ScopeCapacityDTO{
		Current:     c.Current,
		Limit:       c.Limit,
		Configured:  c.Configured,
		WithinLimit: c.WithinLimit,
		Remaining:   c.Remaining,
	}
}

func ToCapacityDTO(c plan.Capacity) *CapacityDTO {
	return &CapacityDTO{
		SubscriptionID: c.SubscriptionID.Uint64(),
		Admin:          toScopeCapacityDTO(c.Admin),
		Regular:        toScopeCapacityDTO(c.Regular),
		IsWithinLimits: c.WithinLimits,
	}
}

func toScopeUsageDTO(u plan.ScopeUsage) ScopeUsageDTO {
	return ScopeUsageDTO{
		ScopeCapacityDTO: toScopeCapacityDTO(u.ScopeCapacity),
		ExtraSeats:       u.ExtraSeats(),
		PriceSource:      string(u.PriceSource),
		UnitPrice:        u.UnitPrice,
		ExtraCost:        u.ExtraCost,
	}
}

func ToUsageSnapshotDTO(s plan.UsageSnapshot) *UsageSnapshotDTO {
	return &UsageSnapshotDTO{
		Subscription:   ToSubscriptionDTO(s.Subscription),
		Admin:          toScopeUsageDTO(s.Admin),
		Regular:        toScopeUsageDTO(s.Regular),
		IsWithinLimits: s.WithinLimits,
		BaseAmount:     s.BaseAmount,
		ExtraCost:      s.ExtraCost,
		TotalCost:      s.TotalCost,
		Reports:        ToList(s.Reports, ToPlanReportDTO),
	}
}

func ToSyncResultDTO(r plan.SyncResult) *SyncResultDTO {
	out := &SyncResultDTO{
		Added:   make([]uint64, 0, len(r.Added)),
		Skipped: make([]uint64, 0, len(r.Skipped)),
		Errors:  make([]SyncErrorDTO, 0, len(r.Errors)),
	}
	for _, id := range r.Added {
		out.Added = append(out.Added, id.Uint64())
	}
	for _, id := range r.Skipped {
		out.Skipped = append(out.Skipped, id.Uint64())
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, SyncErrorDTO{UserID: e.UserID, Error: e.Reason})
	}
	return out
}

// ToPublicPlanDTO leaves DescriptionHTML and FormattedBasePrice for the caller.
func ToPublicPlanDTO(p *plan.PublicPlan, currency string) *PublicPlanDTO {
	if p == nil {
		return nil
	}
	return &PublicPlanDTO{
		ID:            p.ID.Uint64(),
		Name:          p.Name,
		Description:   p.Description,
		DefaultAmount: p.DefaultAmount,
		Duration:      p.Duration.String(),
		PlanType: PublicPlanTypeDTO{
			ID:          p.PlanType.ID.Uint64(),
			TypeName:    p.PlanType.TypeName,
			Description: p.PlanType.Description,
			IsActive:    p.PlanType.IsActive,
		},
		UserLimits: UserLimitsDTO{
			AdminUsers:  p.AdminSeats,
			CommonUsers: p.RegularSeats,
		},
		Pricing: PublicPricingDTO{
			BasePrice:            p.DefaultAmount,
			Currency:             currency,
			ExtraAdminUserPrice:  p.ExtraAdminPrice,
			ExtraCommonUserPrice: p.ExtraRegularPrice,
		},
	}
}
