package dto

import "time"

// Amounts are integer minor units (cents).

type PlanTypeDTO struct {
	ID          uint64    `json:"id"`
	TypeName    string    `json:"type_name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PlanDTO struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DefaultAmount int64     `json:"default_amount"`
	Duration      string    `json:"duration"`
	PlanTypeID    uint64    `json:"plan_type_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SeatLimitDTO struct {
	ID             uint64    `json:"id"`
	PlanTypeID     uint64    `json:"plan_type_id"`
	Scope          string    `json:"scope"`
	Admin          bool      `json:"admin"`
	MaxSeats       int       `json:"max_seats"`
	ExtraSeatPrice int64     `json:"extra_seat_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PriceOverrideDTO struct {
	ID             uint64    `json:"id"`
	SubscriptionID uint64    `json:"subscription_id"`
	Scope          string    `json:"scope"`
	Admin          bool      `json:"admin"`
	ExtraSeatPrice int64     `json:"extra_seat_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID                   uint64    `json:"id"`
	CompanyID            uint64    `json:"company_id"`
	PlanID               uint64    `json:"plan_id"`
	Amount               int64     `json:"amount"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	Status               string    `json:"status"`
	IsActive             bool      `json:"is_active"`
	AdditionalUserAmount int64     `json:"additional_user_amount"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type SeatDTO struct {
	ID             uint64    `json:"id"`
	SubscriptionID uint64    `json:"subscription_id"`
	UserID         uint64    `json:"user_id"`
	Scope          string    `json:"scope"`
	Admin          bool      `json:"admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CancellationDTO struct {
	ID             uint64         `json:"id"`
	SubscriptionID uint64         `json:"subscription_id"`
	Reason         string         `json:"reason"`
	Details        map[string]any `json:"details,omitempty"`
	Status         string         `json:"status"`
	RequestedBy    uint64         `json:"requested_by"`
	ConfirmedBy    *uint64        `json:"confirmed_by,omitempty"`
	RequestedAt    time.Time      `json:"requested_at"`
	CancelledAt    *time.Time     `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type HistoryDTO struct {
	ID             uint64         `json:"id"`
	SubscriptionID uint64         `json:"subscription_id"`
	CompanyID      uint64         `json:"company_id"`
	PreviousPlanID *uint64        `json:"previous_plan_id"`
	NewPlanID      *uint64        `json:"new_plan_id"`
	ChangeType     string         `json:"change_type"`
	Reason         string         `json:"reason"`
	CancellationID *uint64        `json:"cancellation_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ChangedAt      time.Time      `json:"changed_at"`
	ChangedBy      uint64         `json:"changed_by"`
}

type PlanReportDTO struct {
	ID         uint64    `json:"id"`
	PlanTypeID uint64    `json:"plan_type_id"`
	TemplateID uint64    `json:"template_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ExtraSeatPriceDTO struct {
	SubscriptionID uint64 `json:"subscription_id"`
	Scope          string `json:"scope"`
	Source         string `json:"source"`
	UnitPrice      int64  `json:"unit_price"`
	Quantity       int    `json:"quantity"`
	Total          int64  `json:"total"`
}

type ScopeCapacityDTO struct {
	Current     int  `json:"current"`
	Limit       int  `json:"limit"`
	Configured  bool `json:"configured"`
	WithinLimit bool `json:"within_limit"`
	Remaining   int  `json:"remaining"`
}

type CapacityDTO struct {
	SubscriptionID uint64           `json:"subscription_id"`
	Admin          ScopeCapacityDTO `json:"admin"`
	Regular        ScopeCapacityDTO `json:"regular"`
	IsWithinLimits bool             `json:"is_within_limits"`
}

type ScopeUsageDTO struct {
	ScopeCapacityDTO
	ExtraSeats  int    `json:"extra_seats"`
	PriceSource string `json:"price_source"`
	UnitPrice   int64  `json:"unit_price"`
	ExtraCost   int64  `json:"extra_cost"`
}

type UsageSnapshotDTO struct {
	Subscription   *SubscriptionDTO `json:"subscription"`
	Admin          ScopeUsageDTO    `json:"admin"`
	Regular        ScopeUsageDTO    `json:"regular"`
	IsWithinLimits bool             `json:"is_within_limits"`
	BaseAmount     int64            `json:"base_amount"`
	ExtraCost      int64            `json:"extra_cost"`
	TotalCost      int64            `json:"total_cost"`
	Reports        []*PlanReportDTO `json:"reports"`
}

type SyncErrorDTO struct {
	UserID int64  `json:"user_id"`
	Error  string `json:"error"`
}

type SyncResultDTO struct {
	Added   []uint64       `json:"added"`
	Skipped []uint64       `json:"skipped"`
	Errors  []SyncErrorDTO `json:"errors"`
}

type PublicPlanTypeDTO struct {
	ID          uint64 `json:"plan_type_id"`
	TypeName    string `json:"type_name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type UserLimitsDTO struct {
	AdminUsers  int `json:"admin_users"`
	CommonUsers int `json:"common_users"`
}

type PublicPricingDTO struct {
	BasePrice            int64  `json:"base_price"`
	FormattedBasePrice   string `json:"formatted_base_price"`
	Currency             string `json:"currency"`
	ExtraAdminUserPrice  int64  `json:"extra_admin_user_price"`
	ExtraCommonUserPrice int64  `json:"extra_common_user_price"`
}

type PublicPlanDTO struct {
	ID              uint64            `json:"plan_id"`
	Name            string            `json:"plan_name"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	DefaultAmount   int64             `json:"default_amount"`
	Duration        string            `json:"plan_duration"`
	PlanType        PublicPlanTypeDTO `json:"plan_type"`
	UserLimits      UserLimitsDTO     `json:"user_limits"`
	Pricing         PublicPricingDTO  `json:"pricing"`
}

type PublicPlanListDTO struct {
	Plans  []*PublicPlanDTO `json:"plans"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
