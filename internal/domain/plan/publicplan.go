package plan

import (
	"strings"
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

const (
	DefaultCatalogLimit = 20
	MaxCatalogLimit     = 100
)

type CatalogSort string

const (
	SortByPrice     CatalogSort = "price"
	SortByName      CatalogSort = "name"
	SortByCreatedAt CatalogSort = "created_at"
)

// CatalogQuery filters and pages the public catalog. Zero values mean
// "not set"; Normalize applies defaults and validates.
type CatalogQuery struct {
	Limit     int
	Offset    int
	PlanType  string
	Duration  vo.Duration
	Active    *bool
	MinAmount *int64
	MaxAmount *int64
	Sort      CatalogSort
	Desc      bool
}

// CatalogParams is the raw, unvalidated form of CatalogQuery.
type CatalogParams struct {
	Limit     *int
	Offset    *int
	PlanType  string
	Duration  string
	Active    *bool
	MinAmount *int64
	MaxAmount *int64
	Sort      string
	Order     string
}

// NewCatalogQuery validates params before any storage access. A limit above
// MaxCatalogLimit is capped.
func NewCatalogQuery(p CatalogParams) (CatalogQuery, error) {
	q := CatalogQuery{Limit: DefaultCatalogLimit, Sort: SortByName}

	if p.Limit != nil {
		if *p.Limit < 1 {
			return CatalogQuery{}, invalid("limit must be greater than 0")
		}
		// Oversized pages are clamped on purpose, not rejected.
		q.Limit = min(*p.Limit, MaxCatalogLimit)
	}
	if p.Offset != nil {
		if *p.Offset < 0 {
			return CatalogQuery{}, invalid("offset cannot be negative")
		}
		q.Offset = *p.Offset
	}
	if p.MinAmount != nil && *p.MinAmount < 0 {
		return CatalogQuery{}, invalid("minimum amount cannot be negative")
	}
	if p.MaxAmount != nil && *p.MaxAmount < 0 {
		return CatalogQuery{}, invalid("maximum amount cannot be negative")
	}
	if p.MinAmount != nil && p.MaxAmount != nil && *p.MinAmount > *p.MaxAmount {
		return CatalogQuery{}, invalid("minimum amount cannot be greater than maximum amount")
	}
	q.MinAmount = p.MinAmount
	q.MaxAmount = p.MaxAmount

	if s := strings.TrimSpace(p.Sort); s != "" {
		switch CatalogSort(s) {
		case SortByPrice, SortByName, SortByCreatedAt:
			q.Sort = CatalogSort(s)
		default:
			return CatalogQuery{}, invalid("invalid sort field, valid options are: price, name, created_at")
		}
	}
	if o := strings.ToLower(strings.TrimSpace(p.Order)); o != "" {
		switch o {
		case "asc":
		case "desc":
			q.Desc = true
		default:
			return CatalogQuery{}, invalid("invalid order direction, valid options are: asc, desc")
		}
	}
	if p.Duration != "" {
		d, err := vo.ParseDuration(p.Duration)
		if err != nil {
			return CatalogQuery{}, invalid("invalid plan duration")
		}
		q.Duration = d
	}

	active := true
	if p.Active != nil {
		active = *p.Active
	}
	q.Active = &active
	q.PlanType = strings.TrimSpace(p.PlanType)
	return q, nil
}

// PublicPlanType is the plan type embedded in a catalog entry.
type PublicPlanType struct {
	ID          vo.ID
	TypeName    string
	Description string
	IsActive    bool
}

// PublicPlan is a denormalized catalog entry. Limits and prices of a scope
// without config are zero.
type PublicPlan struct {
	ID                vo.ID
	Name              string
	Description       string
	DefaultAmount     int64
	Duration          vo.Duration
	PlanType          PublicPlanType
	AdminSeats        int
	RegularSeats      int
	ExtraAdminPrice   int64
	ExtraRegularPrice int64
	CreatedAt         time.Time
}
