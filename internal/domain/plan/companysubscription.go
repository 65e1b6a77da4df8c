package plan

import (
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// CompanySubscription binds a company to a plan for a period.
// A positive additionalUserAmount is the blanket extra-seat price of the
// subscription; zero means no blanket price.
type CompanySubscription struct {
	id                   vo.ID
	companyID            vo.ID
	planID               vo.ID
	amount               int64
	startDate            time.Time
	endDate              time.Time
	status               vo.SubscriptionStatus
	additionalUserAmount int64
	createdAt            time.Time
	updatedAt            time.Time
}

func NewCompanySubscription(companyID, planID vo.ID, amount int64, startDate, endDate time.Time,
	additionalUserAmount int64) (*CompanySubscription, error) {
	if companyID.IsZero() {
		return nil, invalid("company ID is required")
	}
	if planID.IsZero() {
		return nil, invalid("plan ID is required")
	}
	if err := validateTerms(amount, startDate, endDate, additionalUserAmount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &CompanySubscription{
		companyID:            companyID,
		planID:               planID,
		amount:               amount,
		startDate:            startDate,
		endDate:              endDate,
		status:               vo.StatusActive,
		additionalUserAmount: additionalUserAmount,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructCompanySubscription(id, companyID, planID vo.ID, amount int64, startDate, endDate time.Time,
	status vo.SubscriptionStatus, additionalUserAmount int64, createdAt, updatedAt time.Time) (*CompanySubscription, error) {
	if id.IsZero() {
		return nil, invalid("subscription ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, invalid("invalid subscription status: %s", status)
	}
	return &CompanySubscription{
		id:                   id,
		companyID:            companyID,
		planID:               planID,
		amount:               amount,
		startDate:            startDate,
		endDate:              endDate,
		status:               status,
		additionalUserAmount: additionalUserAmount,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func validateTerms(amount int64, startDate, endDate time.Time, additionalUserAmount int64) error {
	if amount < 0 {
		return invalid("subscription amount cannot be negative")
	}
	if additionalUserAmount < 0 {
		return invalid("additional user amount cannot be negative")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return invalid("start and end dates are required")
	}
	if !endDate.After(startDate) {
		return invalid("end date must be after start date")
	}
	return nil
}

func (s *CompanySubscription) ID() vo.ID {
	return s.id
}

func (s *CompanySubscription) CompanyID() vo.ID {
	return s.companyID
}

func (s *CompanySubscription) PlanID() vo.ID {
	return s.planID
}

func (s *CompanySubscription) Amount() int64 {
	return s.amount
}

func (s *CompanySubscription) StartDate() time.Time {
	return s.startDate
}

func (s *CompanySubscription) EndDate() time.Time {
	return s.endDate
}

func (s *CompanySubscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *CompanySubscription) AdditionalUserAmount() int64 {
	return s.additionalUserAmount
}

func (s *CompanySubscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *CompanySubscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *CompanySubscription) SetID(id vo.ID) {
	s.id = id
}

func (s *CompanySubscription) IsActive() bool {
	return s.status.IsActive()
}

// HasBlanketAmount reports whether the subscription carries its own extra-seat price.
func (s *CompanySubscription) HasBlanketAmount() bool {
	return s.additionalUserAmount > 0
}

// IsExpiredAt reports whether an active subscription is past its end date.
func (s *CompanySubscription) IsExpiredAt(t time.Time) bool {
	return s.IsActive() && t.After(s.endDate)
}

func (s *CompanySubscription) transition(to vo.SubscriptionStatus) error {
	if !s.status.CanTransitionTo(to) {
		return ErrInvalidTransition(s.status, to)
	}
	s.status = to
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *CompanySubscription) Cancel() error {
	return s.transition(vo.StatusCancelled)
}

func (s *CompanySubscription) Expire() error {
	return s.transition(vo.StatusExpired)
}

// UpdateTerms changes the mutable commercial fields, re-running creation validation.
func (s *CompanySubscription) UpdateTerms(amount int64, endDate time.Time, additionalUserAmount int64) error {
	if err := validateTerms(amount, s.startDate, endDate, additionalUserAmount); err != nil {
		return err
	}
	s.amount = amount
	s.endDate = endDate
	s.additionalUserAmount = additionalUserAmount
	s.updatedAt = time.Now().UTC()
	return nil
}

// ChangePlan moves an active subscription to another plan at the given amount.
func (s *CompanySubscription) ChangePlan(planID vo.ID, amount int64) error {
	if !s.IsActive() {
		return ErrSubscriptionInactive
	}
	if planID.IsZero() {
		return invalid("plan ID is required")
	}
	if planID == s.planID {
		return invalid("subscription is already on plan %s", planID)
	}
	if amount < 0 {
		return invalid("subscription amount cannot be negative")
	}
	s.planID = planID
	s.amount = amount
	s.updatedAt = time.Now().UTC()
	return nil
}

// Renew extends an active subscription to a later end date.
func (s *CompanySubscription) Renew(newEndDate time.Time) error {
	if !s.IsActive() {
		return ErrSubscriptionInactive
	}
	if !newEndDate.After(s.endDate) {
		return invalid("new end date must be after the current end date")
	}
	s.endDate = newEndDate
	s.updatedAt = time.Now().UTC()
	return nil
}
