package plan

import (
	"strings"
	"time"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// SubscriptionHistory is an append-only record of a subscription change.
type SubscriptionHistory struct {
	id             vo.ID
	subscriptionID vo.ID
	companyID      vo.ID
	previousPlanID *vo.ID
	newPlanID      *vo.ID
	changeType     vo.ChangeType
	reason         string
	metadata       map[string]any
	changedAt      time.Time
	changedBy      vo.ID
	createdAt      time.Time
}

func NewSubscriptionHistory(subscription *CompanySubscription, previousPlanID, newPlanID *vo.ID,
	changeType vo.ChangeType, reason string, changedBy vo.ID, metadata map[string]any) (*SubscriptionHistory, error) {
	if subscription == nil || subscription.ID().IsZero() {
		return nil, invalid("subscription is required")
	}
	if !changeType.IsValid() {
		return nil, invalid("invalid change type: %s", changeType)
	}
	if changeType != vo.ChangeCancellation && newPlanID == nil {
		return nil, invalid("new plan ID is required for %s", changeType)
	}
	if changedBy.IsZero() {
		return nil, invalid("changing user ID is required")
	}

	now := time.Now().UTC()
	return &SubscriptionHistory{
		subscriptionID: subscription.ID(),
		companyID:      subscription.CompanyID(),
		previousPlanID: previousPlanID,
		newPlanID:      newPlanID,
		changeType:     changeType,
		reason:         strings.TrimSpace(reason),
		metadata:       metadata,
		changedAt:      now,
		changedBy:      changedBy,
		createdAt:      now,
	}, nil
}

func ReconstructSubscriptionHistory(id, subscriptionID, companyID vo.ID, previousPlanID, newPlanID *vo.ID,
	changeType vo.ChangeType, reason string, metadata map[string]any, changedAt time.Time, changedBy vo.ID,
	createdAt time.Time) (*SubscriptionHistory, error) {
	if id.IsZero() {
		return nil, invalid("history ID cannot be zero")
	}
	return &SubscriptionHistory{
		id:             id,
		subscriptionID: subscriptionID,
		companyID:      companyID,
		previousPlanID: previousPlanID,
		newPlanID:      newPlanID,
		changeType:     changeType,
		reason:         reason,
		metadata:       metadata,
		changedAt:      changedAt,
		changedBy:      changedBy,
		createdAt:      createdAt,
	}, nil
}

func (h *SubscriptionHistory) ID() vo.ID {
	return h.id
}

func (h *SubscriptionHistory) SubscriptionID() vo.ID {
	return h.subscriptionID
}

func (h *SubscriptionHistory) CompanyID() vo.ID {
	return h.companyID
}

func (h *SubscriptionHistory) PreviousPlanID() *vo.ID {
	return h.previousPlanID
}

func (h *SubscriptionHistory) NewPlanID() *vo.ID {
	return h.newPlanID
}

func (h *SubscriptionHistory) ChangeType() vo.ChangeType {
	return h.changeType
}

func (h *SubscriptionHistory) Reason() string {
	return h.reason
}

func (h *SubscriptionHistory) Metadata() map[string]any {
	return h.metadata
}

// CancellationID returns the cancellation recorded in the metadata of a
// cancellation entry. Metadata loaded from storage carries JSON numbers.
func (h *SubscriptionHistory) CancellationID() (vo.ID, bool) {
	switch v := h.metadata["cancellation_id"].(type) {
	case float64:
		id, err := vo.IDFromFloat(v)
		return id, err == nil
	case uint64:
		return vo.ID(v), v > 0
	}
	return 0, false
}

func (h *SubscriptionHistory) ChangedAt() time.Time {
	return h.changedAt
}

func (h *SubscriptionHistory) ChangedBy() vo.ID {
	return h.changedBy
}

func (h *SubscriptionHistory) CreatedAt() time.Time {
	return h.createdAt
}

func (h *SubscriptionHistory) SetID(id vo.ID) {
	h.id = id
}

// ClassifyPlanChange returns upgrade when the new amount is higher, downgrade otherwise.
func ClassifyPlanChange(previousAmount, newAmount int64) vo.ChangeType {
	if newAmount > previousAmount {
		return vo.ChangeUpgrade
	}
	return vo.ChangeDowngrade
}
