package valueobjects

import "fmt"

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusExpired   SubscriptionStatus = "expired"
)

var validStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusCancelled: true,
	StatusExpired:   true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return validStatuses[s]
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether a subscription may move from s to target.
// Only active subscriptions change state; cancelled and expired are terminal.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	return s == StatusActive && (target == StatusCancelled || target == StatusExpired)
}

func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %q", s)
	}
	return status, nil
}

// CancellationStatus distinguishes the two phases of a cancellation.
type CancellationStatus string

const (
	CancellationRequested CancellationStatus = "requested"
	CancellationConfirmed CancellationStatus = "confirmed"
)

func (s CancellationStatus) String() string {
	return string(s)
}

func (s CancellationStatus) IsValid() bool {
	return s == CancellationRequested || s == CancellationConfirmed
}

func ParseCancellationStatus(s string) (CancellationStatus, error) {
	status := CancellationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid cancellation status: %q", s)
	}
	return status, nil
}
