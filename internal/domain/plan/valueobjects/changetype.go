package valueobjects

import "fmt"

// ChangeType classifies a subscription history entry.
type ChangeType string

const (
	ChangeUpgrade      ChangeType = "upgrade"
	ChangeDowngrade    ChangeType = "downgrade"
	ChangeRenewal      ChangeType = "renewal"
	ChangeCancellation ChangeType = "cancellation"
)

func (c ChangeType) String() string {
	return string(c)
}

func (c ChangeType) IsValid() bool {
	switch c {
	case ChangeUpgrade, ChangeDowngrade, ChangeRenewal, ChangeCancellation:
		return true
	}
	return false
}

func ParseChangeType(s string) (ChangeType, error) {
	c := ChangeType(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid change type: %q", s)
	}
	return c, nil
}
