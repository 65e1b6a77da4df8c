package valueobjects

import (
	"fmt"
	"strings"
)

// Duration is the billing period of a plan.
type Duration string

const (
	DurationMonthly   Duration = "monthly"
	DurationQuarterly Duration = "quarterly"
	DurationYearly    Duration = "yearly"
	DurationLifetime  Duration = "lifetime"
)

var validDurations = map[Duration]bool{
	DurationMonthly:   true,
	DurationQuarterly: true,
	DurationYearly:    true,
	DurationLifetime:  true,
}

// legacy spellings still accepted on input
var durationAliases = map[string]Duration{
	"mensal":     DurationMonthly,
	"trimestral": DurationQuarterly,
	"anual":      DurationYearly,
	"vitalicio":  DurationLifetime,
}

func (d Duration) String() string {
	return string(d)
}

func (d Duration) IsValid() bool {
	return validDurations[d]
}

// Months returns the period length in months; lifetime returns 0.
func (d Duration) Months() int {
	switch d {
	case DurationMonthly:
		return 1
	case DurationQuarterly:
		return 3
	case DurationYearly:
		return 12
	default:
		return 0
	}
}

// ParseDuration normalizes and validates a duration string.
func ParseDuration(s string) (Duration, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := durationAliases[normalized]; ok {
		return alias, nil
	}
	d := Duration(normalized)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid plan duration: %q", s)
	}
	return d, nil
}
