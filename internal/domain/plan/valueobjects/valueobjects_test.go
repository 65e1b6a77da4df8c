package valueobjects

import (
	"errors"
	"math"
	"testing"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name    string
		in      int64
		wantErr bool
	}{
		{"positive", 1, false},
		{"large", math.MaxInt64, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewID(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidID) {
				t.Errorf("expected ErrInvalidID, got %v", err)
			}
			if !tt.wantErr && id.Uint64() != uint64(tt.in) {
				t.Errorf("NewID(%d) = %d", tt.in, id)
			}
		})
	}
}

func TestIDFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    ID
		wantErr bool
	}{
		{"integer", 42, 42, false},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
		{"fraction", 1.5, 0, true},
		{"zero", 0, 0, true},
		{"negative", -3, 0, true},
		{"largest exact float", 1 << 53, 1 << 53, false},
		{"two to the 63rd", math.Exp2(63), 0, true},
		{"beyond int64", 1e19, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := IDFromFloat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IDFromFloat(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if id != tt.want {
				t.Errorf("IDFromFloat(%v) = %d, want %d", tt.in, id, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"7", 7, false},
		{" 12 ", 12, false},
		{"abc", 0, true},
		{"1.0", 0, true},
		{"0", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, err := ParseID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if id != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.in, id, tt.want)
			}
		})
	}
}

func TestOptionalID(t *testing.T) {
	if OptionalID(nil) != nil {
		t.Error("nil should stay nil")
	}
	zero := uint64(0)
	if OptionalID(&zero) != nil {
		t.Error("zero should map to nil")
	}
	five := uint64(5)
	got := OptionalID(&five)
	if got == nil || *got != 5 {
		t.Fatalf("OptionalID(5) = %v", got)
	}
	if back := OptionalUint64(got); back == nil || *back != 5 {
		t.Errorf("OptionalUint64 round trip = %v", back)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    Duration
		wantErr bool
	}{
		{"monthly", DurationMonthly, false},
		{" Yearly ", DurationYearly, false},
		{"quarterly", DurationQuarterly, false},
		{"lifetime", DurationLifetime, false},
		{"mensal", DurationMonthly, false},
		{"vitalicio", DurationLifetime, false},
		{"weekly", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if DurationQuarterly.Months() != 3 || DurationLifetime.Months() != 0 {
		t.Error("unexpected month counts")
	}
}

func TestSeatScope(t *testing.T) {
	if ScopeFromAdmin(true) != ScopeAdmin || ScopeFromAdmin(false) != ScopeRegular {
		t.Fatal("ScopeFromAdmin mapping broken")
	}
	if _, err := ParseSeatScope("owner"); err == nil {
		t.Error("expected error for unknown scope")
	}
	s, err := ParseSeatScope("ADMIN")
	if err != nil || !s.IsAdmin() {
		t.Errorf("ParseSeatScope(ADMIN) = %q, %v", s, err)
	}
	if ScopeRegular.Label() != "Regular user" {
		t.Errorf("unexpected label %q", ScopeRegular.Label())
	}
}

func TestSubscriptionStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to SubscriptionStatus
		want     bool
	}{
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusExpired, true},
		{StatusActive, StatusActive, false},
		{StatusCancelled, StatusActive, false},
		{StatusExpired, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseChangeType(t *testing.T) {
	for _, valid := range []string{"upgrade", "downgrade", "renewal", "cancellation"} {
		if _, err := ParseChangeType(valid); err != nil {
			t.Errorf("ParseChangeType(%q) unexpected error %v", valid, err)
		}
	}
	if _, err := ParseChangeType("pause"); err == nil {
		t.Error("expected error for unknown change type")
	}
}
