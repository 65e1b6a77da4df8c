package valueobjects

import (
	"fmt"
	"strings"
)

// SeatScope classifies a seat as admin or regular.
type SeatScope string

const (
	ScopeAdmin   SeatScope = "admin"
	ScopeRegular SeatScope = "regular"
)

// AllScopes lists scopes in reporting order.
var AllScopes = []SeatScope{ScopeAdmin, ScopeRegular}

// ScopeFromAdmin maps the persisted admin flag to a scope.
func ScopeFromAdmin(admin bool) SeatScope {
	if admin {
		return ScopeAdmin
	}
	return ScopeRegular
}

func ParseSeatScope(s string) (SeatScope, error) {
	scope := SeatScope(strings.ToLower(strings.TrimSpace(s)))
	if !scope.IsValid() {
		return "", fmt.Errorf("invalid seat scope: %q", s)
	}
	return scope, nil
}

func (s SeatScope) IsValid() bool {
	return s == ScopeAdmin || s == ScopeRegular
}

func (s SeatScope) IsAdmin() bool {
	return s == ScopeAdmin
}

func (s SeatScope) String() string {
	return string(s)
}

// Label is the human wording used in limit messages.
func (s SeatScope) Label() string {
	if s.IsAdmin() {
		return "Admin"
	}
	return "Regular user"
}
