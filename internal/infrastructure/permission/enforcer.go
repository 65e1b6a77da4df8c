package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// Resources guarded by the enforcer.
const (
	ResourceCatalog      = "catalog"
	ResourceSubscription = "subscription"
	ResourceSeat         = "seat"
	ResourceIdentity     = "identity"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// rbacModel is role based: the subject is the role carried by the token.
// Admin is granted everything through the matcher.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == "admin" || (r.sub == p.sub && r.obj == p.obj && (p.act == "*" || r.act == p.act))
`

// DefaultPolicies are the grants seeded on first start.
var DefaultPolicies = [][]string{
	{authorization.RoleBilling.String(), ResourceCatalog, ActionRead},
	{authorization.RoleBilling.String(), ResourceSubscription, "*"},
	{authorization.RoleBilling.String(), ResourceSeat, ActionRead},

	{authorization.RoleService.String(), ResourceCatalog, ActionRead},
	{authorization.RoleService.String(), ResourceSubscription, ActionRead},
	{authorization.RoleService.String(), ResourceSeat, "*"},
	{authorization.RoleService.String(), ResourceIdentity, "*"},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table of db.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// SeedDefaults adds DefaultPolicies that are not stored yet.
func (e *Enforcer) SeedDefaults() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added, err := e.enforcer.AddPolicies(DefaultPolicies)
	if err != nil {
		e.logger.Errorw("failed to seed default policies", "error", err)
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	if added {
		e.logger.Infow("default policies seeded", "count", len(DefaultPolicies))
	}
	return nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
