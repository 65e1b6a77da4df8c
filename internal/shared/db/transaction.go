// Package db provides database utilities including transaction management.
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// txKey is the context key for storing a transaction. The name distinguishes
// transactions of different databases carried by the same context.
type txKey struct {
	name string
}

type actorKey struct{}

const (
	// DefaultName is the name of the primary (plan) database transaction manager.
	DefaultName = "default"
	// IdentityName names transactions of the peer user database.
	IdentityName = "identity"
)

// ErrNoTransaction is returned by Commit/Rollback when the context carries no transaction.
var ErrNoTransaction = errors.New("no transaction in context")

// txState is stored in the context next to the gorm transaction.
type txState struct {
	tx          *gorm.DB
	actorID     uint64
	mu          sync.Mutex
	afterCommit []func(ctx context.Context)
	done        bool
}

// TransactionManager manages database transactions.
type TransactionManager struct {
	db   *gorm.DB
	name string
}

// NewTransactionManager creates a TransactionManager for the primary database.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db, name: DefaultName}
}

// NewNamedTransactionManager creates a TransactionManager whose transactions
// do not collide with those of another database in the same context.
func NewNamedTransactionManager(db *gorm.DB, name string) *TransactionManager {
	return &TransactionManager{db: db, name: name}
}

// Begin starts a transaction stamped with the acting user id and returns a
// context carrying it. Nested calls reuse the outer transaction.
func (tm *TransactionManager) Begin(ctx context.Context, actorID uint64) (context.Context, error) {
	if _, ok := tm.state(ctx); ok {
		return ctx, nil
	}

	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := setSessionActor(tx, actorID); err != nil {
		tx.Rollback()
		return ctx, err
	}

	st := &txState{tx: tx, actorID: actorID}
	txCtx := context.WithValue(ctx, txKey{name: tm.name}, st)
	txCtx = context.WithValue(txCtx, actorKey{}, actorID)
	return txCtx, nil
}

// Commit commits the transaction carried by ctx and runs the after-commit hooks.
func (tm *TransactionManager) Commit(ctx context.Context) error {
	st, ok := tm.state(ctx)
	if !ok {
		return ErrNoTransaction
	}

	st.mu.Lock()
	if st.done {
		st.mu.Unlock()
		return nil
	}
	st.done = true
	hooks := st.afterCommit
	st.mu.Unlock()

	if err := st.tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	base := context.WithoutCancel(ctx)
	for _, hook := range hooks {
		hook(base)
	}
	return nil
}

// Rollback rolls back the transaction carried by ctx. Hooks are discarded.
func (tm *TransactionManager) Rollback(ctx context.Context) error {
	st, ok := tm.state(ctx)
	if !ok {
		return ErrNoTransaction
	}

	st.mu.Lock()
	if st.done {
		st.mu.Unlock()
		return nil
	}
	st.done = true
	st.afterCommit = nil
	st.mu.Unlock()

	if err := st.tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// RunInTransaction executes fn within a database transaction on behalf of actorID.
// If fn returns an error or panics, the transaction is rolled back.
// If fn completes successfully, the transaction is committed.
// When ctx already carries a transaction of this manager, fn joins it.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, actorID uint64, fn func(ctx context.Context) error) (err error) {
	if _, ok := tm.state(ctx); ok {
		return fn(ctx)
	}

	txCtx, err := tm.Begin(ctx, actorID)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tm.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := tm.Rollback(txCtx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tm.Commit(txCtx)
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if st, ok := tm.state(ctx); ok {
		return st.tx
	}
	return tm.db.WithContext(ctx)
}

func (tm *TransactionManager) state(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txKey{name: tm.name}).(*txState)
	if !ok || st == nil {
		return nil, false
	}
	return st, true
}

// GetTxFromContext returns the primary database transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	return GetNamedTxFromContext(ctx, DefaultName, defaultDB)
}

// GetNamedTxFromContext is GetTxFromContext for a manager created with NewNamedTransactionManager.
func GetNamedTxFromContext(ctx context.Context, name string, defaultDB *gorm.DB) *gorm.DB {
	if st, ok := ctx.Value(txKey{name: name}).(*txState); ok && st != nil {
		return st.tx
	}
	return defaultDB.WithContext(ctx)
}

// InTransaction reports whether ctx carries an open primary transaction.
func InTransaction(ctx context.Context) bool {
	st, ok := ctx.Value(txKey{name: DefaultName}).(*txState)
	return ok && st != nil
}

// ActorFromContext returns the acting user id bound to the current transaction.
func ActorFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(actorKey{}).(uint64)
	return id, ok && id > 0
}

// AfterCommit registers fn to run once the primary transaction in ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	st, ok := ctx.Value(txKey{name: DefaultName}).(*txState)
	if !ok || st == nil {
		fn(ctx)
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done {
		fn(context.WithoutCancel(ctx))
		return
	}
	st.afterCommit = append(st.afterCommit, fn)
}

// setSessionActor exposes the acting user to database-side auditing. The
// variable is always written, NULL for no actor, since a MySQL session
// variable outlives the transaction on a pooled connection.
func setSessionActor(tx *gorm.DB, actorID uint64) error {
	var err error
	switch tx.Dialector.Name() {
	case "postgres":
		value := ""
		if actorID > 0 {
			value = fmt.Sprintf("%d", actorID)
		}
		err = tx.Exec("SELECT set_config('app.current_user_id', ?, true)", value).Error
	case "mysql":
		var value any
		if actorID > 0 {
			value = actorID
		}
		err = tx.Exec("SET @app_current_user_id = ?", value).Error
	}
	if err != nil {
		return fmt.Errorf("failed to set acting user on transaction: %w", err)
	}
	return nil
}
