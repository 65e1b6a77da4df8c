package usecases

import (
	"context"

	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// TxManager runs fn in one transaction stamped with the acting user id.
// *db.TransactionManager satisfies it.
type TxManager interface {
	RunInTransaction(ctx context.Context, actorID uint64, fn func(ctx context.Context) error) error
}

// SeatMetrics records seat engine outcomes.
type SeatMetrics interface {
	SeatAdmitted(scope vo.SeatScope)
	SeatRejected(scope vo.SeatScope, reason string)
	SeatRemoved(scope vo.SeatScope)
	ScopeChanged(from, to vo.SeatScope)
	SyncCompleted(added, skipped, failed int)
	SyncRejected()
	CancellationRequested()
	CancellationConfirmed()
	SubscriptionsExpired(n int)
}

// CancellationNotifier is told about cancellation transitions after commit.
type CancellationNotifier interface {
	CancellationRequested(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error
	CancellationConfirmed(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error
}

type TextSanitizer interface {
	StripHTML(text string) string
}

type DescriptionRenderer interface {
	Render(markdown string) (string, error)
}

type PriceFormatter interface {
	Currency() string
	Format(cents int64) string
}

type noopMetrics struct{}

// NoopMetrics discards every measurement.
func NoopMetrics() SeatMetrics {
	return noopMetrics{}
}

func (noopMetrics) SeatAdmitted(vo.SeatScope)               {}
func (noopMetrics) SeatRejected(vo.SeatScope, string)       {}
func (noopMetrics) SeatRemoved(vo.SeatScope)                {}
func (noopMetrics) ScopeChanged(vo.SeatScope, vo.SeatScope) {}
func (noopMetrics) SyncCompleted(int, int, int)             {}
func (noopMetrics) SyncRejected()                           {}
func (noopMetrics) CancellationRequested()                  {}
func (noopMetrics) CancellationConfirmed()                  {}
func (noopMetrics) SubscriptionsExpired(int)                {}
