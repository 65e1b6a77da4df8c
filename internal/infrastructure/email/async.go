package email

import (
	"context"

	"github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/goroutine"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// AsyncNotifier hands notifications to a background goroutine so SMTP
// latency never reaches the HTTP response. Send failures are logged.
type AsyncNotifier struct {
	next   usecases.CancellationNotifier
	group  *goroutine.Group
	logger logger.Interface
}

func NewAsyncNotifier(next usecases.CancellationNotifier, logger logger.Interface) *AsyncNotifier {
	return &AsyncNotifier{
		next:   next,
		group:  goroutine.NewGroup(logger),
		logger: logger,
	}
}

func (n *AsyncNotifier) CancellationRequested(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	n.dispatch("requested", func() error {
		return n.next.CancellationRequested(context.WithoutCancel(ctx), sub, c)
	})
	return nil
}

func (n *AsyncNotifier) CancellationConfirmed(ctx context.Context, sub *plan.CompanySubscription, c *plan.Cancellation) error {
	n.dispatch("confirmed", func() error {
		return n.next.CancellationConfirmed(context.WithoutCancel(ctx), sub, c)
	})
	return nil
}

// Wait blocks until queued notifications are sent.
func (n *AsyncNotifier) Wait() {
	n.group.Wait()
}

func (n *AsyncNotifier) dispatch(phase string, send func() error) {
	n.group.Go("cancellation-mail-"+phase, func() {
		if err := send(); err != nil {
			n.logger.Warnw("failed to send cancellation notification", "error", err, "phase", phase)
		}
	})
}
