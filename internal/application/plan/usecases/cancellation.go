package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

const defaultConfirmReason = "Cancelamento confirmado"

type RequestCancellationCommand struct {
	SubscriptionID int64
	Reason         string
	Details        map[string]any
	ActorID        uint64
}

type ConfirmCancellationCommand struct {
	CancellationID int64
	Reason         string
	ActorID        uint64
}

// CancellationOptions tune the cancellation workflow.
type CancellationOptions struct {
	// StampOnRequest fills cancelled_at when the cancellation is requested.
	StampOnRequest bool
	// DefaultReason is recorded in history when confirmation carries no reason.
	DefaultReason string
}

// CancellationUseCase runs the two-phase cancellation: a request is recorded
// without touching the subscription, and confirming it cancels the subscription
// and writes a history entry.
type CancellationUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	cancellationRepo plan.CancellationRepository
	historyRepo      plan.SubscriptionHistoryRepository
	sanitizer        TextSanitizer
	notifier         CancellationNotifier
	metrics          SeatMetrics
	opts             CancellationOptions
	txMgr            TxManager
	logger           logger.Interface
}

func NewCancellationUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	cancellationRepo plan.CancellationRepository,
	historyRepo plan.SubscriptionHistoryRepository,
	sanitizer TextSanitizer,
	notifier CancellationNotifier,
	metrics SeatMetrics,
	opts CancellationOptions,
	txMgr TxManager,
	logger logger.Interface,
) *CancellationUseCase {
	if metrics == nil {
		metrics = NoopMetrics()
	}
	if strings.TrimSpace(opts.DefaultReason) == "" {
		opts.DefaultReason = defaultConfirmReason
	}
	return &CancellationUseCase{
		subscriptionRepo: subscriptionRepo,
		cancellationRepo: cancellationRepo,
		historyRepo:      historyRepo,
		sanitizer:        sanitizer,
		notifier:         notifier,
		metrics:          metrics,
		opts:             opts,
		txMgr:            txMgr,
		logger:           logger,
	}
}

// Request records a cancellation request for an active subscription.
func (uc *CancellationUseCase) Request(ctx context.Context, cmd RequestCancellationCommand) (*dto.CancellationDTO, error) {
	subID, err := parseID("subscription ID", cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID("acting user ID", int64(cmd.ActorID))
	if err != nil {
		return nil, err
	}

	var (
		sub          *plan.CompanySubscription
		cancellation *plan.Cancellation
	)
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err = uc.subscriptionRepo.GetByIDForUpdate(txCtx, subID)
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return toAppError(plan.ErrSubscriptionNotFound)
		}
		if !sub.IsActive() {
			return toAppError(plan.ErrSubscriptionInactive)
		}

		cancellation, err = plan.NewCancellation(subID, actor, uc.sanitizer.StripHTML(cmd.Reason),
			cmd.Details, uc.opts.StampOnRequest)
		if err != nil {
			return toAppError(err)
		}
		if err := uc.cancellationRepo.Create(txCtx, cancellation); err != nil {
			return fmt.Errorf("failed to create cancellation: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to request cancellation", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, err
	}

	uc.metrics.CancellationRequested()
	uc.notify("requested", func() error {
		return uc.notifier.CancellationRequested(ctx, sub, cancellation)
	})
	uc.logger.Infow("cancellation requested",
		"cancellation_id", cancellation.ID(),
		"subscription_id", subID,
		"company_id", sub.CompanyID(),
		"actor_id", cmd.ActorID,
	)
	return dto.ToCancellationDTO(cancellation), nil
}

// Confirm applies a requested cancellation. A cancellation is confirmed once.
func (uc *CancellationUseCase) Confirm(ctx context.Context, cmd ConfirmCancellationCommand) (*dto.CancellationDTO, error) {
	cancellationID, err := parseID("cancellation ID", cmd.CancellationID)
	if err != nil {
		return nil, err
	}
	actor, err := parseID("acting user ID", int64(cmd.ActorID))
	if err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(uc.sanitizer.StripHTML(cmd.Reason))
	if reason == "" {
		reason = uc.opts.DefaultReason
	}

	var (
		sub          *plan.CompanySubscription
		cancellation *plan.Cancellation
	)
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		cancellation, err = uc.cancellationRepo.GetByID(txCtx, cancellationID)
		if err != nil {
			return fmt.Errorf("failed to get cancellation: %w", err)
		}
		if cancellation == nil {
			return toAppError(plan.ErrCancellationNotFound)
		}
		if cancellation.IsConfirmed() {
			return toAppError(plan.ErrCancellationProcessed)
		}

		sub, err = uc.subscriptionRepo.GetByIDForUpdate(txCtx, cancellation.SubscriptionID())
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			return toAppError(plan.ErrSubscriptionNotFound)
		}

		if err := cancellation.Confirm(actor); err != nil {
			return toAppError(err)
		}
		if err := sub.Cancel(); err != nil {
			return toAppError(err)
		}
		if err := uc.subscriptionRepo.Update(txCtx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}
		if err := uc.cancellationRepo.Update(txCtx, cancellation); err != nil {
			return fmt.Errorf("failed to update cancellation: %w", err)
		}

		planID := sub.PlanID()
		history, err := plan.NewSubscriptionHistory(sub, &planID, nil, vo.ChangeCancellation, reason, actor,
			map[string]any{
				"cancellation_id":     cancellation.ID().Uint64(),
				"cancellation_reason": cancellation.Reason(),
			})
		if err != nil {
			return toAppError(err)
		}
		if err := uc.historyRepo.Create(txCtx, history); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to confirm cancellation", "error", err, "cancellation_id", cmd.CancellationID)
		return nil, err
	}

	uc.metrics.CancellationConfirmed()
	uc.notify("confirmed", func() error {
		return uc.notifier.CancellationConfirmed(ctx, sub, cancellation)
	})
	uc.logger.Infow("cancellation confirmed",
		"cancellation_id", cancellationID,
		"subscription_id", sub.ID(),
		"company_id", sub.CompanyID(),
		"actor_id", cmd.ActorID,
	)
	return dto.ToCancellationDTO(cancellation), nil
}

// notify runs after commit; a failed notification is logged only.
func (uc *CancellationUseCase) notify(phase string, send func() error) {
	if uc.notifier == nil {
		return
	}
	if err := send(); err != nil {
		uc.logger.Warnw("failed to send cancellation notification", "error", err, "phase", phase)
	}
}

func (uc *CancellationUseCase) Get(ctx context.Context, id int64) (*dto.CancellationDTO, error) {
	cancellationID, err := parseID("cancellation ID", id)
	if err != nil {
		return nil, err
	}
	c, err := uc.cancellationRepo.GetByID(ctx, cancellationID)
	if err != nil {
		uc.logger.Errorw("failed to get cancellation", "error", err, "cancellation_id", id)
		return nil, fmt.Errorf("failed to get cancellation: %w", err)
	}
	if c == nil {
		return nil, toAppError(plan.ErrCancellationNotFound)
	}
	return dto.ToCancellationDTO(c), nil
}

func (uc *CancellationUseCase) ListBySubscription(ctx context.Context, subscriptionID int64) ([]*dto.CancellationDTO, error) {
	subID, err := parseID("subscription ID", subscriptionID)
	if err != nil {
		return nil, err
	}
	items, err := uc.cancellationRepo.ListBySubscription(ctx, subID)
	if err != nil {
		uc.logger.Errorw("failed to list cancellations", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list cancellations: %w", err)
	}
	return dto.ToList(items, dto.ToCancellationDTO), nil
}
