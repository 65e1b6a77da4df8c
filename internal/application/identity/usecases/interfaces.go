package usecases

import (
	"context"

	plandto "github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	planusecases "github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
)

// SeatService is the seat surface of the plan system. *planusecases.SeatFacade
// satisfies it.
type SeatService interface {
	ActiveSubscription(ctx context.Context, companyID int64) (*plandto.SubscriptionDTO, error)
	CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (bool, error)
	AdmitSeat(ctx context.Context, cmd planusecases.AdmitSeatCommand) (*plandto.SeatDTO, error)
	ChangeSeatScope(ctx context.Context, cmd planusecases.ChangeSeatScopeCommand) (*plandto.SeatDTO, error)
	RemoveSeat(ctx context.Context, cmd planusecases.RemoveSeatCommand) error
	SyncSeats(ctx context.Context, cmd planusecases.SyncSeatsCommand) (*plandto.SyncResultDTO, error)
}

// TxManager runs fn in one transaction of the identity database.
type TxManager interface {
	RunInTransaction(ctx context.Context, actorID uint64, fn func(ctx context.Context) error) error
}
