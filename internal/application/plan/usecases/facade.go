package usecases

import (
	"context"

	"github.com/GraziArcH/domain-sales/internal/application/plan/dto"
)

// SeatFacade is the narrow surface peer systems use to keep their users in
// step with subscription seats.
type SeatFacade struct {
	subscriptions *ManageSubscriptionsUseCase
	engine        *SeatEngineUseCase
}

func NewSeatFacade(subscriptions *ManageSubscriptionsUseCase, engine *SeatEngineUseCase) *SeatFacade {
	return &SeatFacade{subscriptions: subscriptions, engine: engine}
}

func (f *SeatFacade) ActiveSubscription(ctx context.Context, companyID int64) (*dto.SubscriptionDTO, error) {
	return f.subscriptions.GetActiveByCompany(ctx, companyID)
}

func (f *SeatFacade) CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (bool, error) {
	return f.engine.CanAdmitSeat(ctx, subscriptionID, admin)
}

func (f *SeatFacade) AdmitSeat(ctx context.Context, cmd AdmitSeatCommand) (*dto.SeatDTO, error) {
	return f.engine.AdmitSeat(ctx, cmd)
}

func (f *SeatFacade) ChangeSeatScope(ctx context.Context, cmd ChangeSeatScopeCommand) (*dto.SeatDTO, error) {
	return f.engine.ChangeSeatScope(ctx, cmd)
}

func (f *SeatFacade) RemoveSeat(ctx context.Context, cmd RemoveSeatCommand) error {
	return f.engine.RemoveSeat(ctx, cmd)
}

func (f *SeatFacade) SyncSeats(ctx context.Context, cmd SyncSeatsCommand) (*dto.SyncResultDTO, error) {
	return f.engine.SyncSeats(ctx, cmd)
}
