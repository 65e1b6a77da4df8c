package usecases

import (
	"context"

	plandto "github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	planusecases "github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc              func(ctx context.Context, u *identity.User) error
	GetByIDFunc             func(ctx context.Context, id vo.ID) (*identity.User, error)
	UpdateFunc              func(ctx context.Context, u *identity.User) error
	ListActiveByCompanyFunc func(ctx context.Context, companyID vo.ID) ([]*identity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *identity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id vo.ID) (*identity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *identity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) ListActiveByCompany(ctx context.Context, companyID vo.ID) ([]*identity.User, error) {
	if m.ListActiveByCompanyFunc != nil {
		return m.ListActiveByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

type mockSeatService struct {
	ActiveSubscriptionFunc func(ctx context.Context, companyID int64) (*plandto.SubscriptionDTO, error)
	CanAdmitSeatFunc       func(ctx context.Context, subscriptionID int64, admin bool) (bool, error)
	AdmitSeatFunc          func(ctx context.Context, cmd planusecases.AdmitSeatCommand) (*plandto.SeatDTO, error)
	ChangeSeatScopeFunc    func(ctx context.Context, cmd planusecases.ChangeSeatScopeCommand) (*plandto.SeatDTO, error)
	RemoveSeatFunc         func(ctx context.Context, cmd planusecases.RemoveSeatCommand) error
	SyncSeatsFunc          func(ctx context.Context, cmd planusecases.SyncSeatsCommand) (*plandto.SyncResultDTO, error)
}

func (m *mockSeatService) ActiveSubscription(ctx context.Context, companyID int64) (*plandto.SubscriptionDTO, error) {
	if m.ActiveSubscriptionFunc != nil {
		return m.ActiveSubscriptionFunc(ctx, companyID)
	}
	return &plandto.SubscriptionDTO{ID: 1, CompanyID: uint64(companyID), Status: "active", IsActive: true}, nil
}

func (m *mockSeatService) CanAdmitSeat(ctx context.Context, subscriptionID int64, admin bool) (bool, error) {
	if m.CanAdmitSeatFunc != nil {
		return m.CanAdmitSeatFunc(ctx, subscriptionID, admin)
	}
	return true, nil
}

func (m *mockSeatService) AdmitSeat(ctx context.Context, cmd planusecases.AdmitSeatCommand) (*plandto.SeatDTO, error) {
	if m.AdmitSeatFunc != nil {
		return m.AdmitSeatFunc(ctx, cmd)
	}
	return &plandto.SeatDTO{ID: 77, SubscriptionID: uint64(cmd.SubscriptionID), UserID: uint64(cmd.UserID), Admin: cmd.Admin}, nil
}

func (m *mockSeatService) ChangeSeatScope(ctx context.Context, cmd planusecases.ChangeSeatScopeCommand) (*plandto.SeatDTO, error) {
	if m.ChangeSeatScopeFunc != nil {
		return m.ChangeSeatScopeFunc(ctx, cmd)
	}
	return &plandto.SeatDTO{UserID: uint64(cmd.UserID), Admin: cmd.Admin}, nil
}

func (m *mockSeatService) RemoveSeat(ctx context.Context, cmd planusecases.RemoveSeatCommand) error {
	if m.RemoveSeatFunc != nil {
		return m.RemoveSeatFunc(ctx, cmd)
	}
	return nil
}

func (m *mockSeatService) SyncSeats(ctx context.Context, cmd planusecases.SyncSeatsCommand) (*plandto.SyncResultDTO, error) {
	if m.SyncSeatsFunc != nil {
		return m.SyncSeatsFunc(ctx, cmd)
	}
	return &plandto.SyncResultDTO{}, nil
}

// mockTxManager runs fn directly. CommitErr, when set, replaces a nil result
// of fn to simulate a failed commit.
type mockTxManager struct {
	CommitErr error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, _ uint64, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.CommitErr
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)                           {}
func (nopLogger) Info(string, ...any)                            {}
func (nopLogger) Warn(string, ...any)                            {}
func (nopLogger) Error(string, ...any)                           {}
func (nopLogger) Fatal(string, ...any)                           {}
func (l nopLogger) With(...any) logger.Interface                 { return l }
func (l nopLogger) Named(string) logger.Interface                { return l }
func (l nopLogger) WithContext(context.Context) logger.Interface { return l }
func (nopLogger) Debugw(string, ...interface{})                  {}
func (nopLogger) Infow(string, ...interface{})                   {}
func (nopLogger) Warnw(string, ...interface{})                   {}
func (nopLogger) Errorw(string, ...interface{})                  {}
func (nopLogger) Fatalw(string, ...interface{})                  {}
