package usecases

import (
	"context"
	"fmt"

	"github.com/GraziArcH/domain-sales/internal/application/identity/dto"
	plandto "github.com/GraziArcH/domain-sales/internal/application/plan/dto"
	planusecases "github.com/GraziArcH/domain-sales/internal/application/plan/usecases"
	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	"github.com/GraziArcH/domain-sales/internal/domain/plan"
	"github.com/GraziArcH/domain-sales/internal/shared/errors"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// SyncReport is the outcome of a full company sync.
type SyncReport struct {
	Users  int                    `json:"users"`
	Result *plandto.SyncResultDTO `json:"result"`
}

type CreateUserCommand struct {
	CompanyID  int64
	Name       string
	Surname    string
	CPF        string
	Email      string
	Admin      bool
	UserTypeID int64
	ActorID    uint64
}

// UserSeatIntegrationUseCase changes the identity roster and the seat usage of
// the company's subscription together. Identity writes run in an identity
// database transaction that is rolled back when the seat operation fails.
type UserSeatIntegrationUseCase struct {
	userRepo identity.UserRepository
	seats    SeatService
	txMgr    TxManager
	logger   logger.Interface
}

func NewUserSeatIntegrationUseCase(
	userRepo identity.UserRepository,
	seats SeatService,
	txMgr TxManager,
	logger logger.Interface,
) *UserSeatIntegrationUseCase {
	return &UserSeatIntegrationUseCase{
		userRepo: userRepo,
		seats:    seats,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// CreateUserWithSeat inserts a user and admits a seat for it.
func (uc *UserSeatIntegrationUseCase) CreateUserWithSeat(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	companyID, err := parseID("company ID", cmd.CompanyID)
	if err != nil {
		return nil, err
	}
	userTypeID, err := parseID("user type ID", cmd.UserTypeID)
	if err != nil {
		return nil, err
	}

	var (
		user   *identity.User
		seatID uint64
		subID  int64
	)
	err = uc.txMgr.RunInTransaction(ctx, cmd.ActorID, func(txCtx context.Context) error {
		sub, err := uc.seats.ActiveSubscription(txCtx, cmd.CompanyID)
		if err != nil {
			return err
		}
		subID = int64(sub.ID)

		ok, err := uc.seats.CanAdmitSeat(txCtx, subID, cmd.Admin)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewLimitExceededError("cannot add user: user limit exceeded for this plan")
		}

		user, err = identity.NewUser(companyID, cmd.Name, cmd.Surname, cmd.CPF, cmd.Email, cmd.Admin, userTypeID)
		if err != nil {
			return toAppError(err)
		}
		if err := uc.userRepo.Create(txCtx, user); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("user already exists", err.Error())
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		seat, err := uc.seats.AdmitSeat(txCtx, planusecases.AdmitSeatCommand{
			SubscriptionID: subID,
			UserID:         int64(user.ID().Uint64()),
			Admin:          cmd.Admin,
			ActorID:        cmd.ActorID,
		})
		if err != nil {
			return err
		}
		seatID = seat.ID
		return nil
	})
	if err != nil {
		if seatID != 0 {
			uc.releaseSeat(ctx, subID, user, cmd.ActorID)
		}
		uc.logger.Errorw("failed to create user with seat", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("user created with seat",
		"user_id", user.ID(),
		"company_id", companyID,
		"admin", cmd.Admin,
		"seat_id", seatID,
	)
	out := dto.ToUserDTO(user)
	out.SeatID = seatID
	return out, nil
}

// releaseSeat undoes a seat admitted in the plan database when the identity
// transaction could not commit.
func (uc *UserSeatIntegrationUseCase) releaseSeat(ctx context.Context, subscriptionID int64, user *identity.User, actorID uint64) {
	err := uc.seats.RemoveSeat(ctx, planusecases.RemoveSeatCommand{
		SubscriptionID: subscriptionID,
		UserID:         int64(user.ID().Uint64()),
		ActorID:        actorID,
	})
	if err != nil {
		uc.logger.Errorw("failed to release seat after identity rollback", "error", err,
			"subscription_id", subscriptionID, "user_id", user.ID())
	}
}

func (uc *UserSeatIntegrationUseCase) getUser(ctx context.Context, userID int64) (*identity.User, error) {
	id, err := parseID("user ID", userID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, toAppError(identity.ErrUserNotFound)
	}
	return user, nil
}

// ChangeUserAdminStatus moves the user's seat to the matching scope and then
// updates the admin flag.
func (uc *UserSeatIntegrationUseCase) ChangeUserAdminStatus(ctx context.Context, userID int64, admin bool, actorID uint64) (*dto.UserDTO, error) {
	var user *identity.User
	err := uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		var err error
		user, err = uc.getUser(txCtx, userID)
		if err != nil {
			return err
		}

		if _, err := uc.seats.ChangeSeatScope(txCtx, planusecases.ChangeSeatScopeCommand{
			CompanyID: int64(user.CompanyID().Uint64()),
			UserID:    userID,
			Admin:     admin,
			ActorID:   actorID,
		}); err != nil {
			return err
		}

		user.SetAdmin(admin)
		if err := uc.userRepo.Update(txCtx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to change user admin status", "error", err, "user_id", userID, "admin", admin)
		return nil, err
	}

	uc.logger.Infow("user admin status changed", "user_id", userID, "admin", admin)
	return dto.ToUserDTO(user), nil
}

// RemoveUser frees the user's seat and deactivates the user.
func (uc *UserSeatIntegrationUseCase) RemoveUser(ctx context.Context, userID int64, actorID uint64) error {
	err := uc.txMgr.RunInTransaction(ctx, actorID, func(txCtx context.Context) error {
		user, err := uc.getUser(txCtx, userID)
		if err != nil {
			return err
		}

		if !user.IsActive() {
			return toAppError(identity.ErrUserInactive)
		}

		sub, err := uc.seats.ActiveSubscription(txCtx, int64(user.CompanyID().Uint64()))
		if err != nil {
			return err
		}
		if err := uc.seats.RemoveSeat(txCtx, planusecases.RemoveSeatCommand{
			SubscriptionID: int64(sub.ID),
			UserID:         userID,
			ActorID:        actorID,
		}); err != nil {
			return err
		}

		if err := user.Deactivate(); err != nil {
			return toAppError(err)
		}
		if err := uc.userRepo.Update(txCtx, user); err != nil {
			return fmt.Errorf("failed to deactivate user: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to remove user", "error", err, "user_id", userID)
		return err
	}

	uc.logger.Infow("user removed", "user_id", userID)
	return nil
}

// FullSyncCompany reports every active user of the company to the seat sync.
func (uc *UserSeatIntegrationUseCase) FullSyncCompany(ctx context.Context, companyID int64, actorID uint64) (*SyncReport, error) {
	id, err := parseID("company ID", companyID)
	if err != nil {
		return nil, err
	}

	users, err := uc.userRepo.ListActiveByCompany(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to list company users", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}

	candidates := make([]plan.SeatCandidate, 0, len(users))
	for _, u := range users {
		candidates = append(candidates, plan.SeatCandidate{UserID: int64(u.ID().Uint64()), Admin: u.IsAdmin()})
	}

	result, err := uc.seats.SyncSeats(ctx, planusecases.SyncSeatsCommand{
		CompanyID: companyID,
		Users:     candidates,
		ActorID:   actorID,
	})
	if err != nil {
		uc.logger.Errorw("failed to sync company seats", "error", err, "company_id", companyID)
		return nil, err
	}

	uc.logger.Infow("company seats synced", "company_id", companyID, "users", len(users), "added", len(result.Added))
	return &SyncReport{Users: len(users), Result: result}, nil
}
