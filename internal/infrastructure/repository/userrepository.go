package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/mappers"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/db"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

// UserRepositoryImpl reads and writes the peer user database. It joins
// transactions opened by the identity transaction manager.
type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) identity.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) tx(ctx context.Context) *gorm.DB {
	return db.GetNamedTxFromContext(ctx, db.IdentityName, r.db)
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *identity.User) error {
	model := r.mapper.ToModel(user)
	// gorm inserts the primary email through the Emails association
	if err := r.tx(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "error", err, "company_id", model.CompanyID)
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.SetID(vo.ID(model.ID))

	r.logger.Infow("user created successfully", "user_id", model.ID, "company_id", model.CompanyID)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id vo.ID) (*identity.User, error) {
	var model models.UserModel
	if err := r.tx(ctx).Preload("Emails").First(&model, id.Uint64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *identity.User) error {
	model := r.mapper.ToModel(user)
	result := r.tx(ctx).Model(&models.UserModel{}).
		Where("user_id = ?", model.ID).
		Updates(map[string]any{
			"name":       model.Name,
			"surname":    model.Surname,
			"cpf":        model.CPF,
			"admin":      model.Admin,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", model.ID)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	r.logger.Infow("user updated successfully", "user_id", model.ID, "admin", model.Admin, "active", model.Active)
	return nil
}

func (r *UserRepositoryImpl) ListActiveByCompany(ctx context.Context, companyID vo.ID) ([]*identity.User, error) {
	var userModels []*models.UserModel
	err := r.tx(ctx).
		Preload("Emails").
		Where("company_id = ? AND active = ?", companyID.Uint64(), true).
		Order("user_id ASC").
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to list company users", "error", err, "company_id", companyID)
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}

	return r.mapper.ToEntities(userModels), nil
}
