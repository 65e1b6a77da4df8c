package mappers

import (
	"github.com/GraziArcH/domain-sales/internal/domain/identity"
	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
	"github.com/GraziArcH/domain-sales/internal/infrastructure/persistence/models"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/mapper"
)

// UserMapper converts identity users. The primary email row travels with the
// user model in Emails.
type UserMapper interface {
	ToEntity(model *models.UserModel) *identity.User
	ToModel(entity *identity.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*identity.User
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) *identity.User {
	if model == nil {
		return nil
	}

	cpf := ""
	if model.CPF != nil {
		cpf = *model.CPF
	}
	return identity.ReconstructUser(
		vo.ID(model.ID),
		vo.ID(model.CompanyID),
		model.Name,
		model.Surname,
		cpf,
		model.PrimaryEmail(),
		model.Admin,
		model.Active,
		vo.ID(model.UserTypeID),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(entity *identity.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	var cpf *string
	if c := entity.CPF(); c != "" {
		cpf = &c
	}
	model := &models.UserModel{
		ID:         entity.ID().Uint64(),
		CompanyID:  entity.CompanyID().Uint64(),
		Name:       entity.Name(),
		Surname:    entity.Surname(),
		CPF:        cpf,
		Admin:      entity.IsAdmin(),
		Active:     entity.IsActive(),
		UserTypeID: entity.UserTypeID().Uint64(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
	if entity.Email() != "" {
		model.Emails = []models.EmailModel{{Email: entity.Email(), Type: constants.EmailTypePrimary}}
	}
	return model
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) []*identity.User {
	return mapper.MapSlicePtrSkipNil(userModels, m.ToEntity)
}
