package models

import (
	"time"

	"github.com/GraziArcH/domain-sales/internal/shared/constants"
)

// UserModel lives in the identity database.
type UserModel struct {
	ID         uint64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	CompanyID  uint64  `gorm:"column:company_id;not null;index"`
	Name       string  `gorm:"column:name;not null;size:100"`
	Surname    string  `gorm:"column:surname;size:100"`
	CPF        *string `gorm:"column:cpf;size:14"`
	Admin      bool    `gorm:"column:admin;not null;default:false"`
	Active     bool    `gorm:"column:active;not null;default:true;index"`
	UserTypeID uint64  `gorm:"column:user_type_id;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Emails []EmailModel `gorm:"foreignKey:UserID;references:ID"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type EmailModel struct {
	ID     uint64 `gorm:"column:email_id;primaryKey;autoIncrement"`
	UserID uint64 `gorm:"column:user_id;not null;index"`
	Email  string `gorm:"column:email;not null;size:255;uniqueIndex"`
	Type   string `gorm:"column:type;not null;size:20"`
}

func (EmailModel) TableName() string {
	return constants.TableEmails
}

// PrimaryEmail returns the primary address loaded with the user, if any.
func (m *UserModel) PrimaryEmail() string {
	for _, e := range m.Emails {
		if e.Type == constants.EmailTypePrimary {
			return e.Email
		}
	}
	if len(m.Emails) > 0 {
		return m.Emails[0].Email
	}
	return ""
}
