package mappers

import (
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/mapper"
)

// AccountMapper handles the conversion between account entities and persistence models
type AccountMapper interface {
	ToEntity(model *models.AccountModel) *account.Account
	ToModel(entity *account.Account) *models.AccountModel
	ToEntities(models []*models.AccountModel) []*account.Account
}

type accountMapper struct{}

func NewAccountMapper() AccountMapper {
	return &accountMapper{}
}

func (m *accountMapper) ToEntity(model *models.AccountModel) *account.Account {
	if model == nil {
		return nil
	}
	return account.ReconstructAccount(
		model.ID,
		model.SID,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.CompanyName,
		authorization.ParseUserRole(model.Role),
		model.PlanID,
		model.InterviewsUsed,
		account.PaymentStatus(model.PaymentStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *accountMapper) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	return &models.AccountModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Email:          entity.Email(),
		PasswordHash:   entity.PasswordHash(),
		Name:           entity.Name(),
		CompanyName:    entity.CompanyName(),
		Role:           entity.Role().String(),
		PlanID:         entity.PlanID(),
		InterviewsUsed: entity.InterviewsUsed(),
		PaymentStatus:  entity.PaymentStatus().String(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *accountMapper) ToEntities(modelList []*models.AccountModel) []*account.Account {
	return mapper.MapSlicePtrSkipNil(modelList, m.ToEntity)
}
