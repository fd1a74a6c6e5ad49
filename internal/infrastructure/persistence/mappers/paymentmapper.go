package mappers

import (
	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/mapper"
)

// PaymentMapper handles the conversion between payment entities and persistence models
type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) *payment.Payment
	ToModel(entity *payment.Payment) *models.PaymentModel
	ToEntities(models []*models.PaymentModel) []*payment.Payment
}

type paymentMapper struct{}

func NewPaymentMapper() PaymentMapper {
	return &paymentMapper{}
}

func (m *paymentMapper) ToEntity(model *models.PaymentModel) *payment.Payment {
	if model == nil {
		return nil
	}
	return payment.ReconstructPayment(
		model.ID,
		model.SID,
		model.AccountID,
		model.PlanID,
		valueobjects.NewMoney(model.Amount, model.Currency),
		vo.PaymentMethod(model.Method),
		vo.PaymentStatus(model.Status),
		model.EvidenceRef,
		model.Note,
		model.ExternalRef,
		model.ApprovedBy,
		model.ApprovedAt,
		model.RejectionReason,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *paymentMapper) ToModel(entity *payment.Payment) *models.PaymentModel {
	if entity == nil {
		return nil
	}
	return &models.PaymentModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		AccountID:       entity.AccountID(),
		PlanID:          entity.PlanID(),
		Amount:          entity.Amount().AmountInCents(),
		Currency:        entity.Amount().Currency(),
		Method:          entity.Method().String(),
		Status:          entity.Status().String(),
		EvidenceRef:     entity.EvidenceRef(),
		Note:            entity.Note(),
		ExternalRef:     entity.ExternalRef(),
		ApprovedBy:      entity.ApprovedBy(),
		ApprovedAt:      entity.ApprovedAt(),
		RejectionReason: entity.RejectionReason(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *paymentMapper) ToEntities(modelList []*models.PaymentModel) []*payment.Payment {
	return mapper.MapSlicePtrSkipNil(modelList, m.ToEntity)
}
