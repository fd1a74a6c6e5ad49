package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/mappers"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/db"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type PaymentRepository struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, logger logger.Interface) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	p.SetID(model.ID)

	return nil
}

// TransitionFromPending writes the decision only while the row is still
// pending. Two admins (or an admin and a webhook) racing on the same
// payment see exactly one success.
func (r *PaymentRepository) TransitionFromPending(ctx context.Context, p *payment.Payment) (bool, error) {
	model := r.mapper.ToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ? AND status = ?", model.ID, vo.PaymentStatusPending.String()).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"approved_by":      model.ApprovedBy,
			"approved_at":      model.ApprovedAt,
			"rejection_reason": model.RejectionReason,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to transition payment", "error", result.Error, "payment_id", model.ID)
		return false, fmt.Errorf("failed to transition payment: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *PaymentRepository) getOne(ctx context.Context, query string, args ...interface{}) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *PaymentRepository) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *PaymentRepository) GetByExternalRef(ctx context.Context, ref string) (*payment.Payment, error) {
	return r.getOne(ctx, "external_ref = ?", ref)
}

func (r *PaymentRepository) ListByAccount(ctx context.Context, accountID uint) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		Scopes(db.NewestFirst()).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments by account: %w", err)
	}
	return r.mapper.ToEntities(paymentModels), nil
}

func (r *PaymentRepository) ListPending(ctx context.Context, method vo.PaymentMethod) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("method = ? AND status = ?", method.String(), vo.PaymentStatusPending.String()).
		Scopes(db.NewestFirst()).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return r.mapper.ToEntities(paymentModels), nil
}

func (r *PaymentRepository) ListStalePending(ctx context.Context, method vo.PaymentMethod, cutoff time.Time, limit int) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("method = ? AND status = ? AND created_at < ?", method.String(), vo.PaymentStatusPending.String(), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&paymentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list stale payments: %w", err)
	}
	return r.mapper.ToEntities(paymentModels), nil
}

func (r *PaymentRepository) CountPending(ctx context.Context, method vo.PaymentMethod) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PaymentModel{}).
		Where("method = ? AND status = ?", method.String(), vo.PaymentStatusPending.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending payments: %w", err)
	}
	return count, nil
}

func (r *PaymentRepository) SumCompleted(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PaymentModel{}).
		Where("status = ?", vo.PaymentStatusCompleted.String()).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum completed payments: %w", err)
	}
	return total, nil
}
