package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/mappers"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return plan.ErrPlanNameExists
		}
		r.logger.Errorw("failed to create plan", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	p.SetID(model.ID)
	r.logger.Infow("plan created", "plan_id", model.ID, "name", p.Name())
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"price":           model.Price,
			"currency":        model.Currency,
			"interview_quota": model.InterviewQuota,
			"features":        model.Features,
			"is_active":       model.IsActive,
			"is_custom":       model.IsCustom,
			"is_recommended":  model.IsRecommended,
			"display_order":   model.DisplayOrder,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return plan.ErrPlanNameExists
		}
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}
	return nil
}

// Delete removes the plan in a single statement conditioned on no account
// and no pending payment referencing it, so neither an assignment nor an
// approval racing the delete can leave a dangling reference.
func (r *PlanRepositoryImpl) Delete(ctx context.Context, planID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	sub := func() *gorm.DB { return tx.Session(&gorm.Session{NewDB: true}) }

	result := tx.
		Where("id = ?", planID).
		Where("NOT EXISTS (?)", sub().Model(&models.AccountModel{}).Select("1").Where("plan_id = ?", planID)).
		Where("NOT EXISTS (?)", sub().Model(&models.PaymentModel{}).Select("1").
			Where("plan_id = ? AND status = ?", planID, vo.PaymentStatusPending.String())).
		Delete(&models.PlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", planID)
		return 0, fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		r.logger.Infow("plan deleted", "plan_id", planID)
		return 0, nil
	}

	var exists int64
	if err := tx.Model(&models.PlanModel{}).Where("id = ?", planID).Count(&exists).Error; err != nil {
		return 0, fmt.Errorf("failed to check plan: %w", err)
	}
	if exists == 0 {
		return 0, plan.ErrPlanNotFound
	}

	var accounts, pending int64
	if err := sub().Model(&models.AccountModel{}).Where("plan_id = ?", planID).Count(&accounts).Error; err != nil {
		return 0, fmt.Errorf("failed to count plan references: %w", err)
	}
	if err := sub().Model(&models.PaymentModel{}).
		Where("plan_id = ? AND status = ?", planID, vo.PaymentStatusPending.String()).
		Count(&pending).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending payments: %w", err)
	}
	return accounts + pending, nil
}

func (r *PlanRepositoryImpl) getOne(ctx context.Context, query string, args ...interface{}) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, plan.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *PlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	return r.getOne(ctx, "name = ?", name)
}

func (r *PlanRepositoryImpl) GetDefault(ctx context.Context) (*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("is_active = ? AND is_custom = ? AND price = 0", true, false).
		Order("display_order ASC").Order("id ASC").
		Limit(1).
		Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get default plan: %w", err)
	}
	if len(planModels) == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(planModels[0])
}

func (r *PlanRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*plan.Plan, error) {
	if len(ids) == 0 {
		return []*plan.Plan{}, nil
	}

	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get plans by IDs: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	return r.list(ctx, false)
}

func (r *PlanRepositoryImpl) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	return r.list(ctx, true)
}

func (r *PlanRepositoryImpl) list(ctx context.Context, activeOnly bool) ([]*plan.Plan, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var planModels []*models.PlanModel
	if err := query.Order("display_order ASC").Order("id ASC").Find(&planModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) MaxDisplayOrder(ctx context.Context) (int, error) {
	var maxOrder sql.NullInt64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Select("MAX(display_order)").Row().Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("failed to get max display order: %w", err)
	}
	return int(maxOrder.Int64), nil
}
