package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/mappers"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/biztime"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

func NewAccountRepository(db *gorm.DB, logger logger.Interface) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return account.ErrEmailExists
		}
		r.logger.Errorw("failed to create account", "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *AccountRepository) getOne(ctx context.Context, query string, args ...interface{}) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByIDForUpdate reads the row with SELECT ... FOR UPDATE so the caller's
// transaction sees the latest committed plan and usage and holds them until
// commit.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *AccountRepository) GetBySID(ctx context.Context, sid string) (*account.Account, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	return r.getOne(ctx, "email = ?", account.NormalizeEmail(email))
}

func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	var accountModels []*models.AccountModel
	if err := query.Scopes(db.NewestFirst(), db.Paginate(filter.Page, filter.PageSize)).
		Find(&accountModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	return r.mapper.ToEntities(accountModels), total, nil
}

func (r *AccountRepository) ListRecent(ctx context.Context, role authorization.UserRole, limit int) ([]*account.Account, error) {
	var accountModels []*models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("role = ?", role.String()).
		Scopes(db.NewestFirst()).
		Limit(limit).
		Find(&accountModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list recent accounts: %w", err)
	}
	return r.mapper.ToEntities(accountModels), nil
}

func (r *AccountRepository) CountByRole(ctx context.Context, role authorization.UserRole) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("role = ?", role.String()).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func (r *AccountRepository) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("plan_id = ?", planID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts on plan: %w", err)
	}
	return count, nil
}

func (r *AccountRepository) UpdateRole(ctx context.Context, id uint, role authorization.UserRole) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       role.String(),
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	return nil
}

// IncrementUsage is the quota enforcement point. The limit and plan checks
// live in the WHERE clause so that concurrent requests can never push usage
// past the limit, regardless of isolation level.
func (r *AccountRepository) IncrementUsage(ctx context.Context, id, planID uint, limit int) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("id = ? AND plan_id = ?", id, planID)
	if limit >= 0 {
		query = query.Where("interviews_used < ?", limit)
	}

	result := query.Updates(map[string]interface{}{
		"interviews_used": gorm.Expr("interviews_used + 1"),
		"updated_at":      biztime.NowUTC(),
	})
	if result.Error != nil {
		r.logger.Errorw("failed to increment usage", "error", result.Error, "account_id", id)
		return false, fmt.Errorf("failed to increment usage: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *AccountRepository) ApplyPlan(ctx context.Context, id, planID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"plan_id":         planID,
			"interviews_used": 0,
			"payment_status":  account.PaymentStatusActive.String(),
			"updated_at":      biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to apply plan", "error", result.Error, "account_id", id, "plan_id", planID)
		return fmt.Errorf("failed to apply plan: %w", result.Error)
	}
	// RowsAffected may be 0 when the stored values already match.
	return nil
}
