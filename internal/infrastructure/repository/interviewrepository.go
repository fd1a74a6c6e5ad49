package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/mappers"
	"github.com/talento-hq/talento/internal/infrastructure/persistence/models"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// maxLinkAttempts bounds share-link regeneration on unique collisions.
const maxLinkAttempts = 3

type InterviewRepository struct {
	db     *gorm.DB
	mapper mappers.InterviewMapper
	logger logger.Interface
}

func NewInterviewRepository(db *gorm.DB, logger logger.Interface) *InterviewRepository {
	return &InterviewRepository{
		db:     db,
		mapper: mappers.NewInterviewMapper(),
		logger: logger,
	}
}

// Create inserts the interview, regenerating the share link if it collides.
// Inside a transaction a failed insert aborts the transaction on some
// databases, so the retry relies on a savepoint.
func (r *InterviewRepository) Create(ctx context.Context, i *interview.Interview) error {
	tx := db.GetTxFromContext(ctx, r.db)

	for attempt := 1; ; attempt++ {
		model, err := r.mapper.ToModel(i)
		if err != nil {
			return err
		}

		err = tx.Transaction(func(sp *gorm.DB) error {
			return sp.Create(model).Error
		})
		if err == nil {
			i.SetID(model.ID)
			return nil
		}
		if !apperrors.IsDuplicateError(err) || attempt >= maxLinkAttempts {
			r.logger.Errorw("failed to create interview", "error", err, "account_id", i.AccountID())
			return fmt.Errorf("failed to create interview: %w", err)
		}
		if err := i.RegenerateLink(); err != nil {
			return err
		}
	}
}

func (r *InterviewRepository) Update(ctx context.Context, i *interview.Interview) error {
	model, err := r.mapper.ToModel(i)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.InterviewModel{}).
		Where("id = ?", i.ID()).
		Updates(map[string]interface{}{
			"candidate_name":  model.CandidateName,
			"candidate_email": model.CandidateEmail,
			"questions":       model.Questions,
			"answers":         model.Answers,
			"analysis":        model.Analysis,
			"status":          model.Status,
			"started_at":      model.StartedAt,
			"completed_at":    model.CompletedAt,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update interview: %w", result.Error)
	}
	return nil
}

func (r *InterviewRepository) getOne(ctx context.Context, query string, args ...interface{}) (*interview.Interview, error) {
	var model models.InterviewModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interview.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *InterviewRepository) GetBySID(ctx context.Context, sid string) (*interview.Interview, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

func (r *InterviewRepository) GetByLink(ctx context.Context, link string) (*interview.Interview, error) {
	return r.getOne(ctx, "link = ?", link)
}

func (r *InterviewRepository) ListByAccount(ctx context.Context, accountID uint, limit int) ([]*interview.Interview, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		Scopes(db.NewestFirst())
	if limit > 0 {
		query = query.Limit(limit)
	}

	var interviewModels []*models.InterviewModel
	if err := query.Find(&interviewModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return r.mapper.ToEntities(interviewModels)
}

func (r *InterviewRepository) StatsByAccount(ctx context.Context, accountID uint) (interview.Stats, error) {
	type row struct {
		Status string
		Count  int64
	}

	query := db.GetTxFromContext(ctx, r.db).Model(&models.InterviewModel{})
	if accountID != 0 {
		query = query.Where("account_id = ?", accountID)
	}

	var rows []row
	if err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return interview.Stats{}, fmt.Errorf("failed to count interviews: %w", err)
	}

	var stats interview.Stats
	for _, r := range rows {
		stats.Total += r.Count
		switch interview.Status(r.Status) {
		case interview.StatusCompleted:
			stats.Completed = r.Count
		case interview.StatusPending:
			stats.Pending = r.Count
		}
	}
	return stats, nil
}
