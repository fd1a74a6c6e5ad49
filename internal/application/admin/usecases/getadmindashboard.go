package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	accountDTO "github.com/talento-hq/talento/internal/application/account/dto"
	dto "github.com/talento-hq/talento/internal/application/admin/dto"
	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/domain/payment"
	vo "github.com/talento-hq/talento/internal/domain/payment/valueobjects"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

const recentUsersLimit = 5

// GetAdminDashboardUseCase handles retrieving admin dashboard snapshot.
type GetAdminDashboardUseCase struct {
	accountRepo   account.Repository
	interviewRepo interview.Repository
	paymentRepo   payment.Repository
	currency      string
	logger        logger.Interface
}

// NewGetAdminDashboardUseCase creates a new GetAdminDashboardUseCase.
func NewGetAdminDashboardUseCase(
	accountRepo account.Repository,
	interviewRepo interview.Repository,
	paymentRepo payment.Repository,
	currency string,
	log logger.Interface,
) *GetAdminDashboardUseCase {
	return &GetAdminDashboardUseCase{
		accountRepo:   accountRepo,
		interviewRepo: interviewRepo,
		paymentRepo:   paymentRepo,
		currency:      currency,
		logger:        log,
	}
}

// Execute retrieves the admin dashboard snapshot.
func (uc *GetAdminDashboardUseCase) Execute(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	uc.logger.Debugw("fetching admin dashboard")

	var (
		totalUsers   int64
		stats        interview.Stats
		pending      int64
		revenueCents int64
		recent       []*account.Account
	)

	g, gctx := errgroup.WithContext(ctx)

	// Members only; admins are not customers
	g.Go(func() error {
		count, err := uc.accountRepo.CountByRole(gctx, authorization.RoleMember)
		if err != nil {
			return errors.NewInternalError("failed to count users")
		}
		totalUsers = count
		return nil
	})

	g.Go(func() error {
		s, err := uc.interviewRepo.StatsByAccount(gctx, 0)
		if err != nil {
			return errors.NewInternalError("failed to count interviews")
		}
		stats = s
		return nil
	})

	g.Go(func() error {
		count, err := uc.paymentRepo.CountPending(gctx, vo.PaymentMethodManual)
		if err != nil {
			return errors.NewInternalError("failed to count pending payments")
		}
		pending = count
		return nil
	})

	g.Go(func() error {
		sum, err := uc.paymentRepo.SumCompleted(gctx)
		if err != nil {
			return errors.NewInternalError("failed to sum revenue")
		}
		revenueCents = sum
		return nil
	})

	g.Go(func() error {
		accounts, err := uc.accountRepo.ListRecent(gctx, authorization.RoleMember, recentUsersLimit)
		if err != nil {
			return errors.NewInternalError("failed to list recent users")
		}
		recent = accounts
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build admin dashboard", "error", err)
		return nil, err
	}

	recentUsers := make([]*accountDTO.AccountDTO, 0, len(recent))
	for _, a := range recent {
		recentUsers = append(recentUsers, accountDTO.ToAccountDTO(a))
	}

	return &dto.AdminDashboardResponse{
		TotalUsers:          totalUsers,
		TotalInterviews:     stats.Total,
		CompletedInterviews: stats.Completed,
		PendingPayments:     pending,
		TotalRevenue:        valueobjects.NewMoney(revenueCents, uc.currency).Major(),
		Currency:            uc.currency,
		RecentUsers:         recentUsers,
	}, nil
}
