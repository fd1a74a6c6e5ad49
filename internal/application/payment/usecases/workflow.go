package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/domain/payment"
	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/events"
	"github.com/talento-hq/talento/internal/shared/db"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
	"github.com/talento-hq/talento/internal/shared/logger"
)

// Workflow owns every pending -> completed | failed transition. A transition
// is a guarded write on the payment row; completing also moves the account
// to the purchased plan in the same transaction, so only the request that
// wins the guard touches the account.
type Workflow struct {
	paymentRepo payment.Repository
	accountRepo account.Repository
	planRepo    plan.Repository
	txMgr       db.Transactor
	publisher   EventPublisher
	recorder    TransitionRecorder
	logger      logger.Interface
}

func NewWorkflow(
	paymentRepo payment.Repository,
	accountRepo account.Repository,
	planRepo plan.Repository,
	txMgr db.Transactor,
	publisher EventPublisher,
	recorder TransitionRecorder,
	logger logger.Interface,
) *Workflow {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Workflow{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		planRepo:    planRepo,
		txMgr:       txMgr,
		publisher:   publisher,
		recorder:    recorder,
		logger:      logger,
	}
}

// errLostRace marks a guarded write that matched no pending row.
var errLostRace = errors.New("payment left pending concurrently")

// Complete persists p, already moved to completed in memory, and applies
// its plan to the owning account. It returns errLostRace when another
// request finalized the payment first.
func (w *Workflow) Complete(ctx context.Context, p *payment.Payment) error {
	err := w.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return w.applyCompletion(txCtx, p)
	})
	if err != nil {
		return err
	}
	w.completed(p)
	return nil
}

// applyCompletion is the transactional half of Complete. Callers that run
// it inside their own transaction call completed after commit. The plan is
// re-read inside the transaction; a payment whose plan is gone stays pending
// rather than pointing the account at a missing plan.
func (w *Workflow) applyCompletion(txCtx context.Context, p *payment.Payment) error {
	if _, err := w.planRepo.GetByID(txCtx, p.PlanID()); err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			w.logger.Warnw("payment completion refused, plan no longer exists",
				"payment_sid", p.SID(),
				"plan_id", p.PlanID(),
			)
			return apperrors.NewValidationError("Plan is no longer available")
		}
		return fmt.Errorf("failed to load plan: %w", err)
	}

	ok, err := w.paymentRepo.TransitionFromPending(txCtx, p)
	if err != nil {
		return err
	}
	if !ok {
		return errLostRace
	}
	return w.accountRepo.ApplyPlan(txCtx, p.AccountID(), p.PlanID())
}

func (w *Workflow) completed(p *payment.Payment) {
	w.recorder.PaymentTransitioned(p.Method().String(), p.Status().String())
	w.publish(payment.NewPaymentCompletedEvent(p))
	w.logger.Infow("payment completed",
		"payment_sid", p.SID(),
		"account_id", p.AccountID(),
		"plan_id", p.PlanID(),
		"method", p.Method(),
	)
}

// Fail persists p, already moved to failed in memory. No account changes.
func (w *Workflow) Fail(ctx context.Context, p *payment.Payment) error {
	ok, err := w.paymentRepo.TransitionFromPending(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return errLostRace
	}

	w.recorder.PaymentTransitioned(p.Method().String(), p.Status().String())
	w.publish(payment.NewPaymentFailedEvent(p))
	w.logger.Infow("payment failed",
		"payment_sid", p.SID(),
		"account_id", p.AccountID(),
		"reason", p.RejectionReason(),
	)
	return nil
}

func (w *Workflow) publish(event events.DomainEvent) {
	if err := w.publisher.Publish(event); err != nil {
		w.logger.Warnw("failed to publish payment event", "error", err, "event_type", event.GetEventType())
	}
}

// alreadyProcessed reports the stored status of a payment that lost a race
// or was finalized before the request arrived.
func (w *Workflow) alreadyProcessed(ctx context.Context, p *payment.Payment) error {
	status := p.Status().String()
	if fresh, err := w.paymentRepo.GetByID(ctx, p.ID()); err == nil {
		status = fresh.Status().String()
	}
	return apperrors.NewAlreadyProcessedError(status)
}

// planForResponse resolves the plan shown next to a payment. A missing
// plan only drops the plan fields from the response.
func planForResponse(ctx context.Context, repo plan.Repository, p *payment.Payment, log logger.Interface) *plan.Plan {
	pl, err := repo.GetByID(ctx, p.PlanID())
	if err != nil {
		log.Warnw("failed to load plan for payment response",
			"error", err,
			"payment_sid", p.SID(),
			"plan_id", p.PlanID(),
		)
		return nil
	}
	return pl
}

func loadPayment(ctx context.Context, repo payment.Repository, sid string) (*payment.Payment, error) {
	p, err := repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("Payment not found")
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}
	return p, nil
}

func loadAccount(ctx context.Context, repo account.Repository, id uint) (*account.Account, error) {
	acc, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, apperrors.NewAccountNotFoundError()
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return acc, nil
}

func loadPlan(ctx context.Context, repo plan.Repository, sid string) (*plan.Plan, error) {
	p, err := repo.GetBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, apperrors.NewNotFoundError("Plan not found")
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return p, nil
}

// checkPurchasable rejects plans that cannot be bought by the account itself.
func checkPurchasable(p *plan.Plan) error {
	if err := p.CheckSelfServiceCheckout(); err != nil {
		if errors.Is(err, plan.ErrPlanContactSales) {
			return apperrors.NewContactSalesPlanError()
		}
		return apperrors.NewValidationError("Plan is not available")
	}
	if p.IsFree() {
		return apperrors.NewValidationError("This plan is free, no payment is required")
	}
	return nil
}
