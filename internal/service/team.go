package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/stpnv0/StudioDesk/internal/optimistic"
	"github.com/stpnv0/StudioDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// TeamService keeps one payout ledger per team member.
type TeamService struct {
	store  ports.TeamStore
	ledger *ledger.Ledger
	coord  *optimistic.Coordinator[domain.TeamLedger]
	logger logger.Logger
}

func NewTeamService(store ports.TeamStore, l *ledger.Ledger, reporter ports.Reporter, log logger.Logger, opts ...Option) *TeamService {
	o := buildOptions(opts)
	return &TeamService{
		store:  store,
		ledger: l,
		coord: optimistic.New[domain.TeamLedger]("team", store, reporter, log,
			coordinatorOptions[domain.TeamLedger](o, domain.ErrLedgerNotFound, nil)...),
		logger: log,
	}
}

func (s *TeamService) Name() string { return s.coord.Name() }

func (s *TeamService) Refresh(ctx context.Context) error {
	return s.coord.Refresh(ctx, s.store)
}

func (s *TeamService) List(_ context.Context) ([]domain.TeamLedger, error) {
	return s.coord.Current().Items(), nil
}

func (s *TeamService) Get(_ context.Context, memberID string) (domain.TeamLedger, error) {
	return s.coord.Get(memberID)
}

// Summary recomputes the member's totals from the payout list.
func (s *TeamService) Summary(ctx context.Context, memberID string) (ledger.Summary, error) {
	l, err := s.Get(ctx, memberID)
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(l.Payments), nil
}

// PendingTotal sums pending and partial payouts across all members.
func (s *TeamService) PendingTotal(_ context.Context) int64 {
	var total int64
	for _, l := range s.coord.Current().Items() {
		total += ledger.Summarize(l.Payments).PendingSum
	}
	return total
}

func (s *TeamService) Create(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
	if err := validateLedger(l); err != nil {
		return domain.TeamLedger{}, err
	}
	res, err := s.coord.Apply(ctx, optimistic.Create(l))
	if err != nil {
		return domain.TeamLedger{}, err
	}
	return res.Item, nil
}

func (s *TeamService) Replace(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
	if err := validateLedger(l); err != nil {
		return domain.TeamLedger{}, err
	}

	res, err := s.coord.Modify(ctx, l.MemberID, func(current domain.TeamLedger) (domain.TeamLedger, error) {
		if l.Version != 0 && l.Version != current.Version {
			return domain.TeamLedger{}, fmt.Errorf("%w: ledger %s is at version %d, got %d",
				domain.ErrConflict, l.MemberID, current.Version, l.Version)
		}
		next := l.Clone()
		next.Version = current.Version
		return next, nil
	})
	if err != nil {
		return domain.TeamLedger{}, err
	}
	return res.Item, nil
}

func (s *TeamService) Delete(ctx context.Context, memberID string) error {
	_, err := s.coord.Apply(ctx, optimistic.Delete[domain.TeamLedger](memberID))
	return err
}

// RecordPayout appends a payout, opening the member's ledger on first use.
func (s *TeamService) RecordPayout(ctx context.Context, memberID string, input domain.TeamPaymentInput) (domain.TeamLedger, error) {
	if memberID == "" {
		return domain.TeamLedger{}, fmt.Errorf("%w: member id is required", domain.ErrValidation)
	}

	if _, err := s.coord.Get(memberID); errors.Is(err, domain.ErrLedgerNotFound) {
		fresh, err := s.ledger.AppendTeamPayment(domain.TeamLedger{MemberID: memberID}, input)
		if err != nil {
			return domain.TeamLedger{}, err
		}
		res, err := s.coord.Apply(ctx, optimistic.Create(fresh))
		if err == nil {
			return res.Item, nil
		}
		if !errors.Is(err, optimistic.ErrDuplicateKey) {
			return domain.TeamLedger{}, err
		}
	}

	res, err := s.coord.Modify(ctx, memberID, func(l domain.TeamLedger) (domain.TeamLedger, error) {
		return s.ledger.AppendTeamPayment(l, input)
	})
	if err != nil {
		return domain.TeamLedger{}, err
	}
	return res.Item, nil
}

func (s *TeamService) DeletePayout(ctx context.Context, memberID, paymentID string) (domain.TeamLedger, error) {
	res, err := s.coord.Modify(ctx, memberID, func(l domain.TeamLedger) (domain.TeamLedger, error) {
		return ledger.RemoveTeamPayment(l, paymentID)
	})
	if err != nil {
		return domain.TeamLedger{}, err
	}

	s.logger.Info("payout deleted",
		logger.String("member_id", memberID),
		logger.String("payment_id", paymentID),
	)
	return res.Item, nil
}

func validateLedger(l domain.TeamLedger) error {
	if l.MemberID == "" {
		return fmt.Errorf("%w: member id is required", domain.ErrValidation)
	}
	for _, p := range l.Payments {
		if p.Amount <= 0 {
			return fmt.Errorf("%w: payout amount must be positive", domain.ErrValidation)
		}
		if p.Status != domain.PaymentPending && p.Status != domain.PaymentPartial && p.Status != domain.PaymentPaid {
			return fmt.Errorf("%w: unknown payout status %q", domain.ErrValidation, p.Status)
		}
	}
	return nil
}
