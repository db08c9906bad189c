package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/wb-go/wbf/logger"
)

type invoiceSource interface {
	Outstanding(ctx context.Context) []domain.Invoice
}

type payoutSource interface {
	PendingTotal(ctx context.Context) int64
}

type reporter interface {
	Report(ctx context.Context, message string)
}

// Digest periodically reports what clients still owe and what the studio
// still owes its team.
type Digest struct {
	invoices invoiceSource
	payouts  payoutSource
	reporter reporter
	cron     *cron.Cron
	logger   logger.Logger
}

// NewDigest validates spec (standard five-field cron syntax) up front.
func NewDigest(spec string, invoices invoiceSource, payouts payoutSource, r reporter, log logger.Logger) (*Digest, error) {
	d := &Digest{
		invoices: invoices,
		payouts:  payouts,
		reporter: r,
		cron:     cron.New(),
		logger:   log,
	}

	if _, err := d.cron.AddFunc(spec, func() { d.Send(context.Background()) }); err != nil {
		return nil, fmt.Errorf("parse digest schedule %q: %w", spec, err)
	}
	return d, nil
}

// Start runs the schedule until ctx is done and waits for a running digest.
func (d *Digest) Start(ctx context.Context) {
	d.cron.Start()
	d.logger.Info("digest scheduler started")

	<-ctx.Done()
	<-d.cron.Stop().Done()
	d.logger.Info("digest scheduler stopped")
}

// Send reports the digest now. Nothing is sent when nothing is owed.
func (d *Digest) Send(ctx context.Context) {
	msg, ok := d.compose(ctx)
	if !ok {
		d.logger.Debug("digest skipped, nothing outstanding")
		return
	}
	d.reporter.Report(ctx, msg)
}

func (d *Digest) compose(ctx context.Context) (string, bool) {
	outstanding := d.invoices.Outstanding(ctx)
	var due int64
	for _, inv := range outstanding {
		due += ledger.Balance(inv.Amount, inv.Paid)
	}
	pending := d.payouts.PendingTotal(ctx)

	if len(outstanding) == 0 && pending == 0 {
		return "", false
	}

	return fmt.Sprintf("Outstanding: %d invoice(s), %s due from clients; %s in team payouts pending",
		len(outstanding), ledger.FormatAmount(due), ledger.FormatAmount(pending)), true
}
