package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InvoiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	now      func() time.Time
	number   func(time.Time) string
}

func NewInvoiceRepo(db *dbpg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db:       db,
		strategy: defaultStrategy(),
		now:      func() time.Time { return time.Now().UTC() },
		number:   invoiceNumber,
	}
}

// invoiceNumber renders INV-<yyyymmdd>-<6 random hex digits>.
func invoiceNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "INV-" + t.Format("20060102") + "-" + suffix
}

// Create stores inv under a new canonical id and number. Payments that came
// with the optimistic record are stored as well.
func (r *InvoiceRepository) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	out := inv.Clone()
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	out.Number = r.number(out.CreatedAt)
	out.Version = 1
	for i := range out.Payments {
		out.Payments[i].ID = canonicalID(out.Payments[i].ID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (id, number, client, event_id, amount, notes, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`
	if _, err = tx.ExecContext(ctx, query,
		out.ID, out.Number, out.Client, nullableUUID(out.EventID), out.Amount, out.Notes, out.Version, out.CreatedAt,
	); err != nil {
		if rej := uniqueViolation(err, "invoice number already exists, try again"); rej != nil {
			return domain.Invoice{}, rej
		}
		return domain.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}

	if err = r.insertPayments(ctx, tx, out.ID, out.Payments); err != nil {
		return domain.Invoice{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Invoice{}, fmt.Errorf("commit invoice: %w", err)
	}
	return ledger.NormalizeInvoice(out), nil
}

// Update rewrites the editable fields and appends payments not stored yet.
// Stored payments are never changed or removed.
func (r *InvoiceRepository) Update(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	inv = inv.Clone()
	for i := range inv.Payments {
		inv.Payments[i].ID = canonicalID(inv.Payments[i].ID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE invoices
			  SET client = $3, event_id = $4, amount = $5, notes = $6, version = version + 1, updated_at = $7
			  WHERE id = $1 AND version = $2`
	res, err := tx.ExecContext(ctx, query,
		inv.ID, inv.Version, inv.Client, nullableUUID(inv.EventID), inv.Amount, inv.Notes, r.now(),
	)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("update invoice: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invoice rows affected: %w", err)
	}
	if rows == 0 {
		return domain.Invoice{}, staleOrMissing(ctx, tx,
			`SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1)`, inv.ID, domain.ErrInvoiceNotFound)
	}

	if err = r.insertPayments(ctx, tx, inv.ID, inv.Payments); err != nil {
		return domain.Invoice{}, err
	}

	var out domain.Invoice
	var eventID sql.NullString
	row := tx.QueryRowContext(ctx,
		`SELECT id, number, client, event_id, amount, notes, version, created_at FROM invoices WHERE id = $1`, inv.ID)
	if err = row.Scan(&out.ID, &out.Number, &out.Client, &eventID, &out.Amount, &out.Notes, &out.Version, &out.CreatedAt); err != nil {
		return domain.Invoice{}, fmt.Errorf("reload invoice: %w", err)
	}
	out.EventID = eventID.String

	payments, err := r.txPayments(ctx, tx, inv.ID)
	if err != nil {
		return domain.Invoice{}, err
	}
	out.Payments = payments

	if err = tx.Commit(); err != nil {
		return domain.Invoice{}, fmt.Errorf("commit invoice: %w", err)
	}
	return ledger.NormalizeInvoice(out), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoice rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT id, number, client, event_id, amount, notes, version, created_at
			  FROM invoices
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var (
		res   []domain.Invoice
		ids   []string
		index = make(map[string]int)
	)
	for rows.Next() {
		var (
			inv     domain.Invoice
			eventID sql.NullString
		)
		if err = rows.Scan(&inv.ID, &inv.Number, &inv.Client, &eventID, &inv.Amount, &inv.Notes, &inv.Version, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.EventID = eventID.String
		index[inv.ID] = len(res)
		ids = append(ids, inv.ID)
		res = append(res, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	if len(res) == 0 {
		return res, nil
	}

	paymentQuery := `SELECT id, invoice_id, amount, to_char(paid_on, 'YYYY-MM-DD'), method, reference, notes, recorded_at
					 FROM invoice_payments
					 WHERE invoice_id = ANY($1)
					 ORDER BY invoice_id, recorded_at`
	prow, err := r.db.QueryWithRetry(ctx, r.strategy, paymentQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list invoice payments: %w", err)
	}
	defer prow.Close()

	for prow.Next() {
		var (
			p         domain.PaymentRecord
			invoiceID string
		)
		if err = prow.Scan(&p.ID, &invoiceID, &p.Amount, &p.Date, &p.Method, &p.Reference, &p.Notes, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan invoice payment: %w", err)
		}
		if i, ok := index[invoiceID]; ok {
			res[i].Payments = append(res[i].Payments, p)
		}
	}
	if err = prow.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice payments: %w", err)
	}

	for i := range res {
		res[i] = ledger.NormalizeInvoice(res[i])
	}
	return res, nil
}

func (r *InvoiceRepository) insertPayments(ctx context.Context, tx *sql.Tx, invoiceID string, payments []domain.PaymentRecord) error {
	query := `INSERT INTO invoice_payments (id, invoice_id, amount, paid_on, method, reference, notes, recorded_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (id) DO NOTHING`
	for _, p := range payments {
		recordedAt := p.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = r.now()
		}
		if _, err := tx.ExecContext(ctx, query,
			p.ID, invoiceID, p.Amount, p.Date, p.Method, p.Reference, p.Notes, recordedAt,
		); err != nil {
			return fmt.Errorf("insert invoice payment: %w", err)
		}
	}
	return nil
}

func (r *InvoiceRepository) txPayments(ctx context.Context, tx *sql.Tx, invoiceID string) ([]domain.PaymentRecord, error) {
	query := `SELECT id, amount, to_char(paid_on, 'YYYY-MM-DD'), method, reference, notes, recorded_at
			  FROM invoice_payments
			  WHERE invoice_id = $1
			  ORDER BY recorded_at`

	rows, err := tx.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice payments: %w", err)
	}
	defer rows.Close()

	var res []domain.PaymentRecord
	for rows.Next() {
		var p domain.PaymentRecord
		if err = rows.Scan(&p.ID, &p.Amount, &p.Date, &p.Method, &p.Reference, &p.Notes, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan invoice payment: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
