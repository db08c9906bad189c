package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// TeamRepository stores payout ledgers keyed by member id. Payout records are
// synced on update, so a record missing from the ledger is deleted.
type TeamRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	now      func() time.Time
}

func NewTeamRepo(db *dbpg.DB) *TeamRepository {
	return &TeamRepository{
		db:       db,
		strategy: defaultStrategy(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *TeamRepository) Create(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
	out := l.Clone()
	out.Version = 1
	for i := range out.Payments {
		out.Payments[i].ID = canonicalID(out.Payments[i].ID)
		out.Payments[i].MemberID = out.MemberID
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.TeamLedger{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := r.now()
	query := `INSERT INTO team_ledgers (member_id, member_name, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $4)`
	if _, err = tx.ExecContext(ctx, query, out.MemberID, out.MemberName, out.Version, now); err != nil {
		if rej := uniqueViolation(err, "ledger for this member already exists"); rej != nil {
			return domain.TeamLedger{}, rej
		}
		return domain.TeamLedger{}, fmt.Errorf("insert team ledger: %w", err)
	}

	if err = r.upsertPayments(ctx, tx, out.MemberID, out.Payments); err != nil {
		return domain.TeamLedger{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.TeamLedger{}, fmt.Errorf("commit team ledger: %w", err)
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, l domain.TeamLedger) (domain.TeamLedger, error) {
	out := l.Clone()
	ids := make([]string, 0, len(out.Payments))
	for i := range out.Payments {
		out.Payments[i].ID = canonicalID(out.Payments[i].ID)
		out.Payments[i].MemberID = out.MemberID
		ids = append(ids, out.Payments[i].ID)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.TeamLedger{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE team_ledgers
			  SET member_name = $3, version = version + 1, updated_at = $4
			  WHERE member_id = $1 AND version = $2`
	res, err := tx.ExecContext(ctx, query, out.MemberID, out.Version, out.MemberName, r.now())
	if err != nil {
		return domain.TeamLedger{}, fmt.Errorf("update team ledger: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.TeamLedger{}, fmt.Errorf("team ledger rows affected: %w", err)
	}
	if rows == 0 {
		return domain.TeamLedger{}, staleOrMissing(ctx, tx,
			`SELECT EXISTS (SELECT 1 FROM team_ledgers WHERE member_id = $1)`, out.MemberID, domain.ErrLedgerNotFound)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM team_payments WHERE member_id = $1 AND NOT (id = ANY($2))`,
		out.MemberID, pq.Array(ids),
	); err != nil {
		return domain.TeamLedger{}, fmt.Errorf("remove team payments: %w", err)
	}

	if err = r.upsertPayments(ctx, tx, out.MemberID, out.Payments); err != nil {
		return domain.TeamLedger{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.TeamLedger{}, fmt.Errorf("commit team ledger: %w", err)
	}
	out.Version++
	return out, nil
}

func (r *TeamRepository) Delete(ctx context.Context, memberID string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM team_ledgers WHERE member_id = $1`, memberID)
	if err != nil {
		return fmt.Errorf("delete team ledger: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("team ledger rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrLedgerNotFound
	}
	return nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamLedger, error) {
	query := `SELECT member_id, member_name, version
			  FROM team_ledgers
			  ORDER BY member_name, member_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list team ledgers: %w", err)
	}
	defer rows.Close()

	var (
		res   []domain.TeamLedger
		ids   []string
		index = make(map[string]int)
	)
	for rows.Next() {
		var l domain.TeamLedger
		if err = rows.Scan(&l.MemberID, &l.MemberName, &l.Version); err != nil {
			return nil, fmt.Errorf("scan team ledger: %w", err)
		}
		index[l.MemberID] = len(res)
		ids = append(ids, l.MemberID)
		res = append(res, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team ledgers: %w", err)
	}
	if len(res) == 0 {
		return res, nil
	}

	paymentQuery := `SELECT id, member_id, event_ref, amount, status, to_char(paid_on, 'YYYY-MM-DD'),
							method, reference, notes, recorded_at
					 FROM team_payments
					 WHERE member_id = ANY($1)
					 ORDER BY member_id, recorded_at`
	prow, err := r.db.QueryWithRetry(ctx, r.strategy, paymentQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list team payments: %w", err)
	}
	defer prow.Close()

	for prow.Next() {
		var p domain.TeamPayment
		if err = prow.Scan(&p.ID, &p.MemberID, &p.EventRef, &p.Amount, &p.Status, &p.Date,
			&p.Method, &p.Reference, &p.Notes, &p.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan team payment: %w", err)
		}
		if i, ok := index[p.MemberID]; ok {
			res[i].Payments = append(res[i].Payments, p)
		}
	}
	return res, prow.Err()
}

func (r *TeamRepository) upsertPayments(ctx context.Context, tx *sql.Tx, memberID string, payments []domain.TeamPayment) error {
	query := `INSERT INTO team_payments (id, member_id, event_ref, amount, status, paid_on, method, reference, notes, recorded_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`
	for _, p := range payments {
		recordedAt := p.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = r.now()
		}
		if _, err := tx.ExecContext(ctx, query,
			p.ID, memberID, p.EventRef, p.Amount, p.Status, p.Date, p.Method, p.Reference, p.Notes, recordedAt,
		); err != nil {
			return fmt.Errorf("upsert team payment: %w", err)
		}
	}
	return nil
}
