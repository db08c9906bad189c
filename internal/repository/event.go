package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	now      func() time.Time
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create stores e under a new canonical id and returns the stored record.
func (r *EventRepository) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	out := e.Clone()
	out.ID = uuid.NewString()
	out.Version = 1
	out.CreatedAt = r.now()
	prepareServices(out.Services)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, name, client, version, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $5)`
	if _, err = tx.ExecContext(ctx, query, out.ID, out.Name, out.Client, out.Version, out.CreatedAt); err != nil {
		return domain.Event{}, fmt.Errorf("insert event: %w", err)
	}

	if err = r.insertChildren(ctx, tx, out); err != nil {
		return domain.Event{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Event{}, fmt.Errorf("commit event: %w", err)
	}
	return out, nil
}

// Update replaces the event with its services and team. The stored version
// must equal e.Version; the returned record carries the next version.
func (r *EventRepository) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	out := e.Clone()
	prepareServices(out.Services)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE events
			  SET name = $3, client = $4, version = version + 1, updated_at = $5
			  WHERE id = $1 AND version = $2`
	res, err := tx.ExecContext(ctx, query, out.ID, out.Version, out.Name, out.Client, r.now())
	if err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Event{}, fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.Event{}, staleOrMissing(ctx, tx,
			`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, out.ID, domain.ErrEventNotFound)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM event_services WHERE event_id = $1`, out.ID); err != nil {
		return domain.Event{}, fmt.Errorf("clear services: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM event_team WHERE event_id = $1`, out.ID); err != nil {
		return domain.Event{}, fmt.Errorf("clear team: %w", err)
	}
	if err = r.insertChildren(ctx, tx, out); err != nil {
		return domain.Event{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Event{}, fmt.Errorf("commit event: %w", err)
	}
	out.Version++
	return out, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, name, client, version, created_at
			  FROM events
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var (
		res   []domain.Event
		ids   []string
		index = make(map[string]int)
	)
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(&e.ID, &e.Name, &e.Client, &e.Version, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		index[e.ID] = len(res)
		ids = append(ids, e.ID)
		res = append(res, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	if len(res) == 0 {
		return res, nil
	}

	if err = r.loadServices(ctx, ids, res, index); err != nil {
		return nil, err
	}
	if err = r.loadTeam(ctx, ids, res, index); err != nil {
		return nil, err
	}

	for i := range res {
		res[i] = domain.NormalizeEvent(res[i])
	}
	return res, nil
}

func (r *EventRepository) loadServices(ctx context.Context, ids []string, res []domain.Event, index map[string]int) error {
	query := `SELECT id, event_id, name, to_char(service_date, 'YYYY-MM-DD'), service_time, location, status
			  FROM event_services
			  WHERE event_id = ANY($1)
			  ORDER BY event_id, position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s       domain.Service
			eventID string
		)
		if err = rows.Scan(&s.ID, &eventID, &s.Name, &s.Date, &s.Time, &s.Location, &s.Status); err != nil {
			return fmt.Errorf("scan service: %w", err)
		}
		if i, ok := index[eventID]; ok {
			res[i].Services = append(res[i].Services, s)
		}
	}
	return rows.Err()
}

func (r *EventRepository) loadTeam(ctx context.Context, ids []string, res []domain.Event, index map[string]int) error {
	query := `SELECT event_id, member_id, role
			  FROM event_team
			  WHERE event_id = ANY($1)
			  ORDER BY event_id, position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m       domain.MemberRef
			eventID string
		)
		if err = rows.Scan(&eventID, &m.MemberID, &m.Role); err != nil {
			return fmt.Errorf("scan team member: %w", err)
		}
		if i, ok := index[eventID]; ok {
			res[i].Team = append(res[i].Team, m)
		}
	}
	return rows.Err()
}

func (r *EventRepository) insertChildren(ctx context.Context, tx *sql.Tx, e domain.Event) error {
	serviceQuery := `INSERT INTO event_services (id, event_id, position, name, service_date, service_time, location, status)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, s := range e.Services {
		if _, err := tx.ExecContext(ctx, serviceQuery,
			s.ID, e.ID, i, s.Name, s.Date, s.Time, s.Location, s.Status,
		); err != nil {
			if rej := uniqueViolation(err, "service id already in use"); rej != nil {
				return rej
			}
			return fmt.Errorf("insert service: %w", err)
		}
	}

	teamQuery := `INSERT INTO event_team (event_id, member_id, role, position)
				  VALUES ($1, $2, $3, $4)`
	for i, m := range e.Team {
		if _, err := tx.ExecContext(ctx, teamQuery, e.ID, m.MemberID, m.Role, i); err != nil {
			if rej := uniqueViolation(err, "team member listed twice"); rej != nil {
				return rej
			}
			return fmt.Errorf("insert team member: %w", err)
		}
	}
	return nil
}

func prepareServices(services []domain.Service) {
	for i := range services {
		services[i].ID = canonicalID(services[i].ID)
		if services[i].Status == "" {
			services[i].Status = domain.StatusScheduled
		}
	}
}
