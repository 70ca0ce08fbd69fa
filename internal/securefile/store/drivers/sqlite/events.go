package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
)

type eventsRepo struct {
	db DBTX
}

func (r *eventsRepo) AppendEvent(ctx context.Context, e domain.SecurityEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO security_events (id, type, description, occurred_at, severity, ip, user_name)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.Description, e.Timestamp.UTC().UnixMilli(), string(e.Severity),
		mapStringNull(e.IP), mapStringNull(e.User),
	)
	return err
}

func (r *eventsRepo) ListEvents(ctx context.Context, eventType domain.EventType, limit int) ([]domain.SecurityEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, description, occurred_at, severity, ip, user_name
		 FROM security_events
		 WHERE (? = '' OR type = ?)
		 ORDER BY seq DESC
		 LIMIT ?`,
		string(eventType), string(eventType), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SecurityEvent
	for rows.Next() {
		var (
			e                 domain.SecurityEvent
			eventTypeCol, sev string
			occurredAt        int64
			ip, user          sql.NullString
		)
		if err := rows.Scan(&e.ID, &eventTypeCol, &e.Description, &occurredAt, &sev, &ip, &user); err != nil {
			return nil, err
		}
		e.Type = domain.EventType(eventTypeCol)
		e.Severity = domain.Severity(sev)
		e.Timestamp = time.UnixMilli(occurredAt).UTC()
		e.IP = mapNullString(ip)
		e.User = mapNullString(user)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventsRepo) TrimEvents(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM security_events
		 WHERE seq NOT IN (SELECT seq FROM security_events ORDER BY seq DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *eventsRepo) CountEvents(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM security_events`).Scan(&n)
	return n, err
}
