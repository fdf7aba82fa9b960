package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/kakune/pkg/entity"
)

const (
	checkInColumns = `id, user_id, item_id, occurred_at, photo_ref`

	listCheckInsQuery      = `SELECT ` + checkInColumns + ` FROM check_ins WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3 ORDER BY occurred_at;`
	listItemCheckInsQuery  = `SELECT ` + checkInColumns + ` FROM check_ins WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3 AND item_id = $4 ORDER BY occurred_at;`
	countCheckInsQuery     = `SELECT COUNT(*) FROM check_ins WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3;`
	countItemCheckInsQuery = `SELECT COUNT(*) FROM check_ins WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3 AND item_id = $4;`
	clearPhotosQuery       = `UPDATE check_ins SET photo_ref = NULL WHERE photo_ref IS NOT NULL AND occurred_at < $1;`
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepo(cfg DBConfig) *CheckInsRepository {
	return &CheckInsRepository{
		conn: NewPool(cfg, "checkInsRepo"),
	}
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	mustPing(conn, "checkInsRepo")
	return &CheckInsRepository{
		conn: conn,
	}
}

// Create appends the event. Item existence is not checked here, that is the
// caller's job.
func (cr *CheckInsRepository) Create(ctx context.Context, event *entity.CheckInEvent) (uuid.UUID, error) {
	if event == nil {
		return uuid.Nil, errors.New("check-in is nil")
	}
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO check_ins (user_id, item_id, occurred_at, photo_ref) VALUES ($1, $2, $3, $4) RETURNING id;`,
		event.UserID,
		event.ItemID,
		event.OccurredAt,
		event.PhotoRef,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("creating check-in error: " + err.Error())
	}
	return id, nil
}

func (cr *CheckInsRepository) ListByRange(ctx context.Context, uid uuid.UUID, itemID *uuid.UUID, from, to time.Time) ([]entity.CheckInEvent, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if itemID == nil {
		rows, err = cr.conn.Query(ctx, listCheckInsQuery, uid, from, to)
	} else {
		rows, err = cr.conn.Query(ctx, listItemCheckInsQuery, uid, from, to, *itemID)
	}
	if err != nil {
		return nil, errors.New("getting check-ins for period error: " + err.Error())
	}
	defer rows.Close()
	events := make([]entity.CheckInEvent, 0)
	for rows.Next() {
		var e entity.CheckInEvent
		err = rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.OccurredAt, &e.PhotoRef)
		if err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		e.OccurredAt = e.OccurredAt.UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return events, nil
}

func (cr *CheckInsRepository) CountByRange(ctx context.Context, uid uuid.UUID, itemID *uuid.UUID, from, to time.Time) (int, error) {
	var row pgx.Row
	if itemID == nil {
		row = cr.conn.QueryRow(ctx, countCheckInsQuery, uid, from, to)
	} else {
		row = cr.conn.QueryRow(ctx, countItemCheckInsQuery, uid, from, to, *itemID)
	}
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting check-ins error: " + err.Error())
	}
	return count, nil
}

func (cr *CheckInsRepository) ClearPhotosBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ct, err := cr.conn.Exec(ctx, clearPhotosQuery, cutoff)
	if err != nil {
		return 0, errors.New("clearing photo references error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
