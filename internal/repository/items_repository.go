package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/pkg/entity"
)

const (
	itemColumns = `id, user_id, name, icon, sort_order, archived, created_at, updated_at`

	listActiveItemsQuery = `SELECT ` + itemColumns + ` FROM check_items WHERE user_id = $1 AND archived = FALSE ORDER BY sort_order, created_at;`
	listAllItemsQuery    = `SELECT ` + itemColumns + ` FROM check_items WHERE user_id = $1 ORDER BY sort_order, created_at;`
)

type ItemsRepository struct {
	conn PgConnection
}

func NewItemsRepo(cfg DBConfig) *ItemsRepository {
	return &ItemsRepository{
		conn: NewPool(cfg, "itemsRepo"),
	}
}

func NewItemsRepoWithConn(conn PgConnection) *ItemsRepository {
	mustPing(conn, "itemsRepo")
	return &ItemsRepository{
		conn: conn,
	}
}

func (ir *ItemsRepository) Create(ctx context.Context, item *entity.CheckItem) (uuid.UUID, error) {
	if item == nil {
		return uuid.Nil, errors.New("item is nil")
	}
	var id uuid.UUID
	row := ir.conn.QueryRow(ctx,
		`INSERT INTO check_items (user_id, name, icon, sort_order) VALUES ($1, $2, $3, $4) RETURNING id;`,
		item.UserID,
		item.Name,
		item.Icon,
		item.SortOrder,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrOwnerNotFound
		}
		return uuid.Nil, errors.New("creating item db error: " + err.Error())
	}
	return id, nil
}

func (ir *ItemsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckItem, error) {
	row := ir.conn.QueryRow(ctx, `SELECT `+itemColumns+` FROM check_items WHERE id = $1;`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting item by id error: " + err.Error())
	}
	return item, nil
}

func (ir *ItemsRepository) ListByUser(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]entity.CheckItem, error) {
	query := listActiveItemsQuery
	if includeArchived {
		query = listAllItemsQuery
	}
	rows, err := ir.conn.Query(ctx, query, uid)
	if err != nil {
		return nil, errors.New("listing items error: " + err.Error())
	}
	defer rows.Close()
	items := make([]entity.CheckItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.New("item row parsing error: " + err.Error())
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected item rows error: " + err.Error())
	}
	return items, nil
}

func scanItem(row pgx.Row) (*entity.CheckItem, error) {
	var item entity.CheckItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Icon,
		&item.SortOrder,
		&item.Archived,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (ir *ItemsRepository) MaxSortOrder(ctx context.Context, uid uuid.UUID) (int, error) {
	var maxOrder int
	row := ir.conn.QueryRow(ctx, `SELECT COALESCE(MAX(sort_order), -1) FROM check_items WHERE user_id = $1;`, uid)
	if err := row.Scan(&maxOrder); err != nil {
		return 0, errors.New("getting max sort order error: " + err.Error())
	}
	return maxOrder, nil
}

func (ir *ItemsRepository) Update(ctx context.Context, item *entity.CheckItem) error {
	ct, err := ir.conn.Exec(ctx, `UPDATE check_items SET name = $1, icon = $2, updated_at = NOW() WHERE id = $3;`,
		item.Name,
		item.Icon,
		item.ID,
	)
	if err != nil {
		return errors.New("updating item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}

func (ir *ItemsRepository) Reorder(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error {
	tx, err := ir.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning reorder tx error: " + err.Error())
	}
	for i, id := range ids {
		ct, err := tx.Exec(ctx, `UPDATE check_items SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3;`, i, id, uid)
		if err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("reordering items error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			_ = tx.Rollback(ctx)
			return errorvalues.ErrItemNotFound
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing reorder error: " + err.Error())
	}
	return nil
}

func (ir *ItemsRepository) Archive(ctx context.Context, id uuid.UUID) error {
	ct, err := ir.conn.Exec(ctx, `UPDATE check_items SET archived = TRUE, updated_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return errors.New("archiving item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}

func (ir *ItemsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ir.conn.Exec(ctx, `DELETE FROM check_items WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrItemNotFound
	}
	return nil
}
