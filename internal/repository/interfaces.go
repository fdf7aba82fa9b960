package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/kakune/pkg/entity"
)

//go:generate mockgen -destination=mocks/repository_mocks.go -package=mocks github.com/limbo/kakune/internal/repository UsersRepositoryI,ItemsRepositoryI,CheckInsRepositoryI

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ItemsRepositoryI interface {
	// Creates new check item. UserID, Name and SortOrder are necessary, Icon is optional
	Create(ctx context.Context, item *entity.CheckItem) (uuid.UUID, error)
	// Searches item with given id, archived ones included
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckItem, error)
	// Lists user's items ordered by sort_order
	ListByUser(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]entity.CheckItem, error)
	// Returns the greatest sort_order of user's items or -1 if there are none
	MaxSortOrder(ctx context.Context, uid uuid.UUID) (int, error)
	// Updates name and icon of item with item.ID
	Update(ctx context.Context, item *entity.CheckItem) error
	// Assigns sort_order by position in ids within one transaction
	Reorder(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error
	// Hides item from the home list, history keeps it
	Archive(ctx context.Context, id uuid.UUID) error
	// Removes item. Its check-ins stay
	Delete(ctx context.Context, id uuid.UUID) error
}

type CheckInsRepositoryI interface {
	// Appends event, returns its id
	Create(ctx context.Context, event *entity.CheckInEvent) (uuid.UUID, error)
	// Lists user's events with occurred_at in [from, to), oldest first. Nil itemID means every item
	ListByRange(ctx context.Context, uid uuid.UUID, itemID *uuid.UUID, from, to time.Time) ([]entity.CheckInEvent, error)
	// Counts user's events with occurred_at in [from, to). Nil itemID means every item
	CountByRange(ctx context.Context, uid uuid.UUID, itemID *uuid.UUID, from, to time.Time) (int, error)
	// Drops photo references of events older than cutoff, returns affected count
	ClearPhotosBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
