package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/kakune/pkg/entity"
)

//go:generate mockgen -destination=mocks/service_mocks.go -package=mocks github.com/limbo/kakune/internal/service UserServiceI,ItemsServiceI,CheckInsServiceI,HistoryServiceI

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alphanum_underscore,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type ItemRequest struct {
	Name string  `json:"name" validate:"required,not_blank,max=50"`
	Icon *string `json:"icon" validate:"omitempty,short_icon"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ItemsServiceI interface {
	// Validates request and appends item after the user's last one
	Create(ctx context.Context, uid uuid.UUID, req *ItemRequest) (*entity.CheckItem, error)
	List(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]entity.CheckItem, error)
	Update(ctx context.Context, uid, itemID uuid.UUID, req *ItemRequest) (*entity.CheckItem, error)
	// ids must be a permutation of the user's items
	Reorder(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error
	Archive(ctx context.Context, uid, itemID uuid.UUID) error
	Delete(ctx context.Context, uid, itemID uuid.UUID) error
}

type CheckInsServiceI interface {
	// Appends a check-in stamped with the current instant
	Record(ctx context.Context, uid, itemID uuid.UUID, photoRef *string) (*entity.RecordedCheckIn, error)
	// Active items with today's counts. pending holds in-flight submissions per item
	Home(ctx context.Context, uid uuid.UUID, pending map[uuid.UUID]int) ([]entity.HomeItem, error)
	// Today's events of one item
	TodayLog(ctx context.Context, uid, itemID uuid.UUID) (*entity.TodayLog, error)
}

type HistoryServiceI interface {
	// Month grid for "YYYY-MM". Malformed selectors give the current month
	Calendar(ctx context.Context, uid uuid.UUID, selector string) (*entity.CalendarMonth, error)
	// "daily" (default) or "weekly" chart series
	Series(ctx context.Context, uid uuid.UUID, period string) (*entity.Series, error)
	Summary(ctx context.Context, uid uuid.UUID) (*entity.WeekSummary, error)
}
