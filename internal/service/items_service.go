package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	"github.com/limbo/kakune/internal/cache"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/internal/repository"
	"github.com/limbo/kakune/pkg/entity"
)

type ItemsService struct {
	itemsRepo repository.ItemsRepositoryI
	cache     cache.HistoryCacheI
}

func NewItemsService(itemsRepo repository.ItemsRepositoryI, historyCache cache.HistoryCacheI) *ItemsService {
	if itemsRepo == nil || historyCache == nil {
		log.Fatal("on items service provided nil dependencies")
	}
	return &ItemsService{
		itemsRepo: itemsRepo,
		cache:     historyCache,
	}
}

// ownedItem loads the item and checks that uid owns it.
func ownedItem(ctx context.Context, repo repository.ItemsRepositoryI, uid, itemID uuid.UUID) (*entity.CheckItem, error) {
	item, err := repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if item.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return item, nil
}

// invalidateHistory drops cached history views. Failures only make views
// stale until TTL, so they are logged and not returned.
func invalidateHistory(ctx context.Context, historyCache cache.HistoryCacheI, uid uuid.UUID) {
	if err := historyCache.Invalidate(ctx, uid); err != nil {
		slog.WarnContext(ctx, "history cache invalidation failed",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (is *ItemsService) Create(ctx context.Context, uid uuid.UUID, req *ItemRequest) (*entity.CheckItem, error) {
	normalizeItemRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	maxOrder, err := is.itemsRepo.MaxSortOrder(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	item := &entity.CheckItem{
		UserID:    uid,
		Name:      req.Name,
		Icon:      req.Icon,
		SortOrder: maxOrder + 1,
	}
	item.ID, err = is.itemsRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, is.cache, uid)
	created, err := is.itemsRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return created, nil
}

func (is *ItemsService) List(ctx context.Context, uid uuid.UUID, includeArchived bool) ([]entity.CheckItem, error) {
	items, err := is.itemsRepo.ListByUser(ctx, uid, includeArchived)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return items, nil
}

func (is *ItemsService) Update(ctx context.Context, uid, itemID uuid.UUID, req *ItemRequest) (*entity.CheckItem, error) {
	normalizeItemRequest(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	item, err := ownedItem(ctx, is.itemsRepo, uid, itemID)
	if err != nil {
		return nil, err
	}
	item.Name = req.Name
	item.Icon = req.Icon
	if err = is.itemsRepo.Update(ctx, item); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, is.cache, uid)
	return item, nil
}

// Reorder accepts only a permutation of every item the user has, archived
// ones included.
func (is *ItemsService) Reorder(ctx context.Context, uid uuid.UUID, ids []uuid.UUID) error {
	items, err := is.itemsRepo.ListByUser(ctx, uid, true)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if len(ids) != len(items) {
		return errorvalues.ErrInvalidOrder
	}
	known := make(map[uuid.UUID]bool, len(items))
	for _, it := range items {
		known[it.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return errorvalues.ErrInvalidOrder
		}
		delete(known, id)
	}
	if err = is.itemsRepo.Reorder(ctx, uid, ids); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return errorvalues.ErrInvalidOrder
		}
		return errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, is.cache, uid)
	return nil
}

func (is *ItemsService) Archive(ctx context.Context, uid, itemID uuid.UUID) error {
	if _, err := ownedItem(ctx, is.itemsRepo, uid, itemID); err != nil {
		return err
	}
	if err := is.itemsRepo.Archive(ctx, itemID); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, is.cache, uid)
	return nil
}

// Delete removes the item. Its check-ins stay and show up in history under
// the deleted-item label.
func (is *ItemsService) Delete(ctx context.Context, uid, itemID uuid.UUID) error {
	if _, err := ownedItem(ctx, is.itemsRepo, uid, itemID); err != nil {
		return err
	}
	if err := is.itemsRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, errorvalues.ErrItemNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	invalidateHistory(ctx, is.cache, uid)
	return nil
}
