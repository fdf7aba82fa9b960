package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	cachemocks "github.com/limbo/kakune/internal/cache/mocks"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/internal/repository/mocks"
	"github.com/limbo/kakune/internal/service"
	"github.com/limbo/kakune/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	is := service.NewItemsService(itemsRepo, historyCache)
	uid := uuid.New()
	itemID := uuid.New()
	testCases := []struct {
		Desc         string
		Req          service.ItemRequest
		Error        error
		ErrorText    string
		MockPrepFunc func()
	}{
		{
			Desc: "appended after last item",
			Req:  service.ItemRequest{Name: "  Front door ", Icon: strPtr("🚪")},
			MockPrepFunc: func() {
				itemsRepo.EXPECT().MaxSortOrder(gomock.Any(), uid).Return(2, nil)
				itemsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it *entity.CheckItem) (uuid.UUID, error) {
					assert.Equal(t, "Front door", it.Name)
					assert.Equal(t, 3, it.SortOrder)
					assert.Equal(t, uid, it.UserID)
					return itemID, nil
				})
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.CheckItem{
					ID: itemID, UserID: uid, Name: "Front door", Icon: strPtr("🚪"), SortOrder: 3,
				}, nil)
			},
		},
		{
			Desc: "first item gets order zero and blank icon dropped",
			Req:  service.ItemRequest{Name: "Stove", Icon: strPtr("   ")},
			MockPrepFunc: func() {
				itemsRepo.EXPECT().MaxSortOrder(gomock.Any(), uid).Return(-1, nil)
				itemsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it *entity.CheckItem) (uuid.UUID, error) {
					assert.Equal(t, 0, it.SortOrder)
					assert.Nil(t, it.Icon)
					return itemID, nil
				})
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.CheckItem{ID: itemID, UserID: uid, Name: "Stove"}, nil)
			},
		},
		{
			Desc: "cache failure does not fail request",
			Req:  service.ItemRequest{Name: "Window"},
			MockPrepFunc: func() {
				itemsRepo.EXPECT().MaxSortOrder(gomock.Any(), uid).Return(0, nil)
				itemsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(itemID, nil)
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(errors.New("redis down"))
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.CheckItem{ID: itemID, UserID: uid, Name: "Window"}, nil)
			},
		},
		{
			Desc:         "blank name",
			Req:          service.ItemRequest{Name: "   "},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "too long icon",
			Req:          service.ItemRequest{Name: "Door", Icon: strPtr("123456789")},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "unknown owner",
			Req:   service.ItemRequest{Name: "Door"},
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().MaxSortOrder(gomock.Any(), uid).Return(-1, nil)
				itemsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrOwnerNotFound)
			},
		},
		{
			Desc:      "repository failure",
			Req:       service.ItemRequest{Name: "Door"},
			ErrorText: "repository error: db error",
			MockPrepFunc: func() {
				itemsRepo.EXPECT().MaxSortOrder(gomock.Any(), uid).Return(0, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			item, err := is.Create(ctx, uid, &tc.Req)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.ErrorText != "":
				assert.EqualError(t, err, tc.ErrorText)
			default:
				require.NoError(t, err)
				assert.Equal(t, itemID, item.ID)
			}
		})
	}
}

func TestUpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	is := service.NewItemsService(itemsRepo, historyCache)
	uid := uuid.New()
	itemID := uuid.New()
	stored := func() *entity.CheckItem {
		return &entity.CheckItem{ID: itemID, UserID: uid, Name: "Door", SortOrder: 1}
	}
	testCases := []struct {
		Desc         string
		UID          uuid.UUID
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			UID:  uid,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(stored(), nil)
				itemsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, it *entity.CheckItem) error {
					assert.Equal(t, "Back door", it.Name)
					assert.Equal(t, 1, it.SortOrder)
					return nil
				})
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc:  "foreign item",
			UID:   uuid.New(),
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(stored(), nil)
			},
		},
		{
			Desc:  "missing item",
			UID:   uid,
			Error: errorvalues.ErrItemNotFound,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrItemNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			item, err := is.Update(ctx, tc.UID, itemID, &service.ItemRequest{Name: "Back door"})
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Back door", item.Name)
		})
	}
}

func TestReorderItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	is := service.NewItemsService(itemsRepo, historyCache)
	uid := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	items := []entity.CheckItem{
		{ID: a, UserID: uid, SortOrder: 0},
		{ID: b, UserID: uid, SortOrder: 1},
		{ID: c, UserID: uid, SortOrder: 2, Archived: true},
	}
	testCases := []struct {
		Desc         string
		IDs          []uuid.UUID
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "permutation including archived",
			IDs:  []uuid.UUID{c, a, b},
			MockPrepFunc: func() {
				itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, true).Return(items, nil)
				itemsRepo.EXPECT().Reorder(gomock.Any(), uid, []uuid.UUID{c, a, b}).Return(nil)
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc:  "missing item",
			IDs:   []uuid.UUID{b, a},
			Error: errorvalues.ErrInvalidOrder,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, true).Return(items, nil)
			},
		},
		{
			Desc:  "duplicate item",
			IDs:   []uuid.UUID{a, a, b},
			Error: errorvalues.ErrInvalidOrder,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, true).Return(items, nil)
			},
		},
		{
			Desc:  "foreign item",
			IDs:   []uuid.UUID{a, b, uuid.New()},
			Error: errorvalues.ErrInvalidOrder,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, true).Return(items, nil)
			},
		},
		{
			Desc:  "item deleted concurrently",
			IDs:   []uuid.UUID{a, b, c},
			Error: errorvalues.ErrInvalidOrder,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, true).Return(items, nil)
				itemsRepo.EXPECT().Reorder(gomock.Any(), uid, gomock.Any()).Return(errorvalues.ErrItemNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := is.Reorder(ctx, uid, tc.IDs)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArchiveAndDeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	is := service.NewItemsService(itemsRepo, historyCache)
	uid := uuid.New()
	itemID := uuid.New()
	item := &entity.CheckItem{ID: itemID, UserID: uid, Name: "Door"}
	ctx := context.Background()

	t.Run("archive", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		itemsRepo.EXPECT().Archive(gomock.Any(), itemID).Return(nil)
		historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
		assert.NoError(t, is.Archive(ctx, uid, itemID))
	})
	t.Run("archive foreign item", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		assert.ErrorIs(t, is.Archive(ctx, uuid.New(), itemID), errorvalues.ErrWrongOwner)
	})
	t.Run("delete", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		itemsRepo.EXPECT().Delete(gomock.Any(), itemID).Return(nil)
		historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
		assert.NoError(t, is.Delete(ctx, uid, itemID))
	})
	t.Run("delete missing item", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrItemNotFound)
		assert.ErrorIs(t, is.Delete(ctx, uid, itemID), errorvalues.ErrItemNotFound)
	})
	t.Run("delete repository failure", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		itemsRepo.EXPECT().Delete(gomock.Any(), itemID).Return(errors.New("db error"))
		assert.EqualError(t, is.Delete(ctx, uid, itemID), "repository error: db error")
	})
}
