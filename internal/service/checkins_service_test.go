package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	cachemocks "github.com/limbo/kakune/internal/cache/mocks"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/internal/repository/mocks"
	"github.com/limbo/kakune/internal/service"
	"github.com/limbo/kakune/pkg/civiltime"
	"github.com/limbo/kakune/pkg/clock"
	"github.com/limbo/kakune/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jst = civiltime.NewZone(civiltime.DefaultOffset)
	// Wednesday 2024-06-05 12:00 in +09:00
	serviceNow = time.Date(2024, 6, 5, 3, 0, 0, 0, time.UTC)
	todayStart = time.Date(2024, 6, 4, 15, 0, 0, 0, time.UTC)
	todayEnd   = time.Date(2024, 6, 5, 15, 0, 0, 0, time.UTC)
)

func assertToday(t *testing.T, from, to time.Time) {
	t.Helper()
	assert.True(t, from.Equal(todayStart), "from = %s", from)
	assert.True(t, to.Equal(todayEnd), "to = %s", to)
}

func TestRecordCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	checkInsRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	cs := service.NewCheckInsService(itemsRepo, checkInsRepo, historyCache, clock.Fake(serviceNow), jst)
	uid := uuid.New()
	itemID := uuid.New()
	eventID := uuid.New()
	active := &entity.CheckItem{ID: itemID, UserID: uid, Name: "Door"}
	testCases := []struct {
		Desc         string
		PhotoRef     *string
		Error        error
		ErrorText    string
		TodayCount   int
		MockPrepFunc func()
	}{
		{
			Desc:       "repeated check-in counted",
			TodayCount: 3,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(active, nil)
				checkInsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entity.CheckInEvent) (uuid.UUID, error) {
					assert.True(t, e.OccurredAt.Equal(serviceNow))
					assert.Equal(t, uid, e.UserID)
					assert.Equal(t, itemID, e.ItemID)
					assert.Nil(t, e.PhotoRef)
					return eventID, nil
				})
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
				checkInsRepo.EXPECT().CountByRange(gomock.Any(), uid, &itemID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, from, to time.Time) (int, error) {
						assertToday(t, from, to)
						return 3, nil
					})
			},
		},
		{
			Desc:       "with photo",
			PhotoRef:   strPtr("photos/1.jpg"),
			TodayCount: 1,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(active, nil)
				checkInsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entity.CheckInEvent) (uuid.UUID, error) {
					require.NotNil(t, e.PhotoRef)
					assert.Equal(t, "photos/1.jpg", *e.PhotoRef)
					return eventID, nil
				})
				historyCache.EXPECT().Invalidate(gomock.Any(), uid).Return(errors.New("redis down"))
				checkInsRepo.EXPECT().CountByRange(gomock.Any(), uid, &itemID, gomock.Any(), gomock.Any()).Return(1, nil)
			},
		},
		{
			Desc:  "archived item",
			Error: errorvalues.ErrItemArchived,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.CheckItem{ID: itemID, UserID: uid, Archived: true}, nil)
			},
		},
		{
			Desc:  "foreign item",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(&entity.CheckItem{ID: itemID, UserID: uuid.New()}, nil)
			},
		},
		{
			Desc:  "missing item",
			Error: errorvalues.ErrItemNotFound,
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, errorvalues.ErrItemNotFound)
			},
		},
		{
			Desc:      "write failure",
			ErrorText: "repository error: db error",
			MockPrepFunc: func() {
				itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(active, nil)
				checkInsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rec, err := cs.Record(ctx, uid, itemID, tc.PhotoRef)
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.ErrorText != "":
				assert.EqualError(t, err, tc.ErrorText)
			default:
				require.NoError(t, err)
				assert.Equal(t, eventID, rec.Event.ID)
				assert.Equal(t, tc.TodayCount, rec.TodayCount)
			}
		})
	}
}

func TestHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	checkInsRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	cs := service.NewCheckInsService(itemsRepo, checkInsRepo, historyCache, clock.Fake(serviceNow), jst)
	uid := uuid.New()
	door, stove := uuid.New(), uuid.New()
	items := []entity.CheckItem{
		{ID: door, UserID: uid, Name: "Door", SortOrder: 0},
		{ID: stove, UserID: uid, Name: "Stove", SortOrder: 1},
	}
	events := []entity.CheckInEvent{
		{UserID: uid, ItemID: door, OccurredAt: todayStart},
		{UserID: uid, ItemID: door, OccurredAt: serviceNow.Add(-time.Hour)},
		{UserID: uid, ItemID: uuid.New(), OccurredAt: serviceNow.Add(-time.Minute)},
	}
	ctx := context.Background()

	t.Run("counts with pending submissions", func(t *testing.T) {
		itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return(items, nil)
		checkInsRepo.EXPECT().ListByRange(gomock.Any(), uid, nil, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, from, to time.Time) ([]entity.CheckInEvent, error) {
				assertToday(t, from, to)
				return events, nil
			})
		home, err := cs.Home(ctx, uid, map[uuid.UUID]int{door: 1, stove: -2})
		require.NoError(t, err)
		require.Len(t, home, 2)
		assert.Equal(t, "Door", home[0].Name)
		assert.Equal(t, 3, home[0].TodayCount)
		assert.Equal(t, 0, home[1].TodayCount)
	})
	t.Run("no pending", func(t *testing.T) {
		itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return(items, nil)
		checkInsRepo.EXPECT().ListByRange(gomock.Any(), uid, nil, gomock.Any(), gomock.Any()).Return(nil, nil)
		home, err := cs.Home(ctx, uid, nil)
		require.NoError(t, err)
		for _, h := range home {
			assert.Zero(t, h.TodayCount)
		}
	})
	t.Run("repository failure", func(t *testing.T) {
		itemsRepo.EXPECT().ListByUser(gomock.Any(), uid, false).Return(nil, errors.New("db error"))
		_, err := cs.Home(ctx, uid, nil)
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestTodayLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemsRepo := mocks.NewMockItemsRepositoryI(ctrl)
	checkInsRepo := mocks.NewMockCheckInsRepositoryI(ctrl)
	historyCache := cachemocks.NewMockHistoryCacheI(ctrl)
	clk := clock.Fake(serviceNow)
	cs := service.NewCheckInsService(itemsRepo, checkInsRepo, historyCache, clk, jst)
	uid := uuid.New()
	itemID := uuid.New()
	item := &entity.CheckItem{ID: itemID, UserID: uid, Name: "Door"}
	ctx := context.Background()

	t.Run("latest photo", func(t *testing.T) {
		events := []entity.CheckInEvent{
			{ItemID: itemID, OccurredAt: todayStart.Add(time.Hour), PhotoRef: strPtr("a.jpg")},
			{ItemID: itemID, OccurredAt: todayStart.Add(3 * time.Hour), PhotoRef: strPtr("b.jpg")},
			{ItemID: itemID, OccurredAt: todayStart.Add(5 * time.Hour)},
		}
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		checkInsRepo.EXPECT().ListByRange(gomock.Any(), uid, &itemID, gomock.Any(), gomock.Any()).Return(events, nil)
		log, err := cs.TodayLog(ctx, uid, itemID)
		require.NoError(t, err)
		assert.Equal(t, *item, log.Item)
		assert.Len(t, log.Events, 3)
		require.NotNil(t, log.LatestPhotoRef)
		assert.Equal(t, "b.jpg", *log.LatestPhotoRef)
	})
	t.Run("day rolls over at civil midnight", func(t *testing.T) {
		clk.Set(todayEnd)
		defer clk.Set(serviceNow)
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		checkInsRepo.EXPECT().ListByRange(gomock.Any(), uid, &itemID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, from, to time.Time) ([]entity.CheckInEvent, error) {
				assert.True(t, from.Equal(todayEnd))
				assert.True(t, to.Equal(todayEnd.Add(24*time.Hour)))
				return nil, nil
			})
		log, err := cs.TodayLog(ctx, uid, itemID)
		require.NoError(t, err)
		assert.Empty(t, log.Events)
		assert.Nil(t, log.LatestPhotoRef)
	})
	t.Run("foreign item", func(t *testing.T) {
		itemsRepo.EXPECT().GetByID(gomock.Any(), itemID).Return(item, nil)
		_, err := cs.TodayLog(ctx, uuid.New(), itemID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
