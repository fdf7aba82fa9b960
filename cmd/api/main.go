// @title Check-in log API
// @description API for the check-in log app "Kakune"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/kakune/internal/api"
	"github.com/limbo/kakune/internal/cache"
	"github.com/limbo/kakune/internal/repository"
	"github.com/limbo/kakune/internal/service"
	"github.com/limbo/kakune/pkg/cleanup"
	"github.com/limbo/kakune/pkg/clock"
	"github.com/limbo/kakune/pkg/config"
	jwtservice "github.com/limbo/kakune/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(cfg.Logger(os.Stdout))
	defer cleanup.CleanUp()

	zone, err := cfg.Zone()
	if err != nil {
		log.Fatal(err)
	}
	clk := clock.Real()

	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSLMode,
	}
	pool := repository.NewPool(&dbCfg, "kakune")
	usersRepo := repository.NewUsersRepoWithConn(pool)
	itemsRepo := repository.NewItemsRepoWithConn(pool)
	checkInsRepo := repository.NewCheckInsRepoWithConn(pool)

	var historyCache cache.HistoryCacheI = cache.NopHistoryCache{}
	if cfg.CacheEnabled() {
		historyCache = cache.NewHistoryCache(&cache.RedisCfg{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		}, cfg.CacheTTL)
	} else {
		slog.Warn("REDIS_ADDR is not set, history views won't be cached")
	}

	sweeper := service.NewPhotoSweeper(checkInsRepo, clk, cfg.PhotoRetention, slog.Default())
	if err = sweeper.Start(cfg.PhotoSweepCron); err != nil {
		log.Fatal(err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping photo sweeper",
		F: func() error {
			sweeper.Stop()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(usersRepo),
		ItemsService:    service.NewItemsService(itemsRepo, historyCache),
		CheckInsService: service.NewCheckInsService(itemsRepo, checkInsRepo, historyCache, clk, zone),
		HistoryService:  service.NewHistoryService(itemsRepo, checkInsRepo, historyCache, clk, zone),
		JwtService:      jwtservice.New(cfg.JWTSecret, cfg.JWTTTL, clk),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.Info("starting kakune", slog.String("civil_offset", zone.String()))
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
