package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ShivChilu/fresh-meat/internal/admin"
	"github.com/ShivChilu/fresh-meat/internal/auth"
	"github.com/ShivChilu/fresh-meat/internal/cart"
	"github.com/ShivChilu/fresh-meat/internal/catalog"
	"github.com/ShivChilu/fresh-meat/internal/config"
	"github.com/ShivChilu/fresh-meat/internal/customer"
	"github.com/ShivChilu/fresh-meat/internal/db"
	handler "github.com/ShivChilu/fresh-meat/internal/handler/http"
	"github.com/ShivChilu/fresh-meat/internal/order"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "fresh-meat").Logger()

	log.Info().Msg("Storefront starting...")

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()

	pg, err := db.NewPostgres(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pg.Close()

	if err := db.Migrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	reportingDB, err := db.NewReportingDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect reporting database")
	}
	defer reportingDB.Close()

	redisClient, err := db.NewRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	defer redisClient.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	catalogSvc := catalog.NewService(
		catalog.NewRepository(pg.Pool),
		catalog.NewRedisCache(redisClient),
		cfg.Catalog.CacheTTL,
	)
	cartSvc := cart.NewService(cart.NewRedisStore(redisClient))
	orderSvc := order.NewService(order.NewRepository(pg.Pool), cartSvc)
	customerSvc := customer.NewService(customer.NewRepository(pg.Pool))
	adminSvc := admin.NewService(
		admin.NewRepository(pg.Pool),
		admin.NewReportingRepository(reportingDB),
	)

	if err := adminSvc.Bootstrap(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap admin account")
	}

	router := handler.NewRouter(handler.Services{
		Catalog:   catalogSvc,
		Carts:     cartSvc,
		Orders:    orderSvc,
		Customers: customerSvc,
		Admins:    adminSvc,
		Tokens:    tokens,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
