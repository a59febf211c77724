package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/transfer-auction/internal/config"
	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/domain/deadline"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/riskibarqy/transfer-auction/internal/infrastructure/alerting"
	"github.com/riskibarqy/transfer-auction/internal/infrastructure/auth"
	cachedrepo "github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/transfer-auction/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/transfer-auction/internal/platform/cache"
	idgen "github.com/riskibarqy/transfer-auction/internal/platform/id"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

// NewHTTPServer wires the whole service together. The returned cleanup
// releases the alert worker pool and closes the DB handle; call it after
// the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	db, err := sqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	var (
		playerRepo   player.Repository   = postgres.NewPlayerRepository(db)
		bidRepo      bid.Repository      = postgres.NewBidRepository(db, cfg.BidLockTimeout)
		deadlineRepo deadline.Repository = postgres.NewDeadlineRepository(db)
	)
	tokenRepo := postgres.NewTeamTokenRepository(db)

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		playerRepo = cachedrepo.NewPlayerRepository(playerRepo, store)
		bidRepo = cachedrepo.NewBidRepository(bidRepo, store)
		deadlineRepo = cachedrepo.NewDeadlineRepository(deadlineRepo, store)
	}

	var alertRecorder alert.Recorder = postgres.NewAlertRepository(db)
	asyncAlerts, err := alerting.NewAsyncRecorder(alertRecorder, cfg.AlertWorkers, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("build alert recorder: %w", err)
	}

	sessions := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.AdminPassword)
	teamVerifier := auth.NewTeamTokenVerifier(tokenRepo)

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(playerRepo),
		usecase.NewBidService(bidRepo, playerRepo, asyncAlerts, logger),
		usecase.NewDeadlineService(deadlineRepo),
		usecase.NewExportService(playerRepo, bidRepo),
		usecase.NewTeamTokenService(tokenRepo, idgen.NewRandomGenerator()),
		sessions,
		logger,
	)
	router := httpapi.NewRouter(handler, sessions, teamVerifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		asyncAlerts.Release()
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		asyncAlerts.Release()
		if err := db.Close(); err != nil {
			logger.Warn("close database", "error", err.Error())
		}
	}

	return server, cleanup, nil
}
