package app

import (
	"context"
	"log/slog"
	lotteryAPI "lottery_backend/internal/api/lottery"
	"lottery_backend/internal/config"
	"lottery_backend/internal/config/env"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/middleware"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/repository/round_repo"
	"lottery_backend/internal/repository/stats_repo"
	"lottery_backend/internal/repository/transfer_repo"
	"lottery_backend/internal/service"
	"lottery_backend/internal/service/lottery"
	"os"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Observability
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Lottery

	// Lottery bits
	lotteryCfg   config.LotteryConfig
	roundRepo    repository.RoundRepository
	transferRepo repository.TransferRepository
	statsRepo    repository.StatsRepository
	lotteryServ  service.LotteryService
	lotteryHand  *lotteryAPI.Handler

	// Router, HTTP and JWT config
	httpCfg config.HTTPConfig
	jwtCfg  config.JWTConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Lottery {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry())
	}
	return sp.metrics
}

func (sp *ServiceProvider) LotteryCfg() config.LotteryConfig {
	if sp.lotteryCfg == nil {
		cfg, err := env.NewLotteryConfigFromYAML(env.LotteryConfigPath())
		if err != nil {
			panic("failed to get lottery config: " + err.Error())
		}
		sp.lotteryCfg = cfg
	}
	return sp.lotteryCfg
}

func (sp *ServiceProvider) RoundRepository(ctx context.Context) repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository(sp.DBClient(ctx))
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) TransferRepository(ctx context.Context) repository.TransferRepository {
	if sp.transferRepo == nil {
		sp.transferRepo = transfer_repo.NewTransferRepository(sp.DBClient(ctx))
	}
	return sp.transferRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) LotteryService(ctx context.Context) service.LotteryService {
	if sp.lotteryServ == nil {
		sp.lotteryServ = lottery.NewLotteryService(
			sp.RoundRepository(ctx),
			sp.TransferRepository(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.lotteryServ
}

func (sp *ServiceProvider) LotteryHandler(ctx context.Context) *lotteryAPI.Handler {
	if sp.lotteryHand == nil {
		sp.lotteryHand = lotteryAPI.NewHandler(lotteryAPI.HandlerDeps{
			Serv: sp.LotteryService(ctx),
		})
	}
	return sp.lotteryHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}

	return sp.jwtCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		// Lottery endpoints
		lotteryHandler := sp.LotteryHandler(ctx)
		r.Route("/lottery", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
			lotteryHandler.Routes(rr)
		})

		sp.router = r
	}

	return sp.router
}
