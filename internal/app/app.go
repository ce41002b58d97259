package app

import (
	"context"
	"log"
	"lottery_backend/internal/config"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/migrations"
	"lottery_backend/pkg/token"
	"net/http"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.ServiceProvider = newServiceProvider()
}

// Migrate - создать таблицы лотереи
func (s *App) Migrate(ctx context.Context) error {
	s.initServiceProvider()
	return migrations.Up(ctx, s.ServiceProvider.DBClient(ctx))
}

// Token - выпустить токен доступа для адреса
func (s *App) Token(address string) (string, error) {
	s.initServiceProvider()
	jwtCfg := s.ServiceProvider.JWTCfg()
	return token.GenerateAccessToken(address, jwtCfg.AccessTokenSecretKey(), jwtCfg.AccessTokenDuration())
}

// Run - поднять лотерею и http сервер. Если migrate, перед стартом применяются миграции
func (s *App) Run(ctx context.Context, migrate bool) error {
	s.initServiceProvider()

	if migrate {
		err := migrations.Up(ctx, s.ServiceProvider.DBClient(ctx))
		if err != nil {
			return err
		}
	}

	admin := lottery.Address(s.ServiceProvider.LotteryCfg().Admin())
	err := s.ServiceProvider.LotteryService(ctx).Init(ctx, admin)
	if err != nil {
		return err
	}

	r := s.ServiceProvider.Router(ctx)

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}
