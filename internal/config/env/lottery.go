package env

import (
	"errors"
	"fmt"
	"lottery_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	lotteryConfigEnvName = "LOTTERY_CONFIG"
	defaultLotteryConfig = "config.yaml"
	lotteryAdminEnvName  = "LOTTERY_ADMIN"
)

type lotteryFile struct {
	Lottery struct {
		Admin string `yaml:"admin"`
	} `yaml:"lottery"`
}

type lotteryConfig struct {
	admin string
}

// LotteryConfigPath - путь к yaml конфигу лотереи
func LotteryConfigPath() string {
	path := os.Getenv(lotteryConfigEnvName)
	if len(path) == 0 {
		return defaultLotteryConfig
	}
	return path
}

// NewLotteryConfigFromYAML - читает адрес админа из yaml.
// LOTTERY_ADMIN из окружения имеет приоритет над файлом
func NewLotteryConfigFromYAML(path string) (config.LotteryConfig, error) {
	var file lotteryFile

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Файла может не быть, если админ задан через окружение
	default:
		return nil, err
	}

	admin := file.Lottery.Admin
	if v := os.Getenv(lotteryAdminEnvName); len(v) != 0 {
		admin = v
	}
	if len(admin) == 0 {
		return nil, errors.New("lottery admin not found")
	}

	return &lotteryConfig{
		admin: admin,
	}, nil
}

func (cfg *lotteryConfig) Admin() string {
	return cfg.admin
}
