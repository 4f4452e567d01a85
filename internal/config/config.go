package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/internal/config/env"
)

var cfg *config

type config struct {
	Server Server
	Logger Logger
	Brand  Brand
	Admin  Admin
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	brandCfg, err := envconfig.NewBrandConfig()
	if err != nil {
		return fmt.Errorf("%s Brand: %w", op, err)
	}

	adminCfg, err := envconfig.NewAdminConfig()
	if err != nil {
		return fmt.Errorf("%s Admin: %w", op, err)
	}

	cfg = &config{
		Server: serverCfg,
		Logger: loggerCfg,
		Brand:  brandCfg,
		Admin:  adminCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
