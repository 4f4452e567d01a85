package envconfig

import "github.com/caarlos0/env/v11"

type adminEnv struct {
	Token string `env:"ADMIN_TOKEN" envDefault:""`
}

type admin struct {
	raw adminEnv
}

func NewAdminConfig() (*admin, error) {
	var raw adminEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &admin{raw: raw}, nil
}

func (cfg *admin) Token() string { return cfg.raw.Token }
