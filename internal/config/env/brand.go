package envconfig

import "github.com/caarlos0/env/v11"

// The same binary serves every rebranded variant; these four values are
// all that changes between TIGON Batteries, Cart Battery Depot and
// LSV Battery Depot.
type brandEnv struct {
	Name  string `env:"BRAND_NAME" envDefault:"LSV Battery Depot"`
	Mark  string `env:"BRAND_MARK" envDefault:"LSV Battery Depot"`
	Slug  string `env:"BRAND_SLUG" envDefault:"lsv-battery-depot"`
	Phone string `env:"BRAND_PHONE" envDefault:"1-844-888-7732"`
}

type brand struct {
	raw brandEnv
}

func NewBrandConfig() (*brand, error) {
	var raw brandEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &brand{raw: raw}, nil
}

func (cfg *brand) Name() string  { return cfg.raw.Name }
func (cfg *brand) Mark() string  { return cfg.raw.Mark }
func (cfg *brand) Slug() string  { return cfg.raw.Slug }
func (cfg *brand) Phone() string { return cfg.raw.Phone }
