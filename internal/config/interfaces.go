package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

// Brand selects which rebranded site variant this process serves.
type Brand interface {
	Name() string
	Mark() string
	Slug() string
	Phone() string
}

type Admin interface {
	// Token guards the quote-request listing. Empty disables access
	// entirely.
	Token() string
}
