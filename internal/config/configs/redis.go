package configs

// Redis holds the connection settings of the spotlight board.
type Redis struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Address accepts host:port or a redis:// URL.
	Address      string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password     string `env:"PASSWORD"`
	DB           int    `env:"DB" envDefault:"0"`
	SpotlightKey string `env:"SPOTLIGHT_KEY" envDefault:"campus-ads:spotlights"`
}
