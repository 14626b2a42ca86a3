package configs

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Store selects the persistence backend. "memory" keeps everything in the
// process and is meant for local runs.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Valid reports whether Driver is supported.
func (s Store) Valid() bool {
	return s.Driver == DriverPostgres || s.Driver == DriverMemory
}
