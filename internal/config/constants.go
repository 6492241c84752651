package config

const (
	// DefaultDatabasePath is the catalog file used when DATABASE_PATH is unset.
	DefaultDatabasePath = "./buku.db"

	// DefaultEnvFile is read at startup if present.
	DefaultEnvFile = ".env"
)
