package db

import "time"

// MariaDbConfig gathers the pool settings of a MariaDB connection.
type MariaDbConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// MultiStatements is only needed by the migrator.
	MultiStatements bool
}
