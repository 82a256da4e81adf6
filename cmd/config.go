package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	RedisAddr      string
	OrderCacheTTL  time.Duration
	AbandonedAfter time.Duration
}

// PostgresDSN renders the database settings as a lib/pq connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
