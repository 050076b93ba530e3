package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/secret-santa/db"
)

// DefaultSQLitePath is used when DatabaseType is sqlite and no URL is given
const DefaultSQLitePath = "secret-santa.db"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Seed         uint64
	CORSOrigins  []string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("secret-santa", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed for the match generator (0 = random)")
	var corsOrigins string
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated origins allowed to send credentials")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.DialectSQLite
		}
	}
	if _, err := db.DriverName(cfg.DatabaseType); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != db.DialectSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLitePath
	}

	if cfg.Seed == 0 {
		if seedStr := os.Getenv("MATCH_SEED"); seedStr != "" {
			seed, err := strconv.ParseUint(seedStr, 10, 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid MATCH_SEED env variable: %w", err)
			}
			cfg.Seed = seed
		}
	}

	if corsOrigins == "" {
		corsOrigins = os.Getenv("CORS_ORIGINS")
	}
	cfg.CORSOrigins = splitOrigins(corsOrigins)

	return cfg, nil
}

// splitOrigins splits a comma-separated list, dropping blanks
func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
