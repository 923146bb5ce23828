// Package config provides functionality for managing configuration options
// for the application using command-line flags, a .env file and environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionTTL is used when no session lifetime is configured.
const DefaultSessionTTL = 24 * time.Hour

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string

	// SessionSecret signs session tokens. Required.
	SessionSecret string

	// SessionTTL is how long an issued session token stays valid.
	SessionTTL time.Duration

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.DurationVar(&options.SessionTTL, "t", DefaultSessionTTL, "session token lifetime")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional .env and JSON config
// files and environment variables to set configuration values. It returns a
// pointer to the Options struct containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// A local .env is optional; environment wins over it either way.
	_ = godotenv.Load()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		options.SessionSecret = secret
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("invalid SESSION_TTL: %v", err)
		}
		options.SessionTTL = d
	}

	return options
}

// Validate reports whether the required options are present. Both the
// database connection string and the session-signing secret are fatal
// startup conditions when absent.
func (o *Options) Validate() error {
	if o.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if o.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	return nil
}
