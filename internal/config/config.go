package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers         int
	RecentTransactionsLimit int
	Timezone                string
	Location                *time.Location
	LogLevel                string
	CurrencySymbol          string

	// Budget alerts are published only when AMQPURL is set.
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"port":                      "9446",
	"postgres_address":          "localhost",
	"postgres_port":             "5433",
	"postgres_db":               "postgres",
	"postgres_username":         "postgres",
	"postgres_password":         "testpassword",
	"operator_workers":          4,
	"recent_transactions_limit": 5,
	"timezone":                  "UTC",
	"log_level":                 "info",
	"currency_symbol":           "₹",
	"amqp_url":                  "",
	"amqp_exchange":             "finance",
	"amqp_routing_key":          "budget.alert",
}

// ProcessEnvironmentVariables layers environment variables over the
// defaults. Only the upper-case form of a known key is read, e.g.
// POSTGRES_ADDRESS for postgres_address, and empty values are ignored.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.ProviderWithValue("", ".", func(name, value string) (string, interface{}) {
		key := strings.ToLower(name)
		if _, known := defaults[key]; !known || len(value) == 0 {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		Port:                    k.String("port"),
		PostgresAddress:         k.String("postgres_address"),
		PostgresPort:            k.String("postgres_port"),
		PostgresDB:              k.String("postgres_db"),
		PostgresUsername:        k.String("postgres_username"),
		PostgresPassword:        k.String("postgres_password"),
		OperatorWorkers:         k.Int("operator_workers"),
		RecentTransactionsLimit: k.Int("recent_transactions_limit"),
		Timezone:                k.String("timezone"),
		LogLevel:                k.String("log_level"),
		CurrencySymbol:          k.String("currency_symbol"),
		AMQPURL:                 k.String("amqp_url"),
		AMQPExchange:            k.String("amqp_exchange"),
		AMQPRoutingKey:          k.String("amqp_routing_key"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once. It also
// resolves Location from Timezone.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.PostgresAddress == "" || c.PostgresDB == "" || c.PostgresUsername == "" {
		problems = append(problems, "postgres address, database and username are required")
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.RecentTransactionsLimit < 0 {
		problems = append(problems, fmt.Sprintf("invalid recent transactions limit %d: must not be negative", c.RecentTransactionsLimit))
	}

	if loc, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	} else {
		c.Location = loc
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c *Config) AlertsEnabled() bool {
	return c.AMQPURL != ""
}
