package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// DBMaxConns caps the connection pool; zero lets the pool pick its default.
	DBMaxConns int

	// ItemConfigPath points at the item definition file loaded into the catalog.
	ItemConfigPath string

	// InventoryCapBonus is added to the base inventory capacity for every profile.
	InventoryCapBonus int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "freedomcore"),
		ItemConfigPath: getEnv("ITEM_CONFIG_PATH", ConfigPathItems),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConnsStr := getEnv("DB_MAX_CONNS", "0")
	maxConns, err := strconv.Atoi(maxConnsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	if maxConns < 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must not be negative, got %d", maxConns)
	}
	cfg.DBMaxConns = maxConns

	bonusStr := getEnv("INVENTORY_CAP_BONUS", "0")
	bonus, err := strconv.Atoi(bonusStr)
	if err != nil {
		return nil, fmt.Errorf("invalid INVENTORY_CAP_BONUS value: %w", err)
	}
	if bonus < 0 {
		return nil, fmt.Errorf("INVENTORY_CAP_BONUS must not be negative, got %d", bonus)
	}
	cfg.InventoryCapBonus = bonus

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
