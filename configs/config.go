package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageJSON     = "json"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Port          string
	StorageDriver string
	DBSource      string
	DataFile      string
	CORSOrigins   []string
	RateLimit     string
	OIDCIssuer    string
	OIDCClientID  string
	LogLevel      string
	SeedDemoData  bool
}

// AuthEnabled reports whether bearer tokens are required on /api.
func (c Config) AuthEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

// LoadConfig reads the given env files (".env" when none are named) and then
// the process environment. A missing env file is not an error.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageJSON)),
		DBSource:      getEnv("DB_SOURCE", "restaurant.db"),
		DataFile:      getEnv("DATA_FILE", "data/restaurant-data.json"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		RateLimit:     getEnv("RATE_LIMIT", "600-M"),
		OIDCIssuer:    getEnv("OIDC_ISSUER", ""),
		OIDCClientID:  getEnv("OIDC_CLIENT_ID", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SeedDemoData:  seed,
	}

	switch cfg.StorageDriver {
	case StorageJSON, StorageSQLite, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
