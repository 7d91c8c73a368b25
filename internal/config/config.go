package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds catalog database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// Stratum is one (category, target sample size) pair of the explore-mode
// sampling distribution
type Stratum struct {
	CategoryID int64 `mapstructure:"category_id"`
	Target     int   `mapstructure:"target"`
}

// BrowseConfig holds tunables for the aggregation/pagination pipeline
type BrowseConfig struct {
	// BatchSize is the window size of the paginated fetcher
	BatchSize int `mapstructure:"batch_size"`
	// SearchDebounce is the trailing debounce applied to search-text changes
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	// ResizeDebounce is the trailing debounce applied to viewport resizes
	ResizeDebounce time.Duration `mapstructure:"resize_debounce"`
	// OwnershipTTL is the validity window of the ownership overlay cache
	OwnershipTTL time.Duration `mapstructure:"ownership_ttl"`
	// PeriodsTTL is the validity window of the per-country period cache
	PeriodsTTL time.Duration `mapstructure:"periods_ttl"`
	// SamplerPoolSize bounds concurrent per-category sample fetches
	SamplerPoolSize int `mapstructure:"sampler_pool_size"`
	// Overscan is the number of extra rows rendered beyond the viewport
	Overscan int `mapstructure:"overscan"`
	// ExploreDistribution is the stratified sampling table for explore mode
	ExploreDistribution []Stratum `mapstructure:"explore_distribution"`
}

// APIConfig holds configuration for the gallery API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Browse     BrowseConfig   `mapstructure:"browse"`
}

// DefaultExploreDistribution mirrors the shipped catalog categories:
// circulation, commemorative, collector, tokens and the two notgeld buckets.
func DefaultExploreDistribution() []Stratum {
	return []Stratum{
		{CategoryID: 1, Target: 60},
		{CategoryID: 2, Target: 50},
		{CategoryID: 3, Target: 50},
		{CategoryID: 4, Target: 20},
		{CategoryID: 5, Target: 10},
		{CategoryID: 6, Target: 10},
	}
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("browse.batch_size", 1000)
	v.SetDefault("browse.search_debounce", "300ms")
	v.SetDefault("browse.resize_debounce", "150ms")
	v.SetDefault("browse.ownership_ttl", "5m")
	v.SetDefault("browse.periods_ttl", "30m")
	v.SetDefault("browse.sampler_pool_size", 6)
	v.SetDefault("browse.overscan", 5)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Browse.ExploreDistribution) == 0 {
		cfg.Browse.ExploreDistribution = DefaultExploreDistribution()
	}
	for _, s := range cfg.Browse.ExploreDistribution {
		if s.CategoryID == 0 || s.Target <= 0 {
			return nil, fmt.Errorf("invalid explore distribution entry: category_id=%d target=%d", s.CategoryID, s.Target)
		}
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("COIN_GALLERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to struct fields when no config file
// exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Browse pipeline
		"browse.batch_size",
		"browse.search_debounce",
		"browse.resize_debounce",
		"browse.ownership_ttl",
		"browse.periods_ttl",
		"browse.sampler_pool_size",
		"browse.overscan",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
