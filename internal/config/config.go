package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Server   ServerConfig   `mapstructure:"server"`
	Auction  AuctionConfig  `mapstructure:"auction"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	DSN             string        `mapstructure:"dsn"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type AuctionConfig struct {
	DefaultDuration time.Duration `mapstructure:"default_duration"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. A .env file in the
// working directory is applied to the environment first. When configPath
// is empty the usual locations are searched and a missing file is not an
// error.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "dbms_pro")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.path", "dbms_pro.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "auction_events")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("auction.default_duration", 7*24*time.Hour)
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/auction-bookkeeping/")
	}

	v.AutomaticEnv()

	// Environment variable mappings
	bindings := map[string]string{
		"database.driver":            "DB_DRIVER",
		"database.host":              "DB_HOST",
		"database.port":              "DB_PORT",
		"database.user":              "DB_USER",
		"database.password":          "DB_PASSWORD",
		"database.name":              "DB_NAME",
		"database.dsn":               "DB_DSN",
		"database.path":              "DB_PATH",
		"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
		"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
		"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
		"redis.enabled":              "REDIS_ENABLED",
		"redis.address":              "REDIS_ADDRESS",
		"redis.password":             "REDIS_PASSWORD",
		"redis.db":                   "REDIS_DB",
		"redis.channel":              "REDIS_CHANNEL",
		"server.port":                "SERVER_PORT",
		"server.host":                "SERVER_HOST",
		"auction.default_duration":   "AUCTION_DEFAULT_DURATION",
		"log.level":                  "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found, continue with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == DriverSQLite && c.Database.DSN == "" && c.Database.Path == "" {
		return errors.New("database.path must be set for sqlite3")
	}
	if c.Auction.DefaultDuration < 0 {
		return errors.New("auction.default_duration must not be negative")
	}
	if c.Redis.Enabled && c.Redis.Channel == "" {
		return errors.New("redis.channel must be set when redis is enabled")
	}
	return nil
}

// DataSourceName returns the driver-specific connection string. An explicit
// DSN always wins.
func (c DatabaseConfig) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver == DriverSQLite {
		return c.Path
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Name
	mc.ParseTime = true
	return mc.FormatDSN()
}

// InMemory reports whether the SQLite database lives only inside its
// connection. Such a database must keep exactly one connection open for
// the life of the process.
func (c DatabaseConfig) InMemory() bool {
	if c.Driver != DriverSQLite {
		return false
	}
	dsn := c.DataSourceName()
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// String returns a summary safe for logging.
func (c *Config) String() string {
	target := c.Database.Path
	if c.Database.Driver == DriverMySQL {
		target = fmt.Sprintf("%s@%s:%d/%s", c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name)
	}
	return fmt.Sprintf(
		"Database: %s %s, Redis: %s (enabled=%t), Server: %s:%d",
		c.Database.Driver,
		target,
		c.Redis.Address,
		c.Redis.Enabled,
		c.Server.Host,
		c.Server.Port,
	)
}
