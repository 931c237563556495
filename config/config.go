package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cwrk-planet/classroom-scheduler/internal/pg"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type HTTP struct {
	Addr           string        `yaml:"addr"`           // ":8080"
	ReadTimeout    time.Duration `yaml:"readTimeout"`    // "15s"
	WriteTimeout   time.Duration `yaml:"writeTimeout"`   // "30s"
	IdleTimeout    time.Duration `yaml:"idleTimeout"`    // "60s"
	RequestTimeout time.Duration `yaml:"requestTimeout"` // "30s"
	CORSOrigins    []string      `yaml:"corsOrigins"`
	WSPingInterval time.Duration `yaml:"wsPingInterval"` // "15s"
}

type GRPC struct {
	Addr           string        `yaml:"addr"`           // ":9090"
	HealthInterval time.Duration `yaml:"healthInterval"` // "10s"
	CallTimeout    time.Duration `yaml:"callTimeout"`    // "10s"
}

type Logging struct {
	Env              string `yaml:"env"`       // dev|stage|prod
	Service          string `yaml:"service"`   // classroom-scheduler
	Version          string `yaml:"version"`   // v0.1.0
	Backend          string `yaml:"backend"`   // std|zap
	AddSource        bool   `yaml:"addSource"` // false|true
	Debug            bool   `yaml:"debug"`     // false|true
	SampleInitial    int    `yaml:"sampleInitial"`
	SampleThereafter int    `yaml:"sampleThereafter"`
}

type Storage struct {
	Driver string `yaml:"driver"` // postgres|memory
}

type Postgres struct {
	DSN               string        `yaml:"dsn"`
	MaxConns          int32         `yaml:"maxConns"`
	MinConns          int32         `yaml:"minConns"`
	MaxConnLifetime   time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime   time.Duration `yaml:"maxConnIdleTime"`
	HealthCheckPeriod time.Duration `yaml:"healthCheckPeriod"`
	ApplicationName   string        `yaml:"applicationName"`
	// применять встроенную схему при старте
	Migrate bool `yaml:"migrate"`
}

func (p Postgres) Validate() error {
	if p.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if p.MaxConns < 0 || p.MinConns < 0 {
		return errors.New("postgres.maxConns and postgres.minConns must be >= 0")
	}
	if p.MaxConns > 0 && p.MinConns > p.MaxConns {
		return errors.New("postgres.minConns must not exceed postgres.maxConns")
	}

	return nil
}

func (p Postgres) ToPGConfig() pg.Config {
	return pg.Config{
		DSN:               p.DSN,
		MaxConns:          p.MaxConns,
		MinConns:          p.MinConns,
		MaxConnLifetime:   p.MaxConnLifetime,
		MaxConnIdleTime:   p.MaxConnIdleTime,
		HealthCheckPeriod: p.HealthCheckPeriod,
		ApplicationName:   p.ApplicationName,
	}
}

type Config struct {
	HTTP            HTTP          `yaml:"http"`
	GRPC            GRPC          `yaml:"grpc"`
	Logging         Logging       `yaml:"logging"`
	Storage         Storage       `yaml:"storage"`
	Postgres        Postgres      `yaml:"postgres"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"` // "10s"
}

// LoadConfig читает YAML: явный путь, затем CONFIG_PATH, затем ./config/config.yaml.
// POSTGRES_DSN из окружения перекрывает postgres.dsn.
func LoadConfig(path ...string) (*Config, error) {
	filename := os.Getenv("CONFIG_PATH")
	if len(path) > 0 && strings.TrimSpace(path[0]) != "" {
		filename = path[0]
	}
	if filename == "" {
		filename = "./config/config.yaml"
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.GRPC.Addr == "" {
		return errors.New("grpc.addr is required")
	}

	switch c.Storage.Driver {
	case "":
		c.Storage.Driver = DriverPostgres
		fallthrough
	case DriverPostgres:
		if err := c.Postgres.Validate(); err != nil {
			return err
		}
	case DriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", DriverPostgres, DriverMemory, c.Storage.Driver)
	}

	// установка дефолтов, если значения не указаны
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 15 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 30 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.RequestTimeout == 0 {
		c.HTTP.RequestTimeout = 30 * time.Second
	}
	if c.HTTP.WSPingInterval == 0 {
		c.HTTP.WSPingInterval = 15 * time.Second
	}
	if c.GRPC.HealthInterval == 0 {
		c.GRPC.HealthInterval = 10 * time.Second
	}
	if c.GRPC.CallTimeout == 0 {
		c.GRPC.CallTimeout = 10 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "classroom-scheduler"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	return nil
}
