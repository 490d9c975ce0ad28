package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Registry RegistryConfig `yaml:"registry"`
	Zotero   ZoteroConfig   `yaml:"zotero"`
	Sync     SyncConfig     `yaml:"sync"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the optional new-article event feed. An empty
// URL disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type RegistryConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ContactEmail string        `yaml:"contact_email"`
	PageSize     int           `yaml:"page_size"`
	Timeout      time.Duration `yaml:"timeout"`
	Retry        RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ZoteroConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SyncConfig struct {
	BatchSize     int `yaml:"batch_size"`
	MaxConcurrent int `yaml:"max_concurrent"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "journal_monitor"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "new_articles"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "article_digest"
	}
	if c.Registry.BaseURL == "" {
		c.Registry.BaseURL = "https://api.crossref.org"
	}
	if c.Registry.ContactEmail == "" {
		c.Registry.ContactEmail = "test@test.com"
	}
	if c.Registry.PageSize == 0 {
		c.Registry.PageSize = 50
	}
	if c.Registry.Timeout == 0 {
		c.Registry.Timeout = 30 * time.Second
	}
	if c.Registry.Retry.MaxAttempts == 0 {
		c.Registry.Retry.MaxAttempts = 3
	}
	if c.Registry.Retry.InitialBackoff == 0 {
		c.Registry.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Registry.Retry.MaxBackoff == 0 {
		c.Registry.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Zotero.BaseURL == "" {
		c.Zotero.BaseURL = "https://api.zotero.org"
	}
	if c.Zotero.Timeout == 0 {
		c.Zotero.Timeout = 60 * time.Second
	}
	if c.Sync.BatchSize == 0 {
		c.Sync.BatchSize = 10
	}
	if c.Sync.MaxConcurrent == 0 {
		c.Sync.MaxConcurrent = 5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
