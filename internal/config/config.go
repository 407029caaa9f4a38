package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"socis_remeses/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"

	DocumentsLocal = "local"
	DocumentsS3    = "s3"
)

// CreditorConfig is the association's creditor profile used when a build
// request does not carry its own.
type CreditorConfig struct {
	Name string `yaml:"name"`
	IBAN string `yaml:"iban"`
	BIC  string `yaml:"bic"`
	ID   string `yaml:"creditor_id"`
}

// Config holds application configuration.
type Config struct {
	ServerPort int `yaml:"server_port"`

	StoreBackend string `yaml:"store_backend"`

	DocumentBackend string `yaml:"document_backend"`
	DocumentDir     string `yaml:"document_dir"`
	DocumentsBucket string `yaml:"documents_bucket"`
	DocumentsPrefix string `yaml:"documents_prefix"`

	Creditor CreditorConfig `yaml:"creditor"`

	MemberDirectoryURL string        `yaml:"member_directory_url"`
	MemberDirectoryTTL time.Duration `yaml:"member_directory_ttl"`
	MemberListTTL      time.Duration `yaml:"member_list_ttl"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads the environment, then overlays CONFIG_FILE when set.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnvInt("SERVER_PORT", 8080),
		StoreBackend:    getEnv("STORE_BACKEND", StoreMemory),
		DocumentBackend: getEnv("DOCUMENT_BACKEND", DocumentsLocal),
		DocumentDir:     getEnv("DOCUMENT_DIR", "var/remittances"),
		DocumentsBucket: getEnv("DOCUMENTS_BUCKET", ""),
		DocumentsPrefix: getEnv("DOCUMENTS_PREFIX", "remittances"),
		Creditor: CreditorConfig{
			Name: getEnv("CREDITOR_NAME", ""),
			IBAN: getEnv("CREDITOR_IBAN", ""),
			BIC:  getEnv("CREDITOR_BIC", ""),
			ID:   getEnv("CREDITOR_ID", ""),
		},
		MemberDirectoryURL: getEnv("MEMBER_DIRECTORY_URL", ""),
		MemberDirectoryTTL: getEnvDuration("MEMBER_DIRECTORY_TTL", 5*time.Minute),
		MemberListTTL:      getEnvDuration("MEMBER_LIST_TTL", 30*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.DocumentBackend = strings.ToLower(strings.TrimSpace(cfg.DocumentBackend))

	switch cfg.StoreBackend {
	case StoreMemory, StoreDynamoDB:
	default:
		return nil, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	switch cfg.DocumentBackend {
	case DocumentsLocal:
		if cfg.DocumentDir == "" {
			return nil, fmt.Errorf("config: DOCUMENT_DIR is required for the local document backend")
		}
	case DocumentsS3:
		if cfg.DocumentsBucket == "" {
			return nil, fmt.Errorf("config: DOCUMENTS_BUCKET is required for the s3 document backend")
		}
	default:
		return nil, fmt.Errorf("config: unknown DOCUMENT_BACKEND %q", cfg.DocumentBackend)
	}
	return cfg, nil
}

// HasMemberDirectory reports whether the remote member directory is configured.
func (c *Config) HasMemberDirectory() bool {
	return c.MemberDirectoryURL != ""
}

// DefaultCreditor returns the configured creditor, or the zero value when the
// profile is incomplete.
func (c *Config) DefaultCreditor() entities.Creditor {
	if c.Creditor.Name == "" || c.Creditor.IBAN == "" || c.Creditor.ID == "" {
		return entities.Creditor{}
	}
	return entities.Creditor{
		Name: c.Creditor.Name,
		IBAN: c.Creditor.IBAN,
		BIC:  c.Creditor.BIC,
		ID:   c.Creditor.ID,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
