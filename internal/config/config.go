package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	Env     string `yaml:"env"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type VerificationConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type PresenceConfig struct {
	TTL string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type StorageConfig struct {
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	AccessKey    string `yaml:"access_key"`
	SecretKey    string `yaml:"secret_key"`
	BaseEndpoint string `yaml:"base_endpoint"`
	MaxSizeBytes int64  `yaml:"max_size_bytes"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Mongo        MongoConfig        `yaml:"mongo"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	Verification VerificationConfig `yaml:"verification"`
	Presence     PresenceConfig     `yaml:"presence"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	Storage      StorageConfig      `yaml:"storage"`
}

// Config is the flat runtime configuration handed to the container.
type Config struct {
	Port            string
	GinMode         string
	Env             string
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	VerificationTTL time.Duration
	CodeLength      int
	PresenceTTL     time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3BaseEndpoint  string
	MediaMaxSize    int64
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the YAML config file and applies environment overrides for
// secrets. The file path defaults to config/config.yml.
func Load() (*Config, error) {
	path := env("LETTERA_CONFIG", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(defaultString(configFile.JWT.AccessTTL, "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(defaultString(configFile.JWT.RefreshTTL, "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	verifTTL, err := time.ParseDuration(defaultString(configFile.Verification.TTL, "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}

	presTTL, err := time.ParseDuration(defaultString(configFile.Presence.TTL, "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid presence TTL: %w", err)
	}

	codeLength := configFile.Verification.Length
	if codeLength == 0 {
		codeLength = 6
	}

	maxSize := configFile.Storage.MaxSizeBytes
	if maxSize == 0 {
		maxSize = 25 << 20 // 25 MiB
	}

	port := configFile.App.Port
	if port == 0 {
		port = 8080
	}

	cfg := &Config{
		Port:            fmt.Sprintf("%d", port),
		GinMode:         configFile.App.GinMode,
		Env:             defaultString(configFile.App.Env, "development"),
		MongoURI:        env("LETTERA_MONGO_URI", configFile.Mongo.URI),
		MongoDatabase:   defaultString(configFile.Mongo.Database, "lettera"),
		RedisAddr:       env("LETTERA_REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("LETTERA_REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("LETTERA_JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       defaultString(configFile.JWT.Issuer, "lettera"),
		AccessTTL:       accTTL,
		RefreshTTL:      refTTL,
		VerificationTTL: verifTTL,
		CodeLength:      codeLength,
		PresenceTTL:     presTTL,
		SMTPHost:        configFile.SMTP.Host,
		SMTPPort:        configFile.SMTP.Port,
		SMTPUsername:    env("LETTERA_SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:    env("LETTERA_SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:        configFile.SMTP.From,
		S3Region:        configFile.Storage.Region,
		S3Bucket:        configFile.Storage.Bucket,
		S3AccessKey:     env("LETTERA_S3_ACCESS_KEY", configFile.Storage.AccessKey),
		S3SecretKey:     env("LETTERA_S3_SECRET_KEY", configFile.Storage.SecretKey),
		S3BaseEndpoint:  configFile.Storage.BaseEndpoint,
		MediaMaxSize:    maxSize,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be configured")
	}
	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
