package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultHost      = "0.0.0.0"
	DefaultPort      = 3000
	DefaultUploadDir = "uploads"
	DefaultMaxPixels = 40_000_000
)

type Config struct {
	Server struct {
		Host string `yaml:"host" validate:"required"`
		Port int    `yaml:"port" validate:"min=1,max=65535"`
		Env  string `yaml:"env" validate:"oneof=development production test"`
	} `yaml:"server"`

	Storage struct {
		Type      string `yaml:"type" validate:"oneof=local s3 cloudflare_r2"` // local, s3, cloudflare_r2
		BasePath  string `yaml:"base_path" validate:"required_if=Type local"`  // Directory for local, key prefix for S3/R2
		Bucket    string `yaml:"bucket" validate:"required_unless=Type local"` // For S3/R2
		Region    string `yaml:"region"`                                       // For S3
		AccessKey string `yaml:"access_key"`                                   // For S3/R2
		SecretKey string `yaml:"secret_key"`                                   // For S3/R2
		Endpoint  string `yaml:"endpoint"`                                     // For R2 or custom S3
	} `yaml:"storage"`

	Upload struct {
		MaxMemory         int64 `yaml:"max_memory" validate:"gt=0"`             // Multipart bytes kept in memory
		SanitizeFilenames bool  `yaml:"sanitize_filenames"`                     // Strip directories from client filenames
		ThumbnailSize     int   `yaml:"thumbnail_size" validate:"min=0"`        // 0 disables thumbnails
		ImageQuality      int   `yaml:"image_quality" validate:"min=0,max=100"` // JPEG quality (1-100)
		MaxPixels         int64 `yaml:"max_pixels" validate:"gt=0"`             // Larger images get no thumbnail
	} `yaml:"upload"`
}

var AppConfig *Config

// Default returns the configuration the server runs with when no config file exists.
func Default() *Config {
	var cfg Config

	cfg.Server.Host = DefaultHost
	cfg.Server.Port = DefaultPort
	cfg.Server.Env = "development"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = DefaultUploadDir

	cfg.Upload.MaxMemory = 32 << 20 // 32MB
	cfg.Upload.ImageQuality = 85
	cfg.Upload.MaxPixels = DefaultMaxPixels

	return &cfg
}

// Load reads the yaml file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}

	return cfg, nil
}

func LoadConfig() {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	AppConfig = cfg
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
