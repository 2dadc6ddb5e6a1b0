package validator_test

import (
	"testing"

	"accura_backend/internal/config"
	"accura_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultConfig(t *testing.T) {
	assert.NoError(t, validator.New().Validate(config.Default()))
}

func TestValidateConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		field  string
	}{
		{
			name:   "port out of range",
			mutate: func(cfg *config.Config) { cfg.Server.Port = 70000 },
			field:  "server.port",
		},
		{
			name:   "unknown env",
			mutate: func(cfg *config.Config) { cfg.Server.Env = "staging" },
			field:  "server.env",
		},
		{
			name:   "unknown storage type",
			mutate: func(cfg *config.Config) { cfg.Storage.Type = "ftp" },
			field:  "storage.type",
		},
		{
			name:   "local storage without base path",
			mutate: func(cfg *config.Config) { cfg.Storage.BasePath = "" },
			field:  "storage.base_path",
		},
		{
			name:   "s3 without bucket",
			mutate: func(cfg *config.Config) { cfg.Storage.Type = "s3" },
			field:  "storage.bucket",
		},
		{
			name:   "jpeg quality too high",
			mutate: func(cfg *config.Config) { cfg.Upload.ImageQuality = 101 },
			field:  "upload.image_quality",
		},
		{
			name:   "zero pixel cap",
			mutate: func(cfg *config.Config) { cfg.Upload.MaxPixels = 0 },
			field:  "upload.max_pixels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := validator.New().Validate(cfg)
			require.Error(t, err)

			vErr, ok := err.(*validator.ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &validator.ValidationError{Errors: map[string]string{
		"server.port": "Must be at most 65535",
		"server.env":  "Must be one of: development, production, test",
	}}

	assert.Equal(t,
		"Validation failed: field 'server.env': Must be one of: development, production, test; field 'server.port': Must be at most 65535",
		err.Error(),
	)
}
