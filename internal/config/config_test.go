package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 6, cfg.ShortCodeLength)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("BASE_URL", "https://sho.rt")
	t.Setenv("SHORT_CODE_LENGTH", "8")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "https://sho.rt", cfg.BaseURL)
	assert.Equal(t, 8, cfg.ShortCodeLength)
}

func TestLoadConfig_InvalidCodeLength(t *testing.T) {
	t.Setenv("SHORT_CODE_LENGTH", "20")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_NonNumericCodeLengthUsesDefault(t *testing.T) {
	t.Setenv("SHORT_CODE_LENGTH", "six")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.ShortCodeLength)
}

func TestValidate_ProductionRequiresDBPassword(t *testing.T) {
	cfg := &Config{
		Environment:     "production",
		BaseURL:         "https://sho.rt",
		ShortCodeLength: 6,
	}

	assert.Error(t, cfg.Validate())

	cfg.DBPassword = "secret"
	assert.NoError(t, cfg.Validate())
}
